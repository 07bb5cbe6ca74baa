package storage

import (
	"github.com/rishitrebant/SoleConnect/models"
)

// WishlistStore is the saved-for-later list, deduplicated on the
// (product id, size) pair.
type WishlistStore struct {
	kv KeyValue
}

func NewWishlistStore(kv KeyValue) *WishlistStore {
	return &WishlistStore{kv: kv}
}

// Add stores the entry unless the same (product, size) pair is already
// present, in which case it is a no-op.
func (w *WishlistStore) Add(entry models.WishlistEntry) error {
	entries := readList[models.WishlistEntry](w.kv, WishlistNamespace)
	for _, e := range entries {
		if e.ProductID == entry.ProductID && e.Size == entry.Size {
			return nil
		}
	}
	entries = append(entries, entry)
	return writeList(w.kv, WishlistNamespace, entries)
}

// Remove deletes the entry for the (product, size) pair if present.
// Removing an absent pair is not an error: the caller only cares that the
// pair is gone.
func (w *WishlistStore) Remove(productID, size int) error {
	entries := readList[models.WishlistEntry](w.kv, WishlistNamespace)
	kept := entries[:0]
	for _, e := range entries {
		if e.ProductID == productID && e.Size == size {
			continue
		}
		kept = append(kept, e)
	}
	return writeList(w.kv, WishlistNamespace, kept)
}

// Contains reports whether the (product, size) pair is stored.
func (w *WishlistStore) Contains(productID, size int) bool {
	for _, e := range readList[models.WishlistEntry](w.kv, WishlistNamespace) {
		if e.ProductID == productID && e.Size == size {
			return true
		}
	}
	return false
}

// List returns the stored entries in insertion order.
func (w *WishlistStore) List() []models.WishlistEntry {
	return readList[models.WishlistEntry](w.kv, WishlistNamespace)
}
