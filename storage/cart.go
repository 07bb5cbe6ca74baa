package storage

import (
	"github.com/rishitrebant/SoleConnect/models"
)

// CartStore is the append-only cart log under the cart namespace.
type CartStore struct {
	kv KeyValue
}

func NewCartStore(kv KeyValue) *CartStore {
	return &CartStore{kv: kv}
}

// Add appends unconditionally. The cart is a multiset: committing the same
// selection twice stores two entries.
func (c *CartStore) Add(entry models.CartEntry) error {
	entries := readList[models.CartEntry](c.kv, CartNamespace)
	entries = append(entries, entry)
	return writeList(c.kv, CartNamespace, entries)
}

// List returns the stored entries in commit order. A missing or corrupt
// payload lists as empty.
func (c *CartStore) List() []models.CartEntry {
	return readList[models.CartEntry](c.kv, CartNamespace)
}

// RemoveAt deletes the entry at the given position in commit order.
func (c *CartStore) RemoveAt(index int) error {
	entries := readList[models.CartEntry](c.kv, CartNamespace)
	if index < 0 || index >= len(entries) {
		return ErrNoSuchEntry
	}
	entries = append(entries[:index], entries[index+1:]...)
	return writeList(c.kv, CartNamespace, entries)
}

// Clear empties the cart.
func (c *CartStore) Clear() error {
	return writeList(c.kv, CartNamespace, []models.CartEntry(nil))
}
