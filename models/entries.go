package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSnapshot carries the display fields a stored entry needs. Entries
// cross the persistence boundary, so they embed a copy of the product's
// identity and display data rather than a live catalog reference.
type ProductSnapshot struct {
	ProductID int    `json:"product_id"`
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	Subtitle  string `json:"subtitle,omitempty"`
	Image     string `json:"image,omitempty"`
}

// SnapshotOf copies the display fields of a product, using its first image
// as the thumbnail.
func SnapshotOf(p *Product) ProductSnapshot {
	snap := ProductSnapshot{
		ProductID: p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Subtitle:  p.Subtitle,
	}
	if len(p.Images) > 0 {
		snap.Image = p.Images[0]
	}
	return snap
}

// VendorSnapshot freezes the chosen vendor as it was at commit time.
type VendorSnapshot struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
	Verified bool            `json:"verified"`
}

// CartEntry is one committed cart line. The cart is a multiset: the same
// selection committed twice is two entries, and quantity is repetition.
type CartEntry struct {
	ProductSnapshot
	Size        int             `json:"size"`
	Vendor      VendorSnapshot  `json:"vendor"`
	Price       decimal.Decimal `json:"price"`
	IsBestPrice bool            `json:"is_best_price"`
	AddedAt     time.Time       `json:"added_at"`
}

// WishlistEntry is one saved (product, size) pair. The wishlist dedups on
// that pair, so re-adding is a no-op.
type WishlistEntry struct {
	ProductSnapshot
	Size    int       `json:"size"`
	AddedAt time.Time `json:"added_at"`
}
