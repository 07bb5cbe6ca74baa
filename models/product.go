package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Vendor is one seller offering a product at its own price. A vendor is
// owned by exactly one product and identified by name within it.
type Vendor struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
	Verified bool            `json:"verified"`
}

// Product is a catalog record. It is built once at catalog-load time and
// never mutated afterwards; everything below that derives a value computes
// it fresh from these fields.
type Product struct {
	ID            int               `json:"id"`
	Brand         string            `json:"brand"`
	Name          string            `json:"name"`
	Subtitle      string            `json:"subtitle,omitempty"`
	Price         decimal.Decimal   `json:"price"`
	OriginalPrice decimal.Decimal   `json:"originalPrice,omitempty"`
	Images        []string          `json:"images"`
	Sizes         []int             `json:"sizes"`
	Vendors       []Vendor          `json:"vendors"`
	Details       map[string]string `json:"details,omitempty"`
	Description   string            `json:"description,omitempty"`
}

// DiscountPercentage reports the markdown from the original price, rounded
// half up. A missing original price, or one at or below the selling price,
// means no discount.
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice.LessThanOrEqual(p.Price) {
		return 0
	}
	pct := p.OriginalPrice.Sub(p.Price).
		Div(p.OriginalPrice).
		Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// LowestVendorPrice returns the cheapest vendor offer, falling back to the
// product's own price when no vendors are listed.
func (p *Product) LowestVendorPrice() decimal.Decimal {
	if len(p.Vendors) == 0 {
		return p.Price
	}
	lowest := p.Vendors[0].Price
	for _, v := range p.Vendors[1:] {
		if v.Price.LessThan(lowest) {
			lowest = v.Price
		}
	}
	return lowest
}

// IsSizeAvailable reports whether the product is stocked in the given size.
func (p *Product) IsSizeAvailable(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// VendorByName returns the first vendor with an exact name match.
func (p *Product) VendorByName(name string) (*Vendor, bool) {
	for i := range p.Vendors {
		if p.Vendors[i].Name == name {
			return &p.Vendors[i], true
		}
	}
	return nil, false
}

// FormatPrice renders an amount the way the storefront displays it: rupee
// symbol plus en-IN digit grouping (12,999 and 1,29,999).
func (p *Product) FormatPrice(amount decimal.Decimal) string {
	return "₹" + groupINR(amount)
}

// FormatListPrice formats the product's own selling price.
func (p *Product) FormatListPrice() string {
	return p.FormatPrice(p.Price)
}

// groupINR applies Indian digit grouping: the last three digits form one
// group, everything above that is grouped in pairs.
func groupINR(d decimal.Decimal) string {
	s := d.String()
	var sign string
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := intPart
	if len(intPart) > 3 {
		out = intPart[len(intPart)-3:]
		rest := intPart[:len(intPart)-3]
		for len(rest) > 2 {
			out = rest[len(rest)-2:] + "," + out
			rest = rest[:len(rest)-2]
		}
		out = rest + "," + out
	}
	if hasFrac {
		out += "." + frac
	}
	return sign + out
}
