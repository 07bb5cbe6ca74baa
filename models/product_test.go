package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		original float64
		expected int
	}{
		{name: "no original price", price: 800, original: 0, expected: 0},
		{name: "original equals price", price: 800, original: 800, expected: 0},
		{name: "original below price", price: 800, original: 700, expected: 0},
		{name: "flat twenty percent", price: 800, original: 1000, expected: 20},
		{name: "rounds half up", price: 335, original: 1000, expected: 67}, // 66.5
		{name: "rounds down below half", price: 871, original: 1000, expected: 13}, // 12.9
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{
				Price:         decimal.NewFromFloat(tc.price),
				OriginalPrice: decimal.NewFromFloat(tc.original),
			}
			assert.Equal(t, tc.expected, p.DiscountPercentage())
		})
	}
}

func TestLowestVendorPrice(t *testing.T) {
	p := Product{
		Price: decimal.NewFromInt(1000),
		Vendors: []Vendor{
			{Name: "A", Price: decimal.NewFromInt(900)},
			{Name: "B", Price: decimal.NewFromInt(850)},
			{Name: "C", Price: decimal.NewFromInt(999)},
		},
	}
	assert.True(t, decimal.NewFromInt(850).Equal(p.LowestVendorPrice()))
}

func TestLowestVendorPriceNoVendors(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(1000)}
	assert.True(t, p.Price.Equal(p.LowestVendorPrice()), "should fall back to the product price")
}

func TestIsSizeAvailable(t *testing.T) {
	p := Product{Sizes: []int{7, 8, 9, 10}}

	assert.True(t, p.IsSizeAvailable(9))
	assert.False(t, p.IsSizeAvailable(42))
}

func TestVendorByName(t *testing.T) {
	p := Product{
		Vendors: []Vendor{
			{Name: "Acme", Price: decimal.NewFromInt(850)},
			{Name: "Other", Price: decimal.NewFromInt(900)},
		},
	}

	v, ok := p.VendorByName("Acme")
	assert.True(t, ok)
	assert.Equal(t, "Acme", v.Name)

	_, ok = p.VendorByName("Nobody")
	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "three digits", amount: 999, expected: "₹999"},
		{name: "four digits", amount: 5499, expected: "₹5,499"},
		{name: "five digits", amount: 12999, expected: "₹12,999"},
		{name: "lakh grouping", amount: 129999, expected: "₹1,29,999"},
		{name: "crore grouping", amount: 12345678, expected: "₹1,23,45,678"},
		{name: "with fraction", amount: 12999.5, expected: "₹12,999.5"},
	}

	p := Product{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.FormatPrice(decimal.NewFromFloat(tc.amount)))
		})
	}
}

func TestSnapshotOf(t *testing.T) {
	p := Product{
		ID:       3,
		Brand:    "Nike",
		Name:     "Air Jordan 1",
		Subtitle: "Chicago",
		Images:   []string{"first.jpg", "second.jpg"},
	}

	snap := SnapshotOf(&p)
	assert.Equal(t, 3, snap.ProductID)
	assert.Equal(t, "Nike", snap.Brand)
	assert.Equal(t, "first.jpg", snap.Image, "should use the first image as thumbnail")

	bare := Product{ID: 4, Brand: "Puma", Name: "Suede"}
	assert.Empty(t, SnapshotOf(&bare).Image)
}
