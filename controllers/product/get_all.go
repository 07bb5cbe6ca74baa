package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rishitrebant/SoleConnect/catalog"
	"github.com/rishitrebant/SoleConnect/models"
)

// listItem is the card shape the listing pages render from.
type listItem struct {
	ID            int             `json:"id"`
	Brand         string          `json:"brand"`
	Name          string          `json:"name"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Image         string          `json:"image,omitempty"`
	Price         decimal.Decimal `json:"price"`
	DisplayPrice  string          `json:"display_price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	Discount      int             `json:"discount"`
}

func toListItem(p *models.Product) listItem {
	item := listItem{
		ID:            p.ID,
		Brand:         p.Brand,
		Name:          p.Name,
		Subtitle:      p.Subtitle,
		Price:         p.Price,
		DisplayPrice:  p.FormatListPrice(),
		OriginalPrice: p.OriginalPrice,
		Discount:      p.DiscountPercentage(),
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0]
	}
	return item
}

// GetProducts returns the product listing, optionally narrowed by brand,
// free-text search and a price range.
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering params
		brand := c.Query("brand")
		search := strings.ToLower(c.Query("search"))
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")

		var minPrice, maxPrice decimal.Decimal
		hasMin, hasMax := false, false
		if minPriceStr != "" {
			mp, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice, hasMin = mp, true
		}
		if maxPriceStr != "" {
			mp, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice, hasMax = mp, true
		}

		// 2️⃣ Base set: brand filter narrows before the rest apply
		products := store.All()
		if brand != "" {
			products = store.GetByBrand(brand)
		}

		// 3️⃣ Apply remaining filters in memory
		items := make([]listItem, 0, len(products))
		for _, p := range products {
			if search != "" && !matchesSearch(p, search) {
				continue
			}
			if hasMin && p.Price.LessThan(minPrice) {
				continue
			}
			if hasMax && p.Price.GreaterThan(maxPrice) {
				continue
			}
			items = append(items, toListItem(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"total":    len(items),
			"products": items,
		})
	}
}

func matchesSearch(p *models.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// GetFeaturedProducts returns the homepage carousel feed: the first N
// products in catalog order.
func GetFeaturedProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if lStr := c.Query("limit"); lStr != "" {
			l, err := strconv.Atoi(lStr)
			if err != nil || l < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = l
		}

		featured := store.Featured(limit)
		items := make([]listItem, 0, len(featured))
		for _, p := range featured {
			items = append(items, toListItem(p))
		}
		c.JSON(http.StatusOK, gin.H{"products": items})
	}
}
