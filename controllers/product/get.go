package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rishitrebant/SoleConnect/catalog"
)

// GetProductByID returns a single product with its derived pricing fields.
// URL param: /products/:id
func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := store.GetByID(id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		lowest := product.LowestVendorPrice()
		c.JSON(http.StatusOK, gin.H{
			"product":       product,
			"discount":      product.DiscountPercentage(),
			"lowest_price":  lowest,
			"display_price": product.FormatPrice(lowest),
		})
	}
}
