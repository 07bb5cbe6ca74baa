package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rishitrebant/SoleConnect/storage"
)

// GetCart returns the stored cart entries with their running total.
// GET /cart
func GetCart(store *storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := store.List()

		total := decimal.Zero
		for _, e := range entries {
			total = total.Add(e.Price)
		}

		c.JSON(http.StatusOK, gin.H{
			"count":   len(entries),
			"total":   total,
			"entries": entries,
		})
	}
}

// DeleteCartItem removes one entry by its position in commit order.
// DELETE /cart/:index
func DeleteCartItem(store *storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
			return
		}

		if err := store.RemoveAt(index); err != nil {
			if errors.Is(err, storage.ErrNoSuchEntry) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart entry not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart entry deleted"})
	}
}

// ClearCart empties the cart.
// DELETE /cart
func ClearCart(store *storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
