package wishlistcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rishitrebant/SoleConnect/storage"
)

// GetWishlist returns the saved entries in insertion order.
// GET /wishlist
func GetWishlist(store *storage.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := store.List()
		c.JSON(http.StatusOK, gin.H{
			"count":   len(entries),
			"entries": entries,
		})
	}
}

// DeleteWishlistEntry removes one (product, size) pair.
// DELETE /wishlist/:product_id/:size
func DeleteWishlistEntry(store *storage.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		size, err := strconv.Atoi(c.Param("size"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
			return
		}

		if !store.Contains(productID, size) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist entry not found"})
			return
		}
		if err := store.Remove(productID, size); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist entry deleted"})
	}
}
