package routes

import (
	"github.com/gin-gonic/gin"

	cartController "github.com/rishitrebant/SoleConnect/controllers/cart"
	productController "github.com/rishitrebant/SoleConnect/controllers/product"
	wishlistController "github.com/rishitrebant/SoleConnect/controllers/wishlist"
)

// SetupStorefrontRoutes registers the public browse and stored-list
// endpoints.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products ────────────────
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productController.GetProducts(deps.Catalog))                 // GET /products
		productGroup.GET("/featured", productController.GetFeaturedProducts(deps.Catalog)) // GET /products/featured
		productGroup.GET("/:id", productController.GetProductByID(deps.Catalog))          // GET /products/:id
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartController.GetCart(deps.Cart))                 // GET /cart
		cartGroup.DELETE("", cartController.ClearCart(deps.Cart))            // DELETE /cart
		cartGroup.DELETE("/:index", cartController.DeleteCartItem(deps.Cart)) // DELETE /cart/:index
	}

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistController.GetWishlist(deps.Wishlist))                             // GET /wishlist
		wishlistGroup.DELETE("/:product_id/:size", wishlistController.DeleteWishlistEntry(deps.Wishlist)) // DELETE /wishlist/:product_id/:size
	}
}
