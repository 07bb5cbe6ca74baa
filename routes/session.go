package routes

import (
	"github.com/gin-gonic/gin"

	selectionController "github.com/rishitrebant/SoleConnect/controllers/selection"
)

// SetupSessionRoutes registers the product-view session endpoints that
// drive the size → vendor → cart flow.
func SetupSessionRoutes(r *gin.Engine, deps Deps) {
	sessionGroup := r.Group("/session")
	{
		sessionGroup.POST("", selectionController.StartSession(deps.Sessions))            // POST /session
		sessionGroup.GET("/:id", selectionController.GetSession(deps.Sessions))           // GET /session/:id
		sessionGroup.POST("/:id/size", selectionController.SelectSize(deps.Sessions))     // POST /session/:id/size
		sessionGroup.POST("/:id/vendor", selectionController.SelectVendor(deps.Sessions)) // POST /session/:id/vendor
		sessionGroup.POST("/:id/wishlist", selectionController.ToggleWishlist(deps.Sessions))
		sessionGroup.POST("/:id/cart", selectionController.AddToCart(deps.Sessions)) // POST /session/:id/cart
		sessionGroup.DELETE("/:id", selectionController.CloseSession(deps.Sessions))
	}
}
