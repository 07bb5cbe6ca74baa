package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rishitrebant/SoleConnect/catalog"
	"github.com/rishitrebant/SoleConnect/selection"
	"github.com/rishitrebant/SoleConnect/storage"
)

// Deps bundles everything the route groups close over.
type Deps struct {
	Catalog  *catalog.Store
	Sessions *selection.Manager
	Cart     *storage.CartStore
	Wishlist *storage.WishlistStore
}

// SetupRoutes is the single entry-point that wires up the storefront,
// session, account and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public storefront routes (catalog, cart, wishlist)
	SetupStorefrontRoutes(r, deps)

	// 2️⃣ Product-view session routes
	SetupSessionRoutes(r, deps)

	// 3️⃣ Account routes (validation only, success simulated)
	SetupAccountRoutes(r)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
