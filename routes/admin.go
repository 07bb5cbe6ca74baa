package routes

import (
	"github.com/gin-gonic/gin"

	productController "github.com/rishitrebant/SoleConnect/controllers/product"
	"github.com/rishitrebant/SoleConnect/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/products/export", productController.ExportProductsToExcel(deps.Catalog)) // GET /admin/products/export
	}
}
