package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rishitrebant/SoleConnect/catalog"
	"github.com/rishitrebant/SoleConnect/routes"
	"github.com/rishitrebant/SoleConnect/selection"
	"github.com/rishitrebant/SoleConnect/storage"
)

func main() {
	log.Println("✅ Starting SoleConnect storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Load the product catalog. A failed load degrades to an empty
	// catalog rather than aborting, mirroring the storefront's behavior
	// of logging the error and rendering nothing.
	source := getenv("CATALOG_SOURCE", "data/products.json")
	store, err := catalog.Load(source)
	if err != nil {
		log.Printf("⚠️ Catalog load degraded: %v", err)
	}
	log.Printf("📦 Catalog ready: %d products from %s", store.Len(), source)

	// Init durable local storage for cart and wishlist
	kv := initStorage()
	cartStore := storage.NewCartStore(kv)
	wishlistStore := storage.NewWishlistStore(kv)

	// Product-view sessions
	sessions := selection.NewManager(store, cartStore, wishlistStore)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  store,
		Sessions: sessions,
		Cart:     cartStore,
		Wishlist: wishlistStore,
	})

	// Start server
	port := getenv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage picks the key-value backend from the environment: plain JSON
// files by default, an embedded SQLite database when asked for.
func initStorage() storage.KeyValue {
	dataDir := getenv("DATA_DIR", "data/store")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create data directory: %v", err)
	}

	switch strings.ToLower(os.Getenv("STORAGE_BACKEND")) {
	case "sqlite":
		kv, err := storage.NewSQLiteStore(filepath.Join(dataDir, "soleconnect.db"))
		if err != nil {
			log.Fatalf("❌ SQLite storage init failed: %v", err)
		}
		log.Printf("💾 Storage backend: sqlite (%s)", dataDir)
		return kv
	default:
		kv, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("❌ File storage init failed: %v", err)
		}
		log.Printf("💾 Storage backend: file (%s)", dataDir)
		return kv
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
