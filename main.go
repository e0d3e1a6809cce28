package main

import (
	"log"
	"time"

	"github.com/Dulanji-Amanda/SweetZone/config"
	"github.com/Dulanji-Amanda/SweetZone/gateway"
	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/Dulanji-Amanda/SweetZone/routes"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate catalog tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Collection{},
		&models.Story{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the launch catalog on first boot
	if err := models.SeedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// In-memory stores: carts and order history live for the process
	// lifetime only
	carts := store.NewCartStore()
	orders := store.NewOrderStore()

	// External collaborators
	authGateway := gateway.NewAuthClient(cfg.AuthAPIURL, cfg.AuthAPIKey)
	geocoder := gateway.NewGeocodeClient(cfg.GeocoderURL)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Auth-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Carts:    carts,
		Orders:   orders,
		Auth:     authGateway,
		Geocoder: geocoder,
		Cfg:      cfg,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
