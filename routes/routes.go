package routes

import (
	"github.com/Dulanji-Amanda/SweetZone/config"
	"github.com/Dulanji-Amanda/SweetZone/gateway"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps holds everything the route groups need. Stores and gateways are
// injected explicitly so handlers never reach for ambient globals.
type Deps struct {
	DB       *gorm.DB
	Carts    *store.CartStore
	Orders   *store.OrderStore
	Auth     gateway.Auth
	Geocoder gateway.Geocoder
	Cfg      config.Config
}

// SetupRoutes is the single entry-point that wires up Auth, Catalog, User
// and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog browsing
	SetupCatalogRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Order back-office routes (API-key-protected)
	SetupOrderRoutes(r, deps)

	// Catalog management (API-key-protected)
	SetupAdminRoutes(r, deps)
}
