package routes

import (
	cartControllers "github.com/Dulanji-Amanda/SweetZone/controllers/cart"
	locationControllers "github.com/Dulanji-Amanda/SweetZone/controllers/location"
	orderControllers "github.com/Dulanji-Amanda/SweetZone/controllers/order"
	userControllers "github.com/Dulanji-Amanda/SweetZone/controllers/user"
	"github.com/Dulanji-Amanda/SweetZone/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.Cfg.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser())                       // GET /user/
		userGroup.PUT("/profile", userControllers.UpdateProfile(deps.Auth)) // PUT /user/profile
		userGroup.PUT("/email", userControllers.UpdateEmail(deps.Auth))     // PUT /user/email
		userGroup.PUT("/password", userControllers.UpdatePassword(deps.Auth))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))                // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.DB, deps.Carts))      // POST /user/cart
			cartGroup.PUT("/:line_id", cartControllers.UpdateCartItem(deps.Carts))     // PUT /user/cart/:line_id
			cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem(deps.Carts))  // DELETE /user/cart/:line_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))           // DELETE /user/cart
		}

		// ──────────────── Delivery Location ────────────────
		locationGroup := userGroup.Group("/location")
		{
			locationGroup.GET("/search", locationControllers.SearchLocation(deps.Geocoder))
			locationGroup.GET("/reverse", locationControllers.ReverseLocation(deps.Geocoder))
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(deps.Carts, deps.Orders, deps.Cfg.DeliveryFee))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.Orders))
	}
}
