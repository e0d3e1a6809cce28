package routes

import (
	orderControllers "github.com/Dulanji-Amanda/SweetZone/controllers/order"
	"github.com/Dulanji-Amanda/SweetZone/middleware"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers the back-office "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateAPIKey(deps.Cfg.AdminAPIKey))
	{
		// Fetch the full order history
		orders.GET("/", orderControllers.GetAllOrdersHandler(deps.Orders))

		// Download the history as a spreadsheet
		orders.GET("/export", orderControllers.ExportOrdersToExcel(deps.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
