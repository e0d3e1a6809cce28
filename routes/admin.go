package routes

import (
	productcontroller "github.com/Dulanji-Amanda/SweetZone/controllers/product"
	"github.com/Dulanji-Amanda/SweetZone/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers catalog management under "/admin/*".
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(deps.Cfg.AdminAPIKey))
	{
		admin.POST("/products", productcontroller.CreateProduct(deps.DB))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(deps.DB))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(deps.DB))

		admin.POST("/categories", productcontroller.CreateCategory(deps.DB))
		admin.POST("/collections", productcontroller.CreateCollection(deps.DB))
		admin.POST("/stories", productcontroller.CreateStory(deps.DB))
	}
}
