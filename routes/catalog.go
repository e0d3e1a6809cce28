package routes

import (
	productcontroller "github.com/Dulanji-Amanda/SweetZone/controllers/product"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public "/catalog/*" browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/products", productcontroller.GetProducts(deps.DB))
		catalog.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
		catalog.GET("/categories", productcontroller.GetAllCategoriesWithProducts(deps.DB))
		catalog.GET("/collections", productcontroller.GetCollections(deps.DB))
		catalog.GET("/feed", productcontroller.GetFeed(deps.DB))
	}
}
