package routes

import (
	"studio_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	cat := rg.Group(PathCatalog)
	{
		cat.GET("/categories", catalogHandler.ListCategories)
		cat.GET("/services", catalogHandler.ListServices)
		cat.GET("/services/search", catalogHandler.SearchServices)
		cat.GET("/services/:id", catalogHandler.GetService)
		cat.POST("/services/filter", catalogHandler.FilterServices)
		cat.POST("/quote", catalogHandler.Quote)
	}
}
