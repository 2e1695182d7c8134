package routes

import (
	"github.com/gin-gonic/gin"

	"fixmate/internal/interfaces/http/handlers"
)

// SetupCatalogRoutes configures the lookup-chain and search routes.
func SetupCatalogRoutes(engine *gin.Engine, handler *handlers.CatalogHandler) {
	engine.GET("/", handler.Index)

	api := engine.Group("/api")
	{
		api.GET("/brands", handler.GetBrands)
		api.GET("/appliances", handler.GetAppliances)
		api.GET("/issues", handler.GetIssues)
		api.POST("/solution", handler.GetSolution)
		api.GET("/search", handler.Search)
	}
}
