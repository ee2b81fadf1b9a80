package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cartcompass/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		quotes := v1.Group("/quotes")
		{
			quotes.POST("/compare", handler.CompareQuotes)
		}

		products := v1.Group("/products")
		{
			products.GET("/search", handler.SearchProducts)
		}

		v1.POST("/suggestions", handler.Suggest)

		stores := v1.Group("/stores")
		{
			stores.GET("", handler.ListStores)
			stores.GET("/:chain/locations", handler.ListStoreLocations)
		}
	}

	return router
}
