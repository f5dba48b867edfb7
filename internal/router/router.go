package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, dietHandler *api.DietHandler, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		router.Use(cors.New(corsCfg))
	}

	router.GET("/", api.Root)
	router.GET("/health", api.HealthCheck(cfg.GeminiAPIKey != ""))

	dietHandler.RegisterRoutes(router)

	return router
}
