package router

import (
	"github.com/gin-gonic/gin"

	"github.com/adilkhanov/hrdoc-backend/internal/config"
	"github.com/adilkhanov/hrdoc-backend/internal/http/handlers"
	"github.com/adilkhanov/hrdoc-backend/internal/http/middleware"
	"github.com/adilkhanov/hrdoc-backend/internal/service"
)

// SetupRouter собирает gin engine со всеми маршрутами и middleware.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	documentHandler *handlers.DocumentHandler,
	previewHandler *handlers.PreviewHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/ws", wsHandler.Handle)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	protected.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		documents := protected.Group("/documents")
		{
			documents.GET("", documentHandler.List)
			documents.POST("", documentHandler.Create)
			documents.GET("/:id", documentHandler.Get)
			documents.POST("/:id/actions", documentHandler.Action)
			documents.GET("/:id/preview", previewHandler.DocumentPreview)
		}

		contracts := protected.Group("/contracts")
		{
			contracts.GET("/:id/preview", previewHandler.ContractPreview)
		}
	}

	return r
}
