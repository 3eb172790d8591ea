package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures the status-changing membership routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscription := engine.Group("/subscription")
	subscription.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscription.POST("/subscribe", cfg.SubscriptionHandler.Subscribe)
		subscription.POST("/pause", cfg.SubscriptionHandler.Pause)
		subscription.POST("/resume", cfg.SubscriptionHandler.Resume)
		subscription.POST("/cancel", cfg.SubscriptionHandler.Cancel)
		subscription.POST("/reactivate", cfg.SubscriptionHandler.Reactivate)
		subscription.PUT("/auto-renew", cfg.SubscriptionHandler.SetAutoRenew)
	}
}
