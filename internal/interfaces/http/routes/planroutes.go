package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes configures plan routes. The catalog is public.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
	}
}
