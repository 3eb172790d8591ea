package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
)

// PlanChangeRouteConfig holds dependencies for plan change routes.
type PlanChangeRouteConfig struct {
	PlanChangeHandler *handlers.PlanChangeHandler
	AuthMiddleware    *middleware.AuthMiddleware
	CalculateLimit    *middleware.MemberRateLimit
}

// SetupPlanChangeRoutes configures the calculate, initiate and confirm steps.
func SetupPlanChangeRoutes(engine *gin.Engine, cfg *PlanChangeRouteConfig) {
	planChange := engine.Group("/plan-change")
	planChange.Use(cfg.AuthMiddleware.RequireAuth())
	{
		planChange.POST("/calculate", cfg.CalculateLimit.Limit(), cfg.PlanChangeHandler.Calculate)
		planChange.POST("/initiate", cfg.PlanChangeHandler.Initiate)
		planChange.POST("/confirm", cfg.PlanChangeHandler.Confirm)
	}
}
