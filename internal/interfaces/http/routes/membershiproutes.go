package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
)

// MembershipRouteConfig holds dependencies for the caller's own membership routes.
type MembershipRouteConfig struct {
	MembershipHandler *handlers.MembershipHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MembershipAccess  *middleware.MembershipAccess
}

// SetupMembershipRoutes configures membership read routes and the facility check-in.
func SetupMembershipRoutes(engine *gin.Engine, cfg *MembershipRouteConfig) {
	membership := engine.Group("/membership")
	membership.Use(cfg.AuthMiddleware.RequireAuth())
	{
		membership.GET("", cfg.MembershipHandler.GetMembership)
		membership.GET("/history", cfg.MembershipHandler.GetHistory)
		membership.GET("/events", cfg.MembershipHandler.ListEvents)
		membership.GET("/access", cfg.MembershipHandler.GetAccess)
	}

	facility := engine.Group("/facility")
	facility.Use(cfg.AuthMiddleware.RequireAuth(), cfg.MembershipAccess.RequireActive())
	{
		facility.POST("/check-in", cfg.MembershipHandler.CheckIn)
	}
}
