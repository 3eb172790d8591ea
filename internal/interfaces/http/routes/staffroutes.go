package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/infrastructure/permission"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
)

// StaffRouteConfig holds dependencies for staff portal routes.
type StaffRouteConfig struct {
	StaffHandler         *handlers.StaffHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupStaffRoutes configures read-only views of other members for staff roles.
func SetupStaffRoutes(engine *gin.Engine, cfg *StaffRouteConfig) {
	members := engine.Group("/staff/members/:member_id")
	members.Use(cfg.AuthMiddleware.RequireAuth())
	{
		members.GET("/membership",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceMemberMembership, permission.ActionRead),
			cfg.StaffHandler.GetMemberMembership)
		members.GET("/access",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceMemberAccess, permission.ActionRead),
			cfg.StaffHandler.GetMemberAccess)
		members.GET("/history",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceMemberHistory, permission.ActionRead),
			cfg.StaffHandler.GetMemberHistory)
		members.GET("/cancellations",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceMemberCancellations, permission.ActionRead),
			cfg.StaffHandler.ListMemberCancellations)
	}
}
