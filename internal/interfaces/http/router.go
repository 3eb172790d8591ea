package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
	"github.com/gymflow/gymflow/internal/interfaces/http/routes"
	"github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// SetupRoutes installs global middleware and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("access")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.health.HealthCheck)
	c.engine.GET("/version", c.hdlrs.health.Version)

	routes.SetupPlanRoutes(c.engine, &routes.PlanRouteConfig{
		PlanHandler: c.hdlrs.plan,
	})

	routes.SetupMembershipRoutes(c.engine, &routes.MembershipRouteConfig{
		MembershipHandler: c.hdlrs.membership,
		AuthMiddleware:    c.authMiddleware,
		MembershipAccess:  c.membershipAccess,
	})

	routes.SetupPlanChangeRoutes(c.engine, &routes.PlanChangeRouteConfig{
		PlanChangeHandler: c.hdlrs.planChange,
		AuthMiddleware:    c.authMiddleware,
		CalculateLimit:    c.calculateRateLimit,
	})

	routes.SetupSubscriptionRoutes(c.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: c.hdlrs.subscription,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupStaffRoutes(c.engine, &routes.StaffRouteConfig{
		StaffHandler:         c.hdlrs.staff,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	c.engine.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponseWithError(ctx, errors.NewNotFoundError("route not found"))
	})
}
