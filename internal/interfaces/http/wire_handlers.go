package http

import (
	"github.com/gymflow/gymflow/internal/infrastructure/ratelimit"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
)

type allHandlers struct {
	health       *handlers.HealthHandler
	plan         *handlers.PlanHandler
	membership   *handlers.MembershipHandler
	planChange   *handlers.PlanChangeHandler
	subscription *handlers.SubscriptionHandler
	staff        *handlers.StaffHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log.Named("http")

	c.hdlrs = &allHandlers{
		health:     handlers.NewHealthHandler(c.sqlPinger(), log),
		plan:       handlers.NewPlanHandler(u.listPlans, log),
		membership: handlers.NewMembershipHandler(u.getMembership, u.checkAccess, u.listHistory, u.listEvents, log),
		planChange: handlers.NewPlanChangeHandler(u.calculatePlanChange, u.initiatePlanChange, u.confirmPlanChange, log),
		subscription: handlers.NewSubscriptionHandler(
			u.pause, u.resume, u.cancel, u.reactivate, u.subscribe, u.autoRenew, log,
		),
		staff: handlers.NewStaffHandler(u.getMembership, u.checkAccess, u.listHistory, u.listCancellations, log),
	}

	requests := 0
	if c.cfg.RateLimit.Enabled {
		requests = c.cfg.RateLimit.CalculateRequestsPerMinute
	}
	c.calculateRateLimit = middleware.NewMemberRateLimit(c.rateLimiter, "plan_change_calculate", ratelimit.PerMinute(requests), log)
	c.membershipAccess = middleware.NewMembershipAccess(u.checkAccess, log)
}
