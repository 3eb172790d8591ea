package http

import (
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/lock"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/services/markdown"
)

// allUseCases holds every membership use case exposed over HTTP.
type allUseCases struct {
	listPlans         *usecases.ListPlansUseCase
	getMembership     *usecases.GetMembershipUseCase
	checkAccess       *usecases.CheckAccessUseCase
	listHistory       *usecases.ListHistoryUseCase
	listEvents        *usecases.ListEventsUseCase
	listCancellations *usecases.ListCancellationsUseCase

	calculatePlanChange *usecases.CalculatePlanChangeUseCase
	initiatePlanChange  *usecases.InitiatePlanChangeUseCase
	confirmPlanChange   *usecases.ConfirmPlanChangeUseCase

	pause      *usecases.PauseMembershipUseCase
	resume     *usecases.ResumeMembershipUseCase
	cancel     *usecases.CancelMembershipUseCase
	reactivate *usecases.ReactivateMembershipUseCase
	subscribe  *usecases.SubscribeUseCase
	autoRenew  *usecases.SetAutoRenewUseCase
}

func (c *Container) initUseCases() error {
	cfg := c.cfg
	log := c.log.Named("membership")
	r := c.repos

	locker, err := lock.NewMemberLocker(cfg.Lock, c.redis, log)
	if err != nil {
		return err
	}

	writer := usecases.NewMemberWriter(locker, db.NewTransactionManager(c.db), r.recordRepo, r.planChangeRepo, r.eventRepo, r.receiptRepo, c.clock, log)
	payments := auth.NewReceiptVerifier(cfg.Auth.ReceiptSecret, c.clock, log)
	credentials := auth.NewCredentialVerifier(r.memberRepo, auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost), log)

	c.ucs = &allUseCases{
		listPlans:         usecases.NewListPlansUseCase(r.planRepo, markdown.NewRenderer(), log),
		getMembership:     usecases.NewGetMembershipUseCase(r.recordRepo, r.planRepo, c.clock, log),
		checkAccess:       usecases.NewCheckAccessUseCase(r.recordRepo, c.clock, log),
		listHistory:       usecases.NewListHistoryUseCase(r.recordRepo, r.planRepo, c.clock, log),
		listEvents:        usecases.NewListEventsUseCase(r.eventRepo, log),
		listCancellations: usecases.NewListCancellationsUseCase(r.cancellationRepo, log),

		calculatePlanChange: usecases.NewCalculatePlanChangeUseCase(writer, r.planRepo, r.planChangeRepo, cfg.Membership.PlanChangeTTL(), log),
		initiatePlanChange:  usecases.NewInitiatePlanChangeUseCase(writer, r.planChangeRepo, log),
		confirmPlanChange:   usecases.NewConfirmPlanChangeUseCase(writer, r.planRepo, r.recordRepo, r.planChangeRepo, payments, credentials, log),

		pause:      usecases.NewPauseMembershipUseCase(writer, r.planRepo, cfg.Membership.PauseDurations, log),
		resume:     usecases.NewResumeMembershipUseCase(writer, r.planRepo, log),
		cancel:     usecases.NewCancelMembershipUseCase(writer, r.planRepo, r.cancellationRepo, log),
		reactivate: usecases.NewReactivateMembershipUseCase(writer, r.planRepo, r.memberRepo, payments, log),
		subscribe:  usecases.NewSubscribeUseCase(writer, r.planRepo, r.memberRepo, payments, log),
		autoRenew:  usecases.NewSetAutoRenewUseCase(writer, r.planRepo, log),
	}

	return nil
}
