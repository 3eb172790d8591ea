package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type SubscribeCommand struct {
	MemberID       uint
	PlanID         uint
	AutoRenew      bool
	PaymentReceipt string
}

type SubscribeUseCase struct {
	writer     *MemberWriter
	planRepo   membership.PlanRepository
	memberRepo member.Repository
	payments   PaymentVerifier
	logger     logger.Interface
}

func NewSubscribeUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	memberRepo member.Repository,
	payments PaymentVerifier,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		writer:     writer,
		planRepo:   planRepo,
		memberRepo: memberRepo,
		payments:   payments,
		logger:     logger,
	}
}

// Execute starts the first membership of a member who has never held one.
func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*dto.MembershipDTO, error) {
	var (
		created *membership.Record
		plan    *membership.Plan
		now     time.Time
	)

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow
		if current != nil {
			return membership.ErrAlreadySubscribed
		}

		m, err := uc.memberRepo.GetByID(ctx, cmd.MemberID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if m == nil {
			return membership.ErrMemberNotFound
		}

		plan, err = loadPurchasablePlan(ctx, uc.planRepo, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := verifyPurchase(ctx, uc.payments, uc.writer, cmd.MemberID, plan, cmd.PaymentReceipt, txNow); err != nil {
			return err
		}

		created, err = membership.NewRecord(cmd.MemberID, plan, cmd.AutoRenew, now)
		if err != nil {
			return err
		}
		return uc.writer.Append(ctx, vo.EventCreated, nil, created, map[string]any{"amount_paid": plan.PriceMinorUnits()})
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("membership created", "member_id", cmd.MemberID, "plan_id", plan.ID(), "end_date", created.EndDate())
	return dto.ToMembershipDTO(created, plan, now), nil
}
