package usecases

import (
	"context"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type SetAutoRenewCommand struct {
	MemberID  uint
	AutoRenew bool
}

type SetAutoRenewUseCase struct {
	writer   *MemberWriter
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewSetAutoRenewUseCase(writer *MemberWriter, planRepo membership.PlanRepository, logger logger.Interface) *SetAutoRenewUseCase {
	return &SetAutoRenewUseCase{
		writer:   writer,
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *SetAutoRenewUseCase) Execute(ctx context.Context, cmd SetAutoRenewCommand) (*dto.MembershipDTO, error) {
	var (
		updated *membership.Record
		now     time.Time
	)
	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow
		if current == nil {
			return membership.ErrMembershipNotFound
		}

		next, err := current.SetAutoRenew(cmd.AutoRenew, now)
		if err != nil {
			return err
		}
		if err := uc.writer.Append(ctx, vo.EventAutoRenewChanged, current, next, map[string]any{"auto_renew": cmd.AutoRenew}); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("auto-renew changed", "member_id", cmd.MemberID, "auto_renew", cmd.AutoRenew)
	return currentView(ctx, uc.planRepo, updated, now, uc.logger), nil
}
