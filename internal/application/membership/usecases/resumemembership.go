package usecases

import (
	"context"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ResumeMembershipUseCase struct {
	writer   *MemberWriter
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewResumeMembershipUseCase(writer *MemberWriter, planRepo membership.PlanRepository, logger logger.Interface) *ResumeMembershipUseCase {
	return &ResumeMembershipUseCase{
		writer:   writer,
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute ends a pause early. The end date keeps the full pause extension.
func (uc *ResumeMembershipUseCase) Execute(ctx context.Context, memberID uint) (*dto.MembershipDTO, error) {
	var (
		resumed *membership.Record
		now     time.Time
	)
	err := uc.writer.Mutate(ctx, memberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow
		if current == nil {
			return membership.ErrMembershipNotFound
		}

		next, err := current.Resume(now)
		if err != nil {
			return err
		}

		unused := 0
		if w := current.PauseWindow(); w != nil {
			unused = w.DaysLeft(now)
		}
		if err := uc.writer.Append(ctx, vo.EventResumed, current, next, map[string]any{"unused_pause_days": unused}); err != nil {
			return err
		}
		resumed = next
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("membership resumed", "member_id", memberID, "version", resumed.Version())
	return currentView(ctx, uc.planRepo, resumed, now, uc.logger), nil
}
