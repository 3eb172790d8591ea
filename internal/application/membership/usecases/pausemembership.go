package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type PauseMembershipCommand struct {
	MemberID     uint
	DurationDays int
}

type PauseMembershipUseCase struct {
	writer          *MemberWriter
	planRepo        membership.PlanRepository
	allowedDuration []int
	logger          logger.Interface
}

// NewPauseMembershipUseCase accepts only pauses whose length is one of allowedDurations.
func NewPauseMembershipUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	allowedDurations []int,
	logger logger.Interface,
) *PauseMembershipUseCase {
	return &PauseMembershipUseCase{
		writer:          writer,
		planRepo:        planRepo,
		allowedDuration: allowedDurations,
		logger:          logger,
	}
}

func (uc *PauseMembershipUseCase) Execute(ctx context.Context, cmd PauseMembershipCommand) (*dto.MembershipDTO, error) {
	if !lo.Contains(uc.allowedDuration, cmd.DurationDays) {
		return nil, toAppError(fmt.Errorf("%w: pause duration must be one of %v days", membership.ErrInvalidInput, uc.allowedDuration))
	}

	var (
		paused *membership.Record
		now    time.Time
	)
	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow
		if current == nil {
			return membership.ErrMembershipNotFound
		}

		next, err := current.Pause(cmd.DurationDays, now)
		if err != nil {
			return err
		}

		metadata := map[string]any{"duration_days": cmd.DurationDays}
		if err := uc.writer.Append(ctx, vo.EventPaused, current, next, metadata); err != nil {
			return err
		}
		paused = next
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("membership paused",
		"member_id", cmd.MemberID,
		"duration_days", cmd.DurationDays,
		"end_date", paused.EndDate(),
	)
	return currentView(ctx, uc.planRepo, paused, now, uc.logger), nil
}

// currentView renders a freshly written version. A plan lookup failure only
// loses the derived value figures.
func currentView(ctx context.Context, planRepo membership.PlanRepository, record *membership.Record, now time.Time, log logger.Interface) *dto.MembershipDTO {
	plan, err := planRepo.GetByID(ctx, record.PlanID())
	if err != nil {
		log.Warnw("failed to load plan for response", "plan_id", record.PlanID(), "error", err)
	}
	return dto.ToMembershipDTO(record, plan, now)
}
