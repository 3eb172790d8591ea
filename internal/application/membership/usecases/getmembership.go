package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// GetMembershipUseCase reads the current record. It never writes, so a lapsed
// pause is reported through the effective status only.
type GetMembershipUseCase struct {
	recordRepo membership.RecordRepository
	planRepo   membership.PlanRepository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewGetMembershipUseCase(
	recordRepo membership.RecordRepository,
	planRepo membership.PlanRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetMembershipUseCase {
	return &GetMembershipUseCase{
		recordRepo: recordRepo,
		planRepo:   planRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *GetMembershipUseCase) Execute(ctx context.Context, memberID uint) (*dto.MembershipDTO, error) {
	record, err := uc.recordRepo.GetCurrent(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to get membership", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if record == nil {
		return nil, toAppError(membership.ErrMembershipNotFound)
	}

	plan, err := uc.planRepo.GetByID(ctx, record.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", record.PlanID(), "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return dto.ToMembershipDTO(record, plan, uc.clock.Now()), nil
}
