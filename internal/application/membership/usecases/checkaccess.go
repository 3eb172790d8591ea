package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// CheckAccessUseCase decides whether a member may use paid features right now.
// It always reads the current record, so a pause or cancellation takes effect
// on the very next check.
type CheckAccessUseCase struct {
	recordRepo membership.RecordRepository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCheckAccessUseCase(recordRepo membership.RecordRepository, clock biztime.Clock, logger logger.Interface) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		recordRepo: recordRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CheckAccessUseCase) Execute(ctx context.Context, memberID uint) (*dto.AccessDTO, error) {
	record, err := uc.recordRepo.GetCurrent(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to get membership for access check", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	out := &dto.AccessDTO{MemberID: memberID}
	if record == nil {
		out.Reason = dto.AccessReasonNoMembership
		return out, nil
	}

	now := uc.clock.Now()
	status := record.EffectiveStatus(now)
	out.EffectiveStatus = status.String()

	switch {
	case record.GrantsAccess(now):
		out.Allowed = true
		end := record.EndDate()
		out.ValidUntil = &end
	case status == vo.StatusPaused:
		out.Reason = dto.AccessReasonPaused
	case status == vo.StatusCancelled:
		out.Reason = dto.AccessReasonCancelled
	default:
		out.Reason = dto.AccessReasonExpired
	}

	return out, nil
}
