package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type CalculatePlanChangeCommand struct {
	MemberID  uint
	NewPlanID uint
}

type CalculatePlanChangeUseCase struct {
	writer      *MemberWriter
	planRepo    membership.PlanRepository
	requestRepo membership.PlanChangeRepository
	ttl         time.Duration
	logger      logger.Interface
}

func NewCalculatePlanChangeUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	requestRepo membership.PlanChangeRepository,
	ttl time.Duration,
	logger logger.Interface,
) *CalculatePlanChangeUseCase {
	return &CalculatePlanChangeUseCase{
		writer:      writer,
		planRepo:    planRepo,
		requestRepo: requestRepo,
		ttl:         ttl,
		logger:      logger,
	}
}

// Execute prices a switch to NewPlanID and stores it as the member's only live request.
func (uc *CalculatePlanChangeUseCase) Execute(ctx context.Context, cmd CalculatePlanChangeCommand) (*dto.PlanChangeDTO, error) {
	var request *membership.PlanChangeRequest

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, now time.Time) error {
		if current == nil {
			return membership.ErrMembershipNotFound
		}
		if status := current.EffectiveStatus(now); status != vo.StatusActive {
			return fmt.Errorf("%w: plan changes need an active membership, current status is %s", membership.ErrInvalidState, status)
		}

		newPlan, err := uc.planRepo.GetByID(ctx, cmd.NewPlanID)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if newPlan == nil || newPlan.IsRetired() {
			return membership.ErrPlanNotFound
		}

		currentPlan, err := uc.planRepo.GetByID(ctx, current.PlanID())
		if err != nil {
			return fmt.Errorf("failed to get current plan: %w", err)
		}
		if currentPlan == nil {
			return fmt.Errorf("current plan %d is missing: %w", current.PlanID(), membership.ErrPlanNotFound)
		}

		result, err := membership.CalculateProration(current, currentPlan, newPlan, now)
		if err != nil {
			return err
		}

		superseded, err := uc.requestRepo.ExpireLiveByMember(ctx, cmd.MemberID)
		if err != nil {
			return fmt.Errorf("failed to supersede plan change requests: %w", err)
		}

		request, err = membership.NewPlanChangeRequest(current, result, now, uc.ttl)
		if err != nil {
			return err
		}
		if err := uc.requestRepo.Create(ctx, request); err != nil {
			return fmt.Errorf("failed to store plan change request: %w", err)
		}

		uc.logger.Infow("plan change calculated",
			"member_id", cmd.MemberID,
			"request_id", request.RequestID(),
			"from_plan_id", result.FromPlanID,
			"to_plan_id", result.ToPlanID,
			"balance_difference", result.BalanceDifference,
			"superseded", superseded,
		)
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	return dto.ToPlanChangeDTO(request), nil
}
