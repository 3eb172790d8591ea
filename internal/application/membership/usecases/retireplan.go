package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// RetirePlanUseCase takes a plan off sale. Members already on it keep it.
type RetirePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewRetirePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *RetirePlanUseCase {
	return &RetirePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *RetirePlanUseCase) Execute(ctx context.Context, planID uint) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, toAppError(membership.ErrPlanNotFound)
	}

	if !plan.IsRetired() {
		plan.Retire()
		if err := uc.planRepo.Update(ctx, plan); err != nil {
			uc.logger.Errorw("failed to retire plan", "plan_id", planID, "error", err)
			return nil, toAppError(err)
		}
		uc.logger.Infow("plan retired", "plan_id", planID, "name", plan.Name())
	}

	return dto.ToPlanDTO(plan, ""), nil
}

// DeletePlanUseCase removes a plan that no membership record ever referenced.
type DeletePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		uc.logger.Warnw("failed to delete plan", "plan_id", planID, "error", err)
		return toAppError(err)
	}
	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}
