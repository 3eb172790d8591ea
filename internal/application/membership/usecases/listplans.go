package usecases

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ListPlansQuery struct {
	IncludeRetired bool
}

type ListPlansUseCase struct {
	planRepo membership.PlanRepository
	renderer DescriptionRenderer
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo membership.PlanRepository, renderer DescriptionRenderer, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx, query.IncludeRetired)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return lo.Map(plans, func(p *membership.Plan, _ int) *dto.PlanDTO {
		html, err := uc.renderer.Render(p.Description())
		if err != nil {
			// the plain description is still returned
			uc.logger.Warnw("failed to render plan description", "plan_id", p.ID(), "error", err)
		}
		return dto.ToPlanDTO(p, html)
	}), nil
}
