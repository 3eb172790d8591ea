package handlers

import (
	"context"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
)

// Use case interfaces for PlanChangeHandler

type calculatePlanChangeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CalculatePlanChangeCommand) (*dto.PlanChangeDTO, error)
}

type initiatePlanChangeUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiatePlanChangeCommand) (*dto.InitiatePlanChangeDTO, error)
}

type confirmPlanChangeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ConfirmPlanChangeCommand) (*dto.MembershipDTO, error)
}
