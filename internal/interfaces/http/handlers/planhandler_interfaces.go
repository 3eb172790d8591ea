package handlers

import (
	"context"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
)

// Use case interfaces for PlanHandler

type listPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlansQuery) ([]*dto.PlanDTO, error)
}
