package handlers

import (
	"context"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
)

// Use case interfaces shared by MembershipHandler and StaffHandler

type getMembershipUseCase interface {
	Execute(ctx context.Context, memberID uint) (*dto.MembershipDTO, error)
}

type checkAccessUseCase interface {
	Execute(ctx context.Context, memberID uint) (*dto.AccessDTO, error)
}

type listHistoryUseCase interface {
	Execute(ctx context.Context, query usecases.ListHistoryQuery) (*dto.HistoryDTO, error)
}

type listEventsUseCase interface {
	Execute(ctx context.Context, memberID uint) ([]*dto.EventDTO, error)
}

type listCancellationsUseCase interface {
	Execute(ctx context.Context, memberID uint) ([]*dto.CancellationDTO, error)
}
