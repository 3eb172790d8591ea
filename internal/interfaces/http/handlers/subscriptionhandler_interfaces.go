package handlers

import (
	"context"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
)

// Use case interfaces for SubscriptionHandler

type pauseMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.PauseMembershipCommand) (*dto.MembershipDTO, error)
}

type resumeMembershipUseCase interface {
	Execute(ctx context.Context, memberID uint) (*dto.MembershipDTO, error)
}

type cancelMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelMembershipCommand) (*dto.CancellationDTO, error)
}

type reactivateMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReactivateMembershipCommand) (*dto.MembershipDTO, error)
}

type subscribeUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubscribeCommand) (*dto.MembershipDTO, error)
}

type setAutoRenewUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetAutoRenewCommand) (*dto.MembershipDTO, error)
}
