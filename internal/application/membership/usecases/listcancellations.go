package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ListCancellationsUseCase struct {
	cancellationRepo membership.CancellationRepository
	logger           logger.Interface
}

func NewListCancellationsUseCase(cancellationRepo membership.CancellationRepository, logger logger.Interface) *ListCancellationsUseCase {
	return &ListCancellationsUseCase{
		cancellationRepo: cancellationRepo,
		logger:           logger,
	}
}

func (uc *ListCancellationsUseCase) Execute(ctx context.Context, memberID uint) ([]*dto.CancellationDTO, error) {
	records, err := uc.cancellationRepo.ListByMember(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to list cancellations", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list cancellations: %w", err)
	}
	return dto.ToCancellationDTOs(records), nil
}
