package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// ListEventsUseCase returns the member's audit trail.
type ListEventsUseCase struct {
	eventRepo membership.EventRepository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo membership.EventRepository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, memberID uint) ([]*dto.EventDTO, error) {
	events, err := uc.eventRepo.ListByMember(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to list membership events", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list membership events: %w", err)
	}
	return dto.ToEventDTOs(events), nil
}
