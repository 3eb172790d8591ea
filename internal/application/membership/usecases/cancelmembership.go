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

type CancelMembershipCommand struct {
	MemberID uint
	Reason   string
}

type CancelMembershipUseCase struct {
	writer           *MemberWriter
	planRepo         membership.PlanRepository
	cancellationRepo membership.CancellationRepository
	logger           logger.Interface
}

func NewCancelMembershipUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	cancellationRepo membership.CancellationRepository,
	logger logger.Interface,
) *CancelMembershipUseCase {
	return &CancelMembershipUseCase{
		writer:           writer,
		planRepo:         planRepo,
		cancellationRepo: cancellationRepo,
		logger:           logger,
	}
}

// Execute freezes the membership and records what the member walked away from.
func (uc *CancelMembershipUseCase) Execute(ctx context.Context, cmd CancelMembershipCommand) (*dto.CancellationDTO, error) {
	var cancellation *membership.CancellationRecord

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, now time.Time) error {
		if current == nil {
			return membership.ErrMembershipNotFound
		}

		next, err := current.Cancel(now)
		if err != nil {
			return err
		}

		plan, err := uc.planRepo.GetByID(ctx, current.PlanID())
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("current plan %d is missing: %w", current.PlanID(), membership.ErrPlanNotFound)
		}

		cancellation, err = membership.NewCancellationRecord(current, next, plan, cmd.Reason, now)
		if err != nil {
			return err
		}

		metadata := map[string]any{
			"days_left":              cancellation.DaysLeftAtCancellation(),
			"value_lost_minor_units": cancellation.ValueLostMinorUnits(),
		}
		if cmd.Reason != "" {
			metadata["reason"] = cmd.Reason
		}
		if err := uc.writer.Append(ctx, vo.EventCancelled, current, next, metadata); err != nil {
			return err
		}

		if err := uc.cancellationRepo.Create(ctx, cancellation); err != nil {
			return fmt.Errorf("failed to store cancellation record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("membership cancelled",
		"member_id", cmd.MemberID,
		"days_left", cancellation.DaysLeftAtCancellation(),
		"value_lost", cancellation.ValueLostMinorUnits(),
	)
	return dto.ToCancellationDTO(cancellation), nil
}
