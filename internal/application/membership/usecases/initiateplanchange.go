package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type InitiatePlanChangeCommand struct {
	MemberID  uint
	RequestID string
}

type InitiatePlanChangeUseCase struct {
	writer      *MemberWriter
	requestRepo membership.PlanChangeRepository
	logger      logger.Interface
}

func NewInitiatePlanChangeUseCase(
	writer *MemberWriter,
	requestRepo membership.PlanChangeRepository,
	logger logger.Interface,
) *InitiatePlanChangeUseCase {
	return &InitiatePlanChangeUseCase{
		writer:      writer,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute confirms the member's intent and tells them which proof the final step needs.
// Calling it again for a confirmed request returns the same answer.
func (uc *InitiatePlanChangeUseCase) Execute(ctx context.Context, cmd InitiatePlanChangeCommand) (*dto.InitiatePlanChangeDTO, error) {
	var (
		request *membership.PlanChangeRequest
		expired bool
	)

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, _ *membership.Record, now time.Time) error {
		var err error
		request, err = loadOwnRequest(ctx, uc.requestRepo, cmd.MemberID, cmd.RequestID)
		if err != nil {
			return err
		}

		if request.IsExpired(now) {
			expired = true
			return expireRequest(ctx, uc.requestRepo, request)
		}

		if err := request.Confirm(now); err != nil {
			return err
		}
		if err := uc.requestRepo.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update plan change request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}
	if expired {
		uc.logger.Infow("plan change request expired", "member_id", cmd.MemberID, "request_id", cmd.RequestID)
		return nil, toAppError(membership.ErrRequestExpired)
	}

	uc.logger.Infow("plan change initiated",
		"member_id", cmd.MemberID,
		"request_id", request.RequestID(),
		"payment_required", request.PaymentRequired(),
	)
	return dto.ToInitiatePlanChangeDTO(request), nil
}

// loadOwnRequest hides requests of other members behind not found.
func loadOwnRequest(ctx context.Context, repo membership.PlanChangeRepository, memberID uint, requestID string) (*membership.PlanChangeRequest, error) {
	request, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan change request: %w", err)
	}
	if request == nil || request.MemberID() != memberID {
		return nil, membership.ErrRequestNotFound
	}
	return request, nil
}

// expireRequest persists the expiry so later reads agree with the error the caller gets.
func expireRequest(ctx context.Context, repo membership.PlanChangeRepository, request *membership.PlanChangeRequest) error {
	if !request.Expire() {
		return nil
	}
	if err := repo.Update(ctx, request); err != nil {
		return fmt.Errorf("failed to expire plan change request: %w", err)
	}
	return nil
}
