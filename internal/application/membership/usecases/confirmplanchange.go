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

type ConfirmPlanChangeCommand struct {
	MemberID       uint
	RequestID      string
	Password       string
	PaymentReceipt string
}

type ConfirmPlanChangeUseCase struct {
	writer      *MemberWriter
	planRepo    membership.PlanRepository
	recordRepo  membership.RecordRepository
	requestRepo membership.PlanChangeRepository
	payments    PaymentVerifier
	credentials CredentialVerifier
	logger      logger.Interface
}

func NewConfirmPlanChangeUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	recordRepo membership.RecordRepository,
	requestRepo membership.PlanChangeRepository,
	payments PaymentVerifier,
	credentials CredentialVerifier,
	logger logger.Interface,
) *ConfirmPlanChangeUseCase {
	return &ConfirmPlanChangeUseCase{
		writer:      writer,
		planRepo:    planRepo,
		recordRepo:  recordRepo,
		requestRepo: requestRepo,
		payments:    payments,
		credentials: credentials,
		logger:      logger,
	}
}

// Execute verifies the member's proof and applies a confirmed plan change.
// Retrying an applied request returns the record version it produced.
func (uc *ConfirmPlanChangeUseCase) Execute(ctx context.Context, cmd ConfirmPlanChangeCommand) (*dto.MembershipDTO, error) {
	var (
		applied *membership.Record
		plan    *membership.Plan
		expired bool
		now     time.Time
	)

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow

		request, err := loadOwnRequest(ctx, uc.requestRepo, cmd.MemberID, cmd.RequestID)
		if err != nil {
			return err
		}

		if request.Status() == vo.PlanChangeApplied {
			applied, plan, err = uc.appliedResult(ctx, request)
			return err
		}

		if request.IsExpired(now) {
			expired = true
			return expireRequest(ctx, uc.requestRepo, request)
		}
		if err := request.CanApply(now); err != nil {
			return err
		}

		if err := uc.verifyProof(ctx, request, cmd, txNow); err != nil {
			uc.logger.Warnw("plan change proof rejected",
				"member_id", cmd.MemberID,
				"request_id", cmd.RequestID,
				"confirm_target", request.ConfirmTarget(),
			)
			return err
		}

		if current == nil {
			return membership.ErrMembershipNotFound
		}
		if current.Version() != request.BaseRecordVersion() {
			return fmt.Errorf("%w: membership changed since the plan change was calculated", membership.ErrConflict)
		}

		plan, err = uc.planRepo.GetByID(ctx, request.ToPlanID())
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return membership.ErrPlanNotFound
		}

		next, err := current.ChangePlan(plan, now)
		if err != nil {
			return err
		}

		result := request.Result()
		metadata := map[string]any{
			"request_id":       request.RequestID(),
			"days_remaining":   result.DaysRemaining,
			"amount_paid":      result.AmountDue(),
			"credit_forfeited": result.CreditForfeited(),
		}
		if err := uc.writer.Append(ctx, vo.EventPlanChanged, current, next, metadata); err != nil {
			return err
		}

		if err := request.MarkApplied(next.Version(), now); err != nil {
			return err
		}
		if err := uc.requestRepo.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to mark plan change applied: %w", err)
		}

		applied = next
		uc.logger.Infow("plan change applied",
			"member_id", cmd.MemberID,
			"request_id", request.RequestID(),
			"from_plan_id", current.PlanID(),
			"to_plan_id", next.PlanID(),
			"version", next.Version(),
		)
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}
	if expired {
		return nil, toAppError(membership.ErrRequestExpired)
	}

	return dto.ToMembershipDTO(applied, plan, now), nil
}

func (uc *ConfirmPlanChangeUseCase) verifyProof(ctx context.Context, request *membership.PlanChangeRequest, cmd ConfirmPlanChangeCommand, now time.Time) error {
	if request.ConfirmTarget() == vo.ConfirmWithPayment {
		return redeemPayment(ctx, uc.payments, uc.writer, cmd.PaymentReceipt, cmd.MemberID, request.RequestID(), request.AmountDue(), now)
	}
	return uc.credentials.VerifyCredentials(ctx, cmd.MemberID, cmd.Password)
}

func (uc *ConfirmPlanChangeUseCase) appliedResult(ctx context.Context, request *membership.PlanChangeRequest) (*membership.Record, *membership.Plan, error) {
	version := request.AppliedRecordVersion()
	if version == nil {
		return nil, nil, fmt.Errorf("applied plan change request %s has no record version", request.RequestID())
	}

	record, err := uc.recordRepo.GetByVersion(ctx, request.MemberID(), *version)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get applied membership version: %w", err)
	}
	if record == nil {
		return nil, nil, membership.ErrMembershipNotFound
	}

	plan, err := uc.planRepo.GetByID(ctx, record.PlanID())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return record, plan, nil
}
