package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ReactivateMembershipCommand struct {
	MemberID            uint
	NewPlanID           uint
	PersonalData        *member.PersonalData
	ConfirmPersonalData bool
	AutoRenew           bool
	PaymentReceipt      string
}

type ReactivateMembershipUseCase struct {
	writer     *MemberWriter
	planRepo   membership.PlanRepository
	memberRepo member.Repository
	payments   PaymentVerifier
	logger     logger.Interface
}

func NewReactivateMembershipUseCase(
	writer *MemberWriter,
	planRepo membership.PlanRepository,
	memberRepo member.Repository,
	payments PaymentVerifier,
	logger logger.Interface,
) *ReactivateMembershipUseCase {
	return &ReactivateMembershipUseCase{
		writer:     writer,
		planRepo:   planRepo,
		memberRepo: memberRepo,
		payments:   payments,
		logger:     logger,
	}
}

// Execute starts a new term for a cancelled member, priced like a first purchase.
// Personal data changes are saved in the same transaction as the new version.
func (uc *ReactivateMembershipUseCase) Execute(ctx context.Context, cmd ReactivateMembershipCommand) (*dto.MembershipDTO, error) {
	if !cmd.ConfirmPersonalData {
		return nil, toAppError(fmt.Errorf("%w: personal data must be confirmed before reactivating", membership.ErrInvalidInput))
	}

	var (
		reactivated *membership.Record
		plan        *membership.Plan
		now         time.Time
	)

	err := uc.writer.Mutate(ctx, cmd.MemberID, func(ctx context.Context, current *membership.Record, txNow time.Time) error {
		now = txNow
		if current == nil {
			return membership.ErrMembershipNotFound
		}
		if current.Status() != vo.StatusCancelled {
			return fmt.Errorf("%w: only a cancelled membership can be reactivated, current status is %s",
				membership.ErrInvalidState, current.EffectiveStatus(now))
		}

		var err error
		plan, err = loadPurchasablePlan(ctx, uc.planRepo, cmd.NewPlanID)
		if err != nil {
			return err
		}

		m, err := uc.memberRepo.GetByID(ctx, cmd.MemberID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if m == nil {
			return membership.ErrMemberNotFound
		}

		profileChanged := !cmd.PersonalData.IsEmpty()
		if profileChanged {
			if err := m.ApplyPersonalData(cmd.PersonalData, now); err != nil {
				return err
			}
		}

		if err := verifyPurchase(ctx, uc.payments, uc.writer, cmd.MemberID, plan, cmd.PaymentReceipt, txNow); err != nil {
			return err
		}

		next, err := current.Reactivate(plan, cmd.AutoRenew, now)
		if err != nil {
			return err
		}

		if profileChanged {
			if err := uc.memberRepo.Update(ctx, m); err != nil {
				return fmt.Errorf("failed to update member profile: %w", err)
			}
		}

		metadata := map[string]any{
			"amount_paid":           plan.PriceMinorUnits(),
			"personal_data_updated": profileChanged,
		}
		if err := uc.writer.Append(ctx, vo.EventReactivated, current, next, metadata); err != nil {
			return err
		}
		reactivated = next
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Infow("membership reactivated",
		"member_id", cmd.MemberID,
		"plan_id", plan.ID(),
		"version", reactivated.Version(),
	)
	return dto.ToMembershipDTO(reactivated, plan, now), nil
}
