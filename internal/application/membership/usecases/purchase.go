package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/domain/membership"
)

// loadPurchasablePlan returns planID when it is on sale.
func loadPurchasablePlan(ctx context.Context, planRepo membership.PlanRepository, planID uint) (*membership.Plan, error) {
	plan, err := planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil || plan.IsRetired() {
		return nil, membership.ErrPlanNotFound
	}
	return plan, nil
}

// verifyPurchase charges the full plan price. Free plans need no receipt.
// ctx must carry the Mutate transaction.
func verifyPurchase(ctx context.Context, payments PaymentVerifier, writer *MemberWriter, memberID uint, plan *membership.Plan, receipt string, now time.Time) error {
	if plan.PriceMinorUnits() == 0 {
		return nil
	}
	return redeemPayment(ctx, payments, writer, receipt, memberID, plan.PurchaseReference(), plan.PriceMinorUnits(), now)
}

// redeemPayment verifies receipt and marks it spent.
func redeemPayment(ctx context.Context, payments PaymentVerifier, writer *MemberWriter, receipt string, memberID uint, reference string, amount int64, now time.Time) error {
	key, err := payments.VerifyPayment(ctx, receipt, memberID, reference, amount)
	if err != nil {
		return err
	}
	return writer.Redeem(ctx, key, memberID, reference, amount, now)
}
