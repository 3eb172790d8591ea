package membership

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ProrationResult is the outcome of switching from one plan to another at a point in time.
// All amounts are in currency minor units.
type ProrationResult struct {
	FromPlanID         uint
	ToPlanID           uint
	DaysRemaining      int
	DaysTotal          int
	CurrentPlanBalance int64
	NewPlanPrice       int64
	BalanceDifference  int64
	PaymentRequired    bool
}

// AmountDue is what the member pays to switch. Never negative.
func (r ProrationResult) AmountDue() int64 {
	if r.BalanceDifference > 0 {
		return r.BalanceDifference
	}
	return 0
}

// CreditForfeited is unused value that exceeds the new plan's price. It is never paid out.
func (r ProrationResult) CreditForfeited() int64 {
	if r.BalanceDifference < 0 {
		return -r.BalanceDifference
	}
	return 0
}

// CalculateProration prices a switch from currentPlan to newPlan for the member owning current.
// It performs no I/O and depends on time only through now.
func CalculateProration(current *Record, currentPlan, newPlan *Plan, now time.Time) (ProrationResult, error) {
	if current == nil || currentPlan == nil || newPlan == nil {
		return ProrationResult{}, invalidInput("record and both plans are required")
	}
	if current.PlanID() != currentPlan.ID() {
		return ProrationResult{}, invalidInput("record is on plan %d, not %d", current.PlanID(), currentPlan.ID())
	}
	if newPlan.ID() == currentPlan.ID() {
		return ProrationResult{}, ErrNoOpPlanChange
	}

	daysRemaining, balance := ValueOfRemainingTime(current, currentPlan, now)
	diff := newPlan.PriceMinorUnits() - balance

	return ProrationResult{
		FromPlanID:         currentPlan.ID(),
		ToPlanID:           newPlan.ID(),
		DaysRemaining:      daysRemaining,
		DaysTotal:          currentPlan.DurationDays(),
		CurrentPlanBalance: balance,
		NewPlanPrice:       newPlan.PriceMinorUnits(),
		BalanceDifference:  diff,
		PaymentRequired:    diff > 0,
	}, nil
}

// ValueOfRemainingTime returns the days left on record and their worth under plan.
// The value never exceeds the plan price, even when a pause pushed the end date out.
func ValueOfRemainingTime(record *Record, plan *Plan, now time.Time) (int, int64) {
	daysRemaining := record.DaysRemaining(now)
	return daysRemaining, proratedValue(plan.PriceMinorUnits(), daysRemaining, plan.DurationDays())
}

// proratedValue is round-half-up(price * remaining / total), with remaining clamped to total.
func proratedValue(price int64, remaining, total int) int64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining > total {
		remaining = total
	}
	return decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(int64(remaining))).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart()
}

// daysBetween counts the started 24h periods from now until end, or 0 if end has passed.
func daysBetween(now, end time.Time) int {
	if !end.After(now) {
		return 0
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
