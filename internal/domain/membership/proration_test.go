package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
)

func TestCalculateProration_QuarterlyToMonthlyUpgrade(t *testing.T) {
	quarterly := newTestPlan(t, 1, 9000, 3)
	monthly := newTestPlan(t, 2, 5000, 1)
	current := newTestRecord(t, quarterly, vo.StatusActive, testNow.Add(days(30)), nil)

	result, err := CalculateProration(current, quarterly, monthly, testNow)

	require.NoError(t, err)
	assert.Equal(t, 30, result.DaysRemaining)
	assert.Equal(t, 90, result.DaysTotal)
	assert.Equal(t, int64(3000), result.CurrentPlanBalance)
	assert.Equal(t, int64(5000), result.NewPlanPrice)
	assert.Equal(t, int64(2000), result.BalanceDifference)
	assert.True(t, result.PaymentRequired)
	assert.Equal(t, int64(2000), result.AmountDue())
	assert.Zero(t, result.CreditForfeited())
}

func TestCalculateProration_DowngradeForfeitsCredit(t *testing.T) {
	annual := newTestPlan(t, 1, 30000, 12)
	monthly := newTestPlan(t, 2, 5000, 1)
	current := newTestRecord(t, annual, vo.StatusActive, testNow.Add(days(180)), nil)

	result, err := CalculateProration(current, annual, monthly, testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(15000), result.CurrentPlanBalance)
	assert.Equal(t, int64(-10000), result.BalanceDifference)
	assert.False(t, result.PaymentRequired)
	assert.Zero(t, result.AmountDue())
	assert.Equal(t, int64(10000), result.CreditForfeited())
}

func TestCalculateProration_SingleDayPlanHasNoBalance(t *testing.T) {
	dayPass := newTestPlan(t, 1, 1500, 0)
	monthly := newTestPlan(t, 2, 5000, 1)
	current := newTestRecord(t, dayPass, vo.StatusActive, testNow.Add(6*time.Hour), nil)

	result, err := CalculateProration(current, dayPass, monthly, testNow)

	require.NoError(t, err)
	assert.Zero(t, result.DaysTotal)
	assert.Zero(t, result.CurrentPlanBalance)
	assert.Equal(t, int64(5000), result.BalanceDifference)
}

func TestCalculateProration_SamePlanIsRejected(t *testing.T) {
	monthly := newTestPlan(t, 2, 5000, 1)
	current := newTestRecord(t, monthly, vo.StatusActive, testNow.Add(days(10)), nil)

	_, err := CalculateProration(current, monthly, monthly, testNow)

	assert.ErrorIs(t, err, ErrNoOpPlanChange)
}

func TestCalculateProration_PlanMismatchIsInvalidInput(t *testing.T) {
	monthly := newTestPlan(t, 2, 5000, 1)
	annual := newTestPlan(t, 3, 30000, 12)
	current := newTestRecord(t, monthly, vo.StatusActive, testNow.Add(days(10)), nil)

	_, err := CalculateProration(current, annual, monthly, testNow)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateProration_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		daysLeft int
		want     int64
	}{
		{"exact half rounds up", 45, 1, 2},
		{"below half rounds down", 1000, 1, 33},
		{"above half rounds up", 1000, 2, 67},
		{"full term is full price", 1000, 30, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := newTestPlan(t, 1, tt.price, 1)
			other := newTestPlan(t, 2, 0, 1)
			current := newTestRecord(t, monthly, vo.StatusActive, testNow.Add(days(tt.daysLeft)), nil)

			result, err := CalculateProration(current, monthly, other, testNow)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.CurrentPlanBalance)
		})
	}
}

func TestCalculateProration_PartialDayCountsAsDay(t *testing.T) {
	monthly := newTestPlan(t, 1, 3000, 1)
	other := newTestPlan(t, 2, 0, 1)
	current := newTestRecord(t, monthly, vo.StatusActive, testNow.Add(days(29)+time.Hour), nil)

	result, err := CalculateProration(current, monthly, other, testNow)

	require.NoError(t, err)
	assert.Equal(t, 30, result.DaysRemaining)
	assert.Equal(t, int64(3000), result.CurrentPlanBalance)
}

func TestCalculateProration_BalanceWithinPlanPrice(t *testing.T) {
	quarterly := newTestPlan(t, 1, 9000, 3)
	monthly := newTestPlan(t, 2, 5000, 1)

	for daysLeft := -5; daysLeft <= 200; daysLeft += 5 {
		current := newTestRecord(t, quarterly, vo.StatusActive, testNow.Add(days(daysLeft)), nil)

		first, err := CalculateProration(current, quarterly, monthly, testNow)
		require.NoError(t, err)
		second, err := CalculateProration(current, quarterly, monthly, testNow)
		require.NoError(t, err)

		assert.Equal(t, first, second, "days left %d", daysLeft)
		assert.GreaterOrEqual(t, first.CurrentPlanBalance, int64(0))
		assert.LessOrEqual(t, first.CurrentPlanBalance, quarterly.PriceMinorUnits())
	}
}

func TestValueOfRemainingTime_Ended(t *testing.T) {
	monthly := newTestPlan(t, 1, 5000, 1)
	current := newTestRecord(t, monthly, vo.StatusActive, testNow.Add(-days(3)), nil)

	daysLeft, value := ValueOfRemainingTime(current, monthly, testNow)

	assert.Zero(t, daysLeft)
	assert.Zero(t, value)
}
