package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
)

// quarterly member with 30 of 90 days left switching to monthly
func upgradeScenario(t *testing.T) (*harness, *membership.Plan, *membership.Plan) {
	h := newHarness(t)
	quarterly := h.plan("Quarterly", 9000, 3)
	monthly := h.plan("Monthly", 5000, 1)
	h.subscribe(42, quarterly, time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC))
	return h, quarterly, monthly
}

func TestCalculatePlanChange_ProratesRemainingTime(t *testing.T) {
	h, quarterly, monthly := upgradeScenario(t)

	out, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)

	assert.NotEmpty(t, out.RequestID)
	assert.Equal(t, quarterly.ID(), out.FromPlanID)
	assert.Equal(t, monthly.ID(), out.ToPlanID)
	assert.Equal(t, 30, out.DaysRemaining)
	assert.Equal(t, 90, out.DaysTotal)
	assert.Equal(t, int64(3000), out.CurrentPlanBalance)
	assert.Equal(t, int64(2000), out.BalanceDifference)
	assert.True(t, out.PaymentRequired)
	assert.Equal(t, int64(2000), out.AmountDue)
	assert.Equal(t, "calculated", out.Status)
	assert.True(t, out.ExpiresAt.Equal(testNow.Add(testTTL)))

	stored := h.request(out.RequestID)
	assert.Equal(t, 1, stored.BaseRecordVersion())
	assert.Equal(t, vo.PlanChangeCalculated, stored.Status())
}

func TestCalculatePlanChange_SupersedesLiveRequests(t *testing.T) {
	h, _, monthly := upgradeScenario(t)
	annual := h.plan("Annual", 30000, 12)

	first, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)
	second, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: annual.ID()})
	require.NoError(t, err)

	assert.Equal(t, vo.PlanChangeExpired, h.request(first.RequestID).Status())
	assert.Equal(t, vo.PlanChangeCalculated, h.request(second.RequestID).Status())

	_, err = h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: first.RequestID})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRequestExpired))
}

func TestCalculatePlanChange_Rejections(t *testing.T) {
	h, quarterly, monthly := upgradeScenario(t)
	retired := h.plan("Legacy", 4000, 1)
	retired.Retire()
	require.NoError(t, h.plans.Update(h.ctx, retired))

	tests := []struct {
		name     string
		memberID uint
		planID   uint
		errType  apperrors.ErrorType
	}{
		{"no membership", 7, monthly.ID(), apperrors.ErrorTypeNotFound},
		{"unknown plan", 42, 9999, apperrors.ErrorTypeNotFound},
		{"retired plan", 42, retired.ID(), apperrors.ErrorTypeNotFound},
		{"same plan", 42, quarterly.ID(), apperrors.ErrorTypeNoOpPlanChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: tt.memberID, NewPlanID: tt.planID})
			assert.True(t, apperrors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestCalculatePlanChange_RequiresActiveMembership(t *testing.T) {
	h, _, monthly := upgradeScenario(t)

	_, err := h.pause().Execute(h.ctx, PauseMembershipCommand{MemberID: 42, DurationDays: 15})
	require.NoError(t, err)

	_, err = h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidState))
}

func TestInitiatePlanChange(t *testing.T) {
	h, _, monthly := upgradeScenario(t)
	calc, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)

	t.Run("confirms and names the payment step", func(t *testing.T) {
		out, err := h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: calc.RequestID})
		require.NoError(t, err)
		assert.True(t, out.PaymentRequired)
		assert.Equal(t, int64(2000), out.AmountDue)
		assert.Equal(t, "payment", out.ConfirmTarget)
		assert.Equal(t, vo.PlanChangeConfirmed, h.request(calc.RequestID).Status())
	})

	t.Run("repeat returns the same answer", func(t *testing.T) {
		out, err := h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: calc.RequestID})
		require.NoError(t, err)
		assert.Equal(t, int64(2000), out.AmountDue)
	})

	t.Run("other members cannot see it", func(t *testing.T) {
		_, err := h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 7, RequestID: calc.RequestID})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestInitiatePlanChange_ExpiresAfterTTL(t *testing.T) {
	h, _, monthly := upgradeScenario(t)
	calc, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)

	h.clock.Advance(testTTL)

	_, err = h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: calc.RequestID})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRequestExpired))
	assert.Equal(t, vo.PlanChangeExpired, h.request(calc.RequestID).Status())
}

func confirmedUpgrade(t *testing.T) (*harness, *membership.Plan, string) {
	h, _, monthly := upgradeScenario(t)
	calc, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)
	_, err = h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: calc.RequestID})
	require.NoError(t, err)
	return h, monthly, calc.RequestID
}

func TestConfirmPlanChange_AppliesWithPayment(t *testing.T) {
	h, monthly, requestID := confirmedUpgrade(t)
	h.clock.Advance(5 * time.Minute)
	applyAt := h.clock.Now()

	h.payments.On("VerifyPayment", "receipt-1", uint(42), requestID, int64(2000)).Return("jti:upgrade-1", nil).Once()

	out, err := h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID, PaymentReceipt: "receipt-1"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Version)
	assert.Equal(t, monthly.ID(), out.PlanID)
	assert.Equal(t, "active", out.Status)
	assert.True(t, out.StartDate.Equal(applyAt))
	assert.True(t, out.EndDate.Equal(applyAt.AddDate(0, 1, 0)))
	assert.True(t, out.AutoRenew, "auto-renew carries over")

	current := h.current(42)
	assert.Equal(t, 2, current.Version())
	assert.Equal(t, monthly.ID(), current.PlanID())

	req := h.request(requestID)
	assert.Equal(t, vo.PlanChangeApplied, req.Status())
	require.NotNil(t, req.AppliedRecordVersion())
	assert.Equal(t, 2, *req.AppliedRecordVersion())

	redeemed, err := h.receipts.GetByKey(h.ctx, "jti:upgrade-1")
	require.NoError(t, err)
	require.NotNil(t, redeemed)
	assert.Equal(t, requestID, redeemed.Reference())
	assert.Equal(t, int64(2000), redeemed.AmountMinorUnits())

	events, err := h.events.ListByMember(h.ctx, 42)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, vo.EventPlanChanged, events[0].EventType())
	assert.Equal(t, 2, events[0].RecordVersion())

	t.Run("retry returns the applied version", func(t *testing.T) {
		h.clock.Advance(time.Hour)
		again, err := h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID})
		require.NoError(t, err)
		assert.Equal(t, 2, again.Version)
		assert.Equal(t, 2, h.current(42).Version())
	})
}

func TestConfirmPlanChange_RejectedPaymentKeepsRequestConfirmed(t *testing.T) {
	h, _, requestID := confirmedUpgrade(t)

	h.payments.On("VerifyPayment", "forged", uint(42), requestID, int64(2000)).
		Return("", membership.ErrUnauthorized).Once()

	_, err := h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID, PaymentReceipt: "forged"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))

	assert.Equal(t, vo.PlanChangeConfirmed, h.request(requestID).Status())
	assert.Equal(t, 1, h.current(42).Version())
}

func TestConfirmPlanChange_DowngradeNeedsCredentials(t *testing.T) {
	h := newHarness(t)
	annual := h.plan("Annual", 30000, 12)
	monthly := h.plan("Monthly", 5000, 1)
	h.subscribe(42, annual, testNow.Add(-days(10)))

	calc, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)
	assert.False(t, calc.PaymentRequired)
	assert.Positive(t, calc.CreditForfeited)

	init, err := h.initiate().Execute(h.ctx, InitiatePlanChangeCommand{MemberID: 42, RequestID: calc.RequestID})
	require.NoError(t, err)
	assert.Equal(t, "credentials", init.ConfirmTarget)
	assert.Zero(t, init.AmountDue)

	h.credentials.On("VerifyCredentials", uint(42), "wrong").Return(membership.ErrUnauthorized).Once()
	h.credentials.On("VerifyCredentials", uint(42), "hunter22").Return(nil).Once()

	_, err = h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: calc.RequestID, Password: "wrong"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))

	out, err := h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: calc.RequestID, Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, monthly.ID(), out.PlanID)
	h.payments.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPlanChange_Expired(t *testing.T) {
	h, _, requestID := confirmedUpgrade(t)
	h.clock.Advance(testTTL + time.Second)

	_, err := h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID, PaymentReceipt: "receipt"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRequestExpired))
	assert.Equal(t, vo.PlanChangeExpired, h.request(requestID).Status())
	assert.Equal(t, 1, h.current(42).Version())
}

func TestConfirmPlanChange_NotInitiated(t *testing.T) {
	h, _, monthly := upgradeScenario(t)
	calc, err := h.calculate().Execute(h.ctx, CalculatePlanChangeCommand{MemberID: 42, NewPlanID: monthly.ID()})
	require.NoError(t, err)

	_, err = h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: calc.RequestID, PaymentReceipt: "receipt"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidState))
}

func TestConfirmPlanChange_ConflictsWithConcurrentWrite(t *testing.T) {
	h, _, requestID := confirmedUpgrade(t)

	// another writer appended a version without going through the member writer
	current := h.current(42)
	next, err := current.SetAutoRenew(false, testNow)
	require.NoError(t, err)
	require.NoError(t, h.records.Append(context.Background(), next))

	h.payments.On("VerifyPayment", "receipt", uint(42), requestID, int64(2000)).Return("jti:stale-1", nil).Once()

	_, err = h.confirm().Execute(h.ctx, ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID, PaymentReceipt: "receipt"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.Equal(t, vo.PlanChangeConfirmed, h.request(requestID).Status())

	redeemed, err := h.receipts.GetByKey(h.ctx, "jti:stale-1")
	require.NoError(t, err)
	assert.Nil(t, redeemed, "rolled back confirmation leaves the receipt unspent")
}
