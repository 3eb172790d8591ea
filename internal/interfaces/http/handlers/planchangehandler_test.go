package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers/testutil"
	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/errors"
)

type mockCalculatePlanChangeUC struct {
	result *dto.PlanChangeDTO
	err    error
	cmd    usecases.CalculatePlanChangeCommand
}

func (m *mockCalculatePlanChangeUC) Execute(ctx context.Context, cmd usecases.CalculatePlanChangeCommand) (*dto.PlanChangeDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockInitiatePlanChangeUC struct {
	result *dto.InitiatePlanChangeDTO
	err    error
	cmd    usecases.InitiatePlanChangeCommand
}

func (m *mockInitiatePlanChangeUC) Execute(ctx context.Context, cmd usecases.InitiatePlanChangeCommand) (*dto.InitiatePlanChangeDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockConfirmPlanChangeUC struct {
	result *dto.MembershipDTO
	err    error
	cmd    usecases.ConfirmPlanChangeCommand
}

func (m *mockConfirmPlanChangeUC) Execute(ctx context.Context, cmd usecases.ConfirmPlanChangeCommand) (*dto.MembershipDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

func TestPlanChangeHandler_Calculate(t *testing.T) {
	requestID := uuid.NewString()

	t.Run("returns proration", func(t *testing.T) {
		uc := &mockCalculatePlanChangeUC{result: &dto.PlanChangeDTO{
			RequestID:          requestID,
			FromPlanID:         1,
			ToPlanID:           2,
			DaysRemaining:      30,
			DaysTotal:          90,
			CurrentPlanBalance: 3000,
			NewPlanPrice:       5000,
			BalanceDifference:  2000,
			PaymentRequired:    true,
			AmountDue:          2000,
			Status:             "calculated",
			ExpiresAt:          testNow.Add(15 * time.Minute),
		}}
		handler := NewPlanChangeHandler(uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/calculate", CalculatePlanChangeRequest{NewPlanID: 2})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Calculate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.CalculatePlanChangeCommand{MemberID: 42, NewPlanID: 2}, uc.cmd)

		var got dto.PlanChangeDTO
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		assert.Equal(t, requestID, got.RequestID)
		assert.Equal(t, int64(2000), got.AmountDue)
	})

	t.Run("missing plan", func(t *testing.T) {
		handler := NewPlanChangeHandler(&mockCalculatePlanChangeUC{}, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/calculate", map[string]any{})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Calculate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
		assert.Contains(t, resp.Error.Details, "new_plan_id")
	})

	t.Run("same plan", func(t *testing.T) {
		uc := &mockCalculatePlanChangeUC{err: errors.NewNoOpPlanChangeError("already on this plan")}
		handler := NewPlanChangeHandler(uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/calculate", CalculatePlanChangeRequest{NewPlanID: 1})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Calculate(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestPlanChangeHandler_Initiate(t *testing.T) {
	requestID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		uc := &mockInitiatePlanChangeUC{result: &dto.InitiatePlanChangeDTO{
			RequestID:       requestID,
			PaymentRequired: true,
			AmountDue:       2000,
			ConfirmTarget:   "payment",
		}}
		handler := NewPlanChangeHandler(nil, uc, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/initiate", InitiatePlanChangeRequest{RequestID: requestID})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Initiate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, requestID, uc.cmd.RequestID)
		assert.Equal(t, uint(42), uc.cmd.MemberID)
	})

	t.Run("malformed request id", func(t *testing.T) {
		handler := NewPlanChangeHandler(nil, &mockInitiatePlanChangeUC{}, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/initiate", InitiatePlanChangeRequest{RequestID: "abc"})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Initiate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		uc := &mockInitiatePlanChangeUC{err: errors.NewRequestExpiredError("plan change request expired")}
		handler := NewPlanChangeHandler(nil, uc, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/initiate", InitiatePlanChangeRequest{RequestID: requestID})
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Initiate(c)

		assert.Equal(t, http.StatusGone, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, string(errors.ErrorTypeRequestExpired), resp.Error.Type)
	})
}

func TestPlanChangeHandler_Confirm(t *testing.T) {
	requestID := uuid.NewString()

	t.Run("passes proof through", func(t *testing.T) {
		result := createTestMembershipDTO(42)
		result.Version = 2
		uc := &mockConfirmPlanChangeUC{result: result}
		handler := NewPlanChangeHandler(nil, nil, uc, testutil.NewMockLogger())

		body := ConfirmPlanChangeRequest{RequestID: requestID, PaymentReceipt: "receipt-1"}
		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/confirm", body)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Confirm(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.ConfirmPlanChangeCommand{MemberID: 42, RequestID: requestID, PaymentReceipt: "receipt-1"}, uc.cmd)

		var got dto.MembershipDTO
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := &mockConfirmPlanChangeUC{err: errors.NewUnauthorizedError("invalid credentials")}
		handler := NewPlanChangeHandler(nil, nil, uc, testutil.NewMockLogger())

		body := ConfirmPlanChangeRequest{RequestID: requestID, Password: "nope"}
		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/confirm", body)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Confirm(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("concurrent change", func(t *testing.T) {
		uc := &mockConfirmPlanChangeUC{err: errors.NewConflictError("membership changed concurrently")}
		handler := NewPlanChangeHandler(nil, nil, uc, testutil.NewMockLogger())

		body := ConfirmPlanChangeRequest{RequestID: requestID, Password: "secret"}
		c, w := testutil.NewTestContext(http.MethodPost, "/plan-change/confirm", body)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.Confirm(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
