package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers/testutil"
)

type mockListPlansUC struct {
	result []*dto.PlanDTO
	err    error
	query  usecases.ListPlansQuery
}

func (m *mockListPlansUC) Execute(ctx context.Context, query usecases.ListPlansQuery) ([]*dto.PlanDTO, error) {
	m.query = query
	return m.result, m.err
}

func TestPlanHandler_ListPlans(t *testing.T) {
	t.Run("returns active plans", func(t *testing.T) {
		uc := &mockListPlansUC{result: []*dto.PlanDTO{
			{ID: 1, Name: "Monthly", PriceMinorUnits: 5000, Currency: "USD", DurationMonths: 1, DurationDays: 30},
			{ID: 2, Name: "Annual", PriceMinorUnits: 30000, Currency: "USD", DurationMonths: 12, DurationDays: 360},
		}}
		handler := NewPlanHandler(uc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/plans", nil)
		handler.ListPlans(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, uc.query.IncludeRetired)

		var plans []dto.PlanDTO
		resp, err := testutil.ParseData(w, &plans)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.Len(t, plans, 2)
		assert.Equal(t, "Annual", plans[1].Name)
		assert.Equal(t, 360, plans[1].DurationDays)
	})

	t.Run("hides internal errors", func(t *testing.T) {
		uc := &mockListPlansUC{err: errors.New("db down")}
		handler := NewPlanHandler(uc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/plans", nil)
		handler.ListPlans(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		assert.NotContains(t, resp.Error.Message, "db down")
	})
}
