package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers/testutil"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetMembershipUC struct {
	result   *dto.MembershipDTO
	err      error
	memberID uint
}

func (m *mockGetMembershipUC) Execute(ctx context.Context, memberID uint) (*dto.MembershipDTO, error) {
	m.memberID = memberID
	return m.result, m.err
}

type mockCheckAccessUC struct {
	result   *dto.AccessDTO
	err      error
	memberID uint
}

func (m *mockCheckAccessUC) Execute(ctx context.Context, memberID uint) (*dto.AccessDTO, error) {
	m.memberID = memberID
	return m.result, m.err
}

type mockListHistoryUC struct {
	result *dto.HistoryDTO
	err    error
	query  usecases.ListHistoryQuery
}

func (m *mockListHistoryUC) Execute(ctx context.Context, query usecases.ListHistoryQuery) (*dto.HistoryDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockListEventsUC struct {
	result []*dto.EventDTO
	err    error
}

func (m *mockListEventsUC) Execute(ctx context.Context, memberID uint) ([]*dto.EventDTO, error) {
	return m.result, m.err
}

type mockListCancellationsUC struct {
	result   []*dto.CancellationDTO
	err      error
	memberID uint
}

func (m *mockListCancellationsUC) Execute(ctx context.Context, memberID uint) ([]*dto.CancellationDTO, error) {
	m.memberID = memberID
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestMembershipDTO(memberID uint) *dto.MembershipDTO {
	return &dto.MembershipDTO{
		MemberID:                 memberID,
		Version:                  1,
		PlanID:                   1,
		PlanName:                 "Quarterly",
		Status:                   "active",
		EffectiveStatus:          "active",
		StartDate:                testNow.AddDate(0, -2, 0),
		EndDate:                  testNow.AddDate(0, 0, 30),
		AutoRenew:                true,
		DaysRemaining:            30,
		RemainingValueMinorUnits: 3000,
		HasAccess:                true,
		CreatedAt:                testNow.AddDate(0, -2, 0),
	}
}

// =====================================================================
// TestMembershipHandler
// =====================================================================

func TestMembershipHandler_GetMembership(t *testing.T) {
	t.Run("returns the caller's record", func(t *testing.T) {
		uc := &mockGetMembershipUC{result: createTestMembershipDTO(42)}
		handler := NewMembershipHandler(uc, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/membership", nil)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.GetMembership(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), uc.memberID)

		var got dto.MembershipDTO
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		assert.Equal(t, 30, got.DaysRemaining)
		assert.Equal(t, int64(3000), got.RemainingValueMinorUnits)
		assert.Equal(t, "active", got.EffectiveStatus)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewMembershipHandler(&mockGetMembershipUC{}, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/membership", nil)
		handler.GetMembership(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no membership", func(t *testing.T) {
		uc := &mockGetMembershipUC{err: errors.NewNotFoundError("membership not found")}
		handler := NewMembershipHandler(uc, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/membership", nil)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.GetMembership(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, string(errors.ErrorTypeNotFound), resp.Error.Type)
	})
}

func TestMembershipHandler_GetAccess(t *testing.T) {
	uc := &mockCheckAccessUC{result: &dto.AccessDTO{MemberID: 42, Allowed: false, EffectiveStatus: "paused", Reason: dto.AccessReasonPaused}}
	handler := NewMembershipHandler(nil, uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/membership/access", nil)
	testutil.SetAuthContext(c, 42, constants.RoleMember)
	handler.GetAccess(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.AccessDTO
	_, err := testutil.ParseData(w, &got)
	require.NoError(t, err)
	assert.False(t, got.Allowed)
	assert.Equal(t, dto.AccessReasonPaused, got.Reason)
}

func TestMembershipHandler_GetHistory(t *testing.T) {
	uc := &mockListHistoryUC{result: &dto.HistoryDTO{
		Versions: []*dto.MembershipDTO{createTestMembershipDTO(42)},
		Total:    3,
		Page:     2,
		PageSize: 1,
	}}
	handler := NewMembershipHandler(nil, nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/membership/history", nil)
	testutil.SetAuthContext(c, 42, constants.RoleMember)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "1"})
	handler.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListHistoryQuery{MemberID: 42, Page: 2, PageSize: 1}, uc.query)

	var list utils.ListResponse
	_, err := testutil.ParseData(w, &list)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}

func TestMembershipHandler_ListEvents(t *testing.T) {
	uc := &mockListEventsUC{result: []*dto.EventDTO{{ID: 1, RecordVersion: 1, EventType: "created"}}}
	handler := NewMembershipHandler(nil, nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/membership/events", nil)
	testutil.SetAuthContext(c, 42, constants.RoleMember)
	handler.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var events []dto.EventDTO
	_, err := testutil.ParseData(w, &events)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "created", events[0].EventType)
}

func TestMembershipHandler_CheckIn(t *testing.T) {
	handler := NewMembershipHandler(nil, nil, nil, nil, testutil.NewMockLogger())

	t.Run("after access check", func(t *testing.T) {
		checker := &mockCheckAccessUC{result: &dto.AccessDTO{MemberID: 42, Allowed: true, EffectiveStatus: "active"}}
		guard := middleware.NewMembershipAccess(checker, testutil.NewMockLogger()).RequireActive()

		c, w := testutil.NewTestContext(http.MethodPost, "/facility/check-in", nil)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		guard(c)
		require.False(t, c.IsAborted())
		handler.CheckIn(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without access check", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodPost, "/facility/check-in", nil)
		testutil.SetAuthContext(c, 42, constants.RoleMember)
		handler.CheckIn(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
