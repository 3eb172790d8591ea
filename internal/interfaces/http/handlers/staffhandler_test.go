package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers/testutil"
	"github.com/gymflow/gymflow/internal/shared/constants"
)

func TestStaffHandler_GetMemberMembership(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		wantStatus int
		wantMember uint
	}{
		{"valid id", "7", http.StatusOK, 7},
		{"non numeric", "abc", http.StatusBadRequest, 0},
		{"zero", "0", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockGetMembershipUC{result: createTestMembershipDTO(7)}
			handler := NewStaffHandler(uc, nil, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/staff/members/"+tt.param+"/membership", nil)
			testutil.SetAuthContext(c, 1, constants.RoleFrontDesk)
			testutil.SetURLParam(c, "member_id", tt.param)
			handler.GetMemberMembership(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMember, uc.memberID)
		})
	}
}

func TestStaffHandler_GetMemberAccess(t *testing.T) {
	uc := &mockCheckAccessUC{result: &dto.AccessDTO{MemberID: 7, Allowed: true, EffectiveStatus: "active"}}
	handler := NewStaffHandler(nil, uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/staff/members/7/access", nil)
	testutil.SetAuthContext(c, 1, constants.RoleFrontDesk)
	testutil.SetURLParam(c, "member_id", "7")
	handler.GetMemberAccess(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), uc.memberID)
}

func TestStaffHandler_GetMemberHistory(t *testing.T) {
	uc := &mockListHistoryUC{result: &dto.HistoryDTO{Page: 1, PageSize: 20}}
	handler := NewStaffHandler(nil, nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/staff/members/7/history", nil)
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "member_id", "7")
	handler.GetMemberHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), uc.query.MemberID)
	assert.Equal(t, constants.DefaultPageSize, uc.query.PageSize)
}

func TestStaffHandler_ListMemberCancellations(t *testing.T) {
	uc := &mockListCancellationsUC{result: []*dto.CancellationDTO{
		{ID: 2, MemberID: 7, Reason: "injury", ValueLostMinorUnits: 2900},
		{ID: 1, MemberID: 7, Reason: "moving", ValueLostMinorUnits: 0},
	}}
	handler := NewStaffHandler(nil, nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/staff/members/7/cancellations", nil)
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "member_id", "7")
	handler.ListMemberCancellations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []dto.CancellationDTO
	_, err := testutil.ParseData(w, &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "injury", got[0].Reason)
}
