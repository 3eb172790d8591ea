package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below one", 0, 20, constants.DefaultPage, 20},
		{"page size below one", 1, -5, 1, constants.DefaultPageSize},
		{"page size capped", 1, 1000, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestParsePagination(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&page_size=abc", nil)

	got := ParsePagination(c)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, constants.DefaultPageSize, got.PageSize)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
}

type pauseRequest struct {
	DurationDays int `json:"duration_days" validate:"required,pause_days"`
}

func TestPauseDaysValidation(t *testing.T) {
	require.NoError(t, RegisterPauseDurations([]int{15, 30, 90}))

	assert.NoError(t, ValidateStruct(pauseRequest{DurationDays: 30}))

	err := ValidateStruct(pauseRequest{DurationDays: 20})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "duration_days is not an offered pause duration")
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"app error", errors.NewRequestExpiredError("stale"), http.StatusGone, "request_expired"},
		{"plain error is hidden", stderrors.New("dsn leaked"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantType, body.Error.Type)
			assert.NotContains(t, w.Body.String(), "dsn leaked")
		})
	}
}

func TestGetMemberIDFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetMemberIDFromContext(c)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))

	c.Set(constants.ContextKeyMemberID, uint(42))
	id, err := GetMemberIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}
