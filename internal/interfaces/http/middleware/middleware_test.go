package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/ratelimit"
	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s stubVerifier) Verify(token string) (*auth.Claims, error) {
	if token == "stale" {
		return nil, fmt.Errorf("failed to parse token: %w", jwt.ErrTokenExpired)
	}
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.claims, s.err
}

type stubEnforcer struct {
	allowed map[string]bool
	err     error
}

func (s stubEnforcer) Enforce(subject, resource, action string) (bool, error) {
	return s.allowed[subject+":"+resource+":"+action], s.err
}

type stubAccessChecker struct {
	result *dto.AccessDTO
	err    error
}

func (s stubAccessChecker) Execute(ctx context.Context, memberID uint) (*dto.AccessDTO, error) {
	return s.result, s.err
}

// authed fakes RequireAuth for middleware that run behind it.
func authed(memberID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyMemberID, memberID)
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

func serve(t *testing.T, r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"member_id": c.GetUint(constants.ContextKeyMemberID),
		"role":      c.GetString(constants.ContextKeyRole),
	})
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	verifier := stubVerifier{claims: &auth.Claims{MemberID: 42, Role: constants.RoleMember}}
	r := gin.New()
	r.GET("/membership", NewAuthMiddleware(verifier, logger.NewNopLogger()).RequireAuth(), ok)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantType   string
	}{
		{"valid bearer", "Bearer good", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "token_missing"},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, "token_missing"},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, "token_invalid"},
		{"expired token", "Bearer stale", http.StatusUnauthorized, "token_expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.header != "" {
				header[constants.HeaderAuthorization] = tt.header
			}
			w := serve(t, r, http.MethodGet, "/membership", header)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"member_id":42,"role":"member"}`, w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), `"type":"`+tt.wantType+`"`)
		})
	}
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	enforcer := stubEnforcer{allowed: map[string]bool{"front_desk:member_membership:read": true}}

	newRouter := func(role string, enabled bool, e PolicyEnforcer) *gin.Engine {
		r := gin.New()
		pm := NewPermissionMiddleware(e, enabled, logger.NewNopLogger())
		r.GET("/staff", authed(1, role), pm.RequirePermission("member_membership", "read"), ok)
		return r
	}

	assert.Equal(t, http.StatusOK, serve(t, newRouter(constants.RoleFrontDesk, true, enforcer), http.MethodGet, "/staff", nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(t, newRouter(constants.RoleMember, true, enforcer), http.MethodGet, "/staff", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, newRouter(constants.RoleMember, false, enforcer), http.MethodGet, "/staff", nil).Code)

	broken := stubEnforcer{err: errors.New("adapter closed")}
	assert.Equal(t, http.StatusInternalServerError, serve(t, newRouter(constants.RoleAdmin, true, broken), http.MethodGet, "/staff", nil).Code)
}

func TestMemberRateLimit_Limit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewMemoryRateLimiter(func() time.Time { return now })
	limit := NewMemberRateLimit(limiter, "plan_change_calculate", ratelimit.PerMinute(2), logger.NewNopLogger())

	r := gin.New()
	r.POST("/calc/:member", func(c *gin.Context) {
		if c.Param("member") == "42" {
			authed(42, constants.RoleMember)(c)
			return
		}
		authed(7, constants.RoleMember)(c)
	}, limit.Limit(), ok)

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodPost, "/calc/42", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodPost, "/calc/42", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, r, http.MethodPost, "/calc/42", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodPost, "/calc/7", nil).Code, "other members keep their own budget")
}

func TestMembershipAccess_RequireActive(t *testing.T) {
	tests := []struct {
		name       string
		checker    stubAccessChecker
		wantStatus int
	}{
		{"active", stubAccessChecker{result: &dto.AccessDTO{MemberID: 42, Allowed: true}}, http.StatusOK},
		{"paused", stubAccessChecker{result: &dto.AccessDTO{MemberID: 42, Reason: dto.AccessReasonPaused}}, http.StatusForbidden},
		{"lookup fails", stubAccessChecker{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			guard := NewMembershipAccess(tt.checker, logger.NewNopLogger())
			r.POST("/check-in", authed(42, constants.RoleMember), guard.RequireActive(), func(c *gin.Context) {
				access, found := GetAccessFromContext(c)
				require.True(t, found)
				c.JSON(http.StatusOK, access)
			})

			w := serve(t, r, http.MethodPost, "/check-in", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://portal.example.com"}))
	r.GET("/plans", ok)

	w := serve(t, r, http.MethodGet, "/plans", map[string]string{"Origin": "https://portal.example.com"})
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(t, r, http.MethodGet, "/plans", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(t, r, http.MethodOptions, "/plans", map[string]string{"Origin": "https://portal.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(logger.NewNopLogger()), Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/plans", ok)

	w := serve(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))

	w = serve(t, r, http.MethodGet, "/plans", map[string]string{constants.HeaderXRequestID: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(constants.HeaderXRequestID))
}
