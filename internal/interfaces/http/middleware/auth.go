package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/shared/constants"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// TokenVerifier parses and validates an access token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's member id and role on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			m.reject(c, apperrors.NewTokenMissingError(""), nil)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			m.reject(c, apperrors.NewTokenMissingError("expected a Bearer token"), nil)
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				m.reject(c, apperrors.NewTokenExpiredError("access token"), err)
				return
			}
			m.reject(c, apperrors.NewTokenInvalidError("access token"), err)
			return
		}

		if claims.MemberID == 0 || claims.Role == "" {
			m.reject(c, apperrors.NewTokenInvalidError("access token"), nil)
			return
		}

		c.Set(constants.ContextKeyMemberID, claims.MemberID)
		c.Set(constants.ContextKeyRole, claims.Role)

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, authErr *apperrors.AuthError, cause error) {
	if apperrors.ShouldLogAuthError(authErr) {
		m.logger.Warnw("rejected access token",
			"path", c.Request.URL.Path,
			"reason", authErr.Type,
			"error", cause)
	}
	utils.ErrorResponseWithError(c, authErr)
	c.Abort()
}
