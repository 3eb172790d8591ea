package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/infrastructure/ratelimit"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// MemberRateLimit throttles one endpoint per authenticated member.
type MemberRateLimit struct {
	limiter ratelimit.RateLimiter
	limit   ratelimit.Limit
	scope   string
	logger  logger.Interface
}

func NewMemberRateLimit(limiter ratelimit.RateLimiter, scope string, limit ratelimit.Limit, logger logger.Interface) *MemberRateLimit {
	return &MemberRateLimit{
		limiter: limiter,
		limit:   limit,
		scope:   scope,
		logger:  logger,
	}
}

// Limit must run after RequireAuth.
func (m *MemberRateLimit) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := utils.GetMemberIDFromContext(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		key := fmt.Sprintf("%s:member:%d", m.scope, memberID)
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limit)
		if err != nil {
			// Fail open when the backing store is unavailable.
			m.logger.Warnw("rate limiter unavailable", "error", err, "scope", m.scope, "member_id", memberID)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Infow("rate limit exceeded", "scope", m.scope, "member_id", memberID)
			utils.ErrorResponseWithError(c, apperrors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
