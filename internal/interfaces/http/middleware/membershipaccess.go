package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

const contextKeyAccess = "membership_access"

// AccessChecker reports whether a member currently has facility access.
type AccessChecker interface {
	Execute(ctx context.Context, memberID uint) (*dto.AccessDTO, error)
}

// MembershipAccess guards routes that only members with an active membership may use.
type MembershipAccess struct {
	checker AccessChecker
	logger  logger.Interface
}

func NewMembershipAccess(checker AccessChecker, logger logger.Interface) *MembershipAccess {
	return &MembershipAccess{
		checker: checker,
		logger:  logger,
	}
}

func (m *MembershipAccess) RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := utils.GetMemberIDFromContext(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		access, err := m.checker.Execute(c.Request.Context(), memberID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if !access.Allowed {
			m.logger.Infow("membership access denied", "member_id", memberID, "reason", access.Reason)
			utils.ErrorResponseWithError(c, apperrors.NewForbiddenError("membership does not grant access", access.Reason))
			c.Abort()
			return
		}

		c.Set(contextKeyAccess, access)
		c.Next()
	}
}

// GetAccessFromContext returns the decision stored by RequireActive.
func GetAccessFromContext(c *gin.Context) (*dto.AccessDTO, bool) {
	v, ok := c.Get(contextKeyAccess)
	if !ok {
		return nil, false
	}
	access, ok := v.(*dto.AccessDTO)
	return access, ok
}
