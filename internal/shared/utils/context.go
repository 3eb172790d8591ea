package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/errors"
)

// GetMemberIDFromContext returns the member id the auth middleware stored.
func GetMemberIDFromContext(c *gin.Context) (uint, error) {
	v, ok := c.Get(constants.ContextKeyMemberID)
	if !ok {
		return 0, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return id, nil
}

// GetRoleFromContext returns the caller's role, or "" when unauthenticated.
func GetRoleFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRole)
}
