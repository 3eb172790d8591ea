package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// PolicyEnforcer decides whether a role may perform action on resource.
type PolicyEnforcer interface {
	Enforce(subject, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	enabled  bool
	logger   logger.Interface
}

// NewPermissionMiddleware builds the staff authorization gate. When enabled is
// false every authenticated caller passes.
func NewPermissionMiddleware(enforcer PolicyEnforcer, enabled bool, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		enabled:  enabled,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.GetRoleFromContext(c)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "member not authenticated")
			c.Abort()
			return
		}

		if !m.enabled {
			c.Next()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
