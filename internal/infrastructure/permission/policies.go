package permission

import (
	"fmt"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// Resources and actions guarded by the staff portals.
const (
	ResourceMemberMembership    = "member_membership"
	ResourceMemberAccess        = "member_access"
	ResourceMemberCancellations = "member_cancellations"
	ResourceMemberHistory       = "member_history"
	ResourcePlanCatalog         = "plan_catalog"

	ActionRead  = "read"
	ActionWrite = "write"
)

// DefaultPolicies is the baseline role matrix. Admin is allowed everything by the model.
func DefaultPolicies() [][]string {
	return [][]string{
		{constants.RoleFrontDesk, ResourceMemberMembership, ActionRead},
		{constants.RoleFrontDesk, ResourceMemberAccess, ActionRead},
		{constants.RoleFrontDesk, ResourceMemberCancellations, ActionRead},
		{constants.RoleFrontDesk, ResourceMemberHistory, ActionRead},

		{constants.RoleTrainer, ResourceMemberAccess, ActionRead},
		{constants.RoleTrainer, ResourceMemberMembership, ActionRead},

		{constants.RoleNutritionist, ResourceMemberAccess, ActionRead},
	}
}

// SeedDefaultPolicies adds the baseline policies that are not stored yet.
func SeedDefaultPolicies(e *Enforcer) error {
	for _, p := range DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	e.logger.Infow("staff permissions initialized", "policies", len(DefaultPolicies()))
	return nil
}
