package usecases

import (
	"errors"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
)

// toAppError maps domain error kinds onto API errors. Anything it does not
// recognise is returned unchanged and rendered as an internal error.
func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, membership.ErrNotFound):
		return apperrors.NewNotFoundError(msg)
	case errors.Is(err, membership.ErrRequestExpired):
		return apperrors.NewRequestExpiredError(msg, "recalculate the plan change")
	case errors.Is(err, membership.ErrNoOpPlanChange):
		return apperrors.NewNoOpPlanChangeError(msg)
	case errors.Is(err, membership.ErrUnauthorized):
		return apperrors.NewUnauthorizedError(msg)
	case errors.Is(err, membership.ErrConflict):
		return apperrors.NewConflictError(msg, "reload the membership and try again")
	case errors.Is(err, membership.ErrInvalidState):
		return apperrors.NewInvalidStateError(msg)
	case errors.Is(err, membership.ErrInvalidInput), errors.Is(err, member.ErrInvalidProfile):
		return apperrors.NewValidationError(msg)
	}
	return err
}
