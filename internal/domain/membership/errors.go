package membership

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidState   = errors.New("invalid state")
	ErrRequestExpired = errors.New("plan change request expired")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("concurrent modification")
	ErrNoOpPlanChange = errors.New("new plan is the current plan")
	ErrInvalidInput   = errors.New("invalid input")
)

var (
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)
	ErrPlanNotFound       = fmt.Errorf("plan %w", ErrNotFound)
	ErrRequestNotFound    = fmt.Errorf("plan change request %w", ErrNotFound)
	ErrMemberNotFound     = fmt.Errorf("member %w", ErrNotFound)
	ErrPlanInUse          = fmt.Errorf("%w: plan is referenced by membership records", ErrConflict)
	ErrAlreadySubscribed  = fmt.Errorf("%w: member already has a membership", ErrInvalidState)
	ErrReceiptRedeemed    = fmt.Errorf("%w: payment receipt was already used", ErrUnauthorized)
)

func invalidTransition(op string, status fmt.Stringer) error {
	return fmt.Errorf("%w: cannot %s a %s membership", ErrInvalidState, op, status)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
