package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Access token error types
const (
	ErrorTypeTokenMissing ErrorType = "token_missing"
	ErrorTypeTokenExpired ErrorType = "token_expired"
	ErrorTypeTokenInvalid ErrorType = "token_invalid"
)

// AuthError is an unauthorized AppError that also says whether it is worth logging.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as an expired token.
	ShouldLog bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap lets GetAppError see the embedded AppError.
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(t ErrorType, message, details string, shouldLog bool) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    t,
			Message: message,
			Code:    http.StatusUnauthorized,
			Details: details,
		},
		ShouldLog: shouldLog,
	}
}

// NewTokenMissingError is returned when no bearer token accompanies the request.
func NewTokenMissingError(details string) *AuthError {
	return newAuthError(ErrorTypeTokenMissing, "missing authorization token", details, false)
}

// NewTokenExpiredError is returned for well-formed tokens past their expiry.
func NewTokenExpiredError(tokenType string) *AuthError {
	return newAuthError(ErrorTypeTokenExpired, fmt.Sprintf("%s has expired", tokenType), "request a new token", false)
}

// NewTokenInvalidError is returned for forged, malformed or incomplete tokens.
func NewTokenInvalidError(tokenType string) *AuthError {
	return newAuthError(ErrorTypeTokenInvalid, fmt.Sprintf("invalid %s", tokenType), "", true)
}

func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError defaults to true for anything that is not an AuthError.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
