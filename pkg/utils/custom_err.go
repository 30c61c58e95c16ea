package utils

import (
	"errors"
	"net/http"
)

// Error kinds. Every error a service returns wraps exactly one of these.
var (
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDatabaseError = errors.New("database error")
)

// ServiceError carries the message shown to the client alongside its kind.
// Cause is only ever logged.
type ServiceError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newErr(kind error, msg string) *ServiceError {
	return &ServiceError{Kind: kind, Message: msg}
}

// Validation builds a 400 error with the given message.
func Validation(msg string) error { return newErr(ErrValidation, msg) }

// Internal wraps a persistence failure; msg is the generic text the client sees.
func Internal(msg string, cause error) error {
	return &ServiceError{Kind: ErrDatabaseError, Message: msg, Cause: cause}
}

var (
	ErrEmailAlreadyExists  = newErr(ErrConflict, "Email already in use")
	ErrInvalidCredentials  = newErr(ErrUnauthorized, "Invalid email or password")
	ErrAccountBlocked      = newErr(ErrForbidden, "Account is blocked")
	ErrAccountPending      = newErr(ErrForbidden, "Account is pending verification")
	ErrUserNotFound        = newErr(ErrNotFound, "User not found")
	ErrReceiverNotFound    = newErr(ErrNotFound, "Receiver not found")
	ErrSkillNotFound       = newErr(ErrNotFound, "Skill not found")
	ErrSwapRequestNotFound = newErr(ErrNotFound, "Swap request not found")
	ErrFeedbackTargetGone  = newErr(ErrNotFound, "Swap request or user not found")
	ErrNotSwapParticipant  = newErr(ErrForbidden, "You are not authorized to give feedback for this swap")
	ErrRecipientNotInSwap  = newErr(ErrValidation, "Feedback recipient must be a participant of the swap request")
	ErrFileTooLarge        = newErr(ErrValidation, "File size too large. Maximum 5MB allowed.")
	ErrInvalidFileType     = newErr(ErrValidation, "Invalid file format. Only PNG, JPG, JPEG, and WEBP allowed.")
)

// StatusFor maps an error onto its HTTP status. Conflicts answer 400, which is
// what existing clients expect for duplicate registrations.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
