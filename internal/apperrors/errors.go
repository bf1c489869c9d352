// Package apperrors defines the error taxonomy shared by services and
// handlers: validation, auth, not-found and conflict errors map to their
// HTTP statuses; anything else is a 500 with the detail suppressed.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates the requested resource does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a unique-key collision (slug, wishlist triple).
	ErrConflict = errors.New("resource already exists")

	// ErrUnauthorized indicates missing or bad credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates valid credentials without sufficient role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a missing or invalid request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given message
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Status maps an error to its HTTP status code
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the response body message for an error. Internal errors
// are replaced with a generic message so details never leak to clients.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}
