package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is returned when registering an email already on file.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when no user matches the email,
	// password, and role triple. Deliberately undifferentiated so a caller
	// cannot probe which of the three was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPastDate is returned when booking an appointment for a calendar date
	// earlier than today.
	ErrPastDate = errors.New("appointment date is in the past")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is missing or malformed", e.Field)
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Code maps domain errors to stable string codes for the view layer.
func Code(err error) string {
	switch {
	case IsValidation(err):
		return "VALIDATION"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrPastDate):
		return "PAST_DATE"
	default:
		return "INTERNAL_ERROR"
	}
}
