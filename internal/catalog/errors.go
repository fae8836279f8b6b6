package catalog

import (
	"errors"
	"strings"
)

// Error kinds returned by catalog operations. All of them leave the
// catalog unchanged.
var (
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrDuplicateEmail       = errors.New("email already in use")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
)

// ValidationError names the form fields that were missing or could not be
// parsed. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns every field named by the error, missing ones first.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Missing)+len(e.Invalid))
	out = append(out, e.Missing...)
	return append(out, e.Invalid...)
}

func invalid(fields ...string) error {
	return &ValidationError{Invalid: fields}
}

// Reason returns the human-readable message a renderer should show for err.
func Reason(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, ErrAuthenticationFailed):
		return "Invalid email or password."
	case errors.Is(err, ErrDuplicateEmail):
		return "Email already in use."
	case errors.Is(err, ErrNotFound):
		return "Not found."
	case errors.Is(err, ErrValidation):
		return "Please fill in all required fields."
	case err == nil:
		return ""
	default:
		return "Something went wrong."
	}
}
