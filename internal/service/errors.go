package service

import (
	"errors"
	"fmt"

	"github.com/soundline/storefront/internal/transport"
)

var (
	ErrValidation      = errors.New("validation")      // 400
	ErrUnauthenticated = errors.New("unauthenticated") // 401
	ErrForbidden       = errors.New("forbidden")       // 403
	ErrNotFound        = errors.New("not found")       // 404
	ErrConflict        = errors.New("conflict")        // 409
)

// fieldError wraps ErrValidation with the first offending field so the HTTP
// boundary can answer with {message, field}.
func fieldError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &transport.FieldError{Field: field, Message: message})
}
