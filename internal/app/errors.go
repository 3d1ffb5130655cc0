package app

import (
	"errors"
	"strings"

	"invoicegen/internal/core"
	"invoicegen/internal/store"
)

// ErrNotFound mirrors the store sentinel so adapters need only the app package.
var ErrNotFound = store.ErrNotFound

// ErrInvalidCredentials is returned by AuthenticateUser for any login failure.
// Deliberately indistinguishable between unknown user and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUnknownStatus is returned when a status outside the recognized set is
// submitted.
var ErrUnknownStatus = errors.New("unknown status")

// ValidationError carries the itemized rule violations of a rejected record.
// Adapters unpack it into a 422 response or a printed error list.
type ValidationError struct {
	Result core.ValidationResult
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Result.Errors, "; ")
}

// AsValidationError unwraps a *ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
