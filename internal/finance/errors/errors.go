package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ErrTransactionNotFound covers both a missing id and an id owned by another
// user. Callers must not be able to tell the two apart.
var ErrTransactionNotFound = errors.New("transaction not found")
