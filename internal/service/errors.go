package service

import (
	"errors"
)

// ValidationError marks input failures so the API layer can answer 400
// without enumerating every message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validation wraps an input-check failure as a ValidationError.
func Validation(err error) error {
	return &ValidationError{msg: err.Error()}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
