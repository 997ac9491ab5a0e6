package validation

import (
	"errors"
	"strings"
)

// ErrValidationFailed is matched by every *Error returned from Validator.Err.
var ErrValidationFailed = errors.New("validation failed")

// Error carries the messages collected by a failed validation session.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *Error) Unwrap() error {
	return ErrValidationFailed
}
