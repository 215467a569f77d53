package services

import (
	"strings"

	"oneearth/utils"
)

// FieldError is a validation failure. It unwraps to Err (ErrMissingFields or ErrInvalidInput)
// and carries the rule each field broke.
type FieldError struct {
	Err    error
	Names  []string
	Fields map[string]string
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalidFields(kind, err error) error {
	return &FieldError{Err: kind, Names: utils.FieldNames(err), Fields: utils.FieldErrors(err)}
}
