package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks lookups of ids that do not exist; handlers map it to 404,
// distinct from validation failures.
var ErrNotFound = errors.New("not found")

// ValidationError carries the per-field problems of a rejected payload
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ConflictError is a business-rule rejection (overlapping dates, no available
// units). It is reported like a validation failure with a readable reason,
// never as an internal error.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func conflictf(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}
