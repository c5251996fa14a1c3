package forms

import (
	"fmt"
	"strings"
)

// FieldError names one invalid field and what is wrong with it.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field problem of one submission. A form is
// checked in full before this is returned, so the user sees all problems at
// once instead of one per attempt.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed on %d field(s)", len(e.Fields))
}

// Message renders the per-field problems for the alert box, one line each.
func (e *ValidationError) Message() string {
	lines := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		lines = append(lines, fmt.Sprintf("%s - %s", fe.Field, fe.Message))
	}
	return strings.Join(lines, "\n")
}
