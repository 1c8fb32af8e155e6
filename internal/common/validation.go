package common

import "strings"

// ValidationError carries the user-facing messages produced when an entity
// rejects a field. Entities report the first failing rule only, so Messages
// usually holds a single entry; handlers translate it into a 422 body.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
