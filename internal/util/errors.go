package util

import "fmt"

// Tagged error taxonomy for the practice workflow. Controllers map each
// class to exactly one status code; anything outside the taxonomy is an
// opaque server error. Dependency and notification failures are handled
// inside the services and never reach a controller.

// ValidationError marks caller input that references mismatched or
// otherwise invalid catalog entities.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a referenced entity that is absent or inactive.
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidStateError marks an operation attempted against a session that is
// not in the required lifecycle state.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func NewInvalidStateError(format string, args ...interface{}) *InvalidStateError {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}
