package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports a missing request, result, document or user, or one
// that does not belong to the caller.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError reports a violated single-active or unresolved-result invariant.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StateError reports an operation outside its valid state or after its deadline.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// ValidationError reports malformed or disallowed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func notFound(resource string, id uuid.UUID) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func invalidState(format string, args ...any) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsState reports whether err is a StateError.
func IsState(err error) bool {
	var target *StateError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
