package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/examadmin/internal/repository"
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent entity or record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) NotFound() {}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// translate turns a repository miss into a NotFoundError and wraps anything
// else with the operation name.
func translate(err error, resource, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return fmt.Errorf("%s: %w", op, err)
}
