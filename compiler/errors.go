package compiler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/celexpr/celc/common"
)

// ParseError wraps the diagnostics accumulated by a failed parse or
// transform, adapting the teacher's common.Errors collector into a single
// Go error.
type ParseError struct {
	Errors *common.Errors
}

func (e *ParseError) Error() string {
	return e.Errors.String()
}

// CelError is the boundary error an error-sentinel result is wrapped as
// when it reaches the top of evaluate. It carries a human-readable message
// only: the internal sentinel never escapes evaluate itself.
type CelError struct {
	message string
}

func (e *CelError) Error() string {
	return e.message
}

func newCelError(format string, args ...interface{}) *CelError {
	return &CelError{message: fmt.Sprintf(format, args...)}
}

// InternalError marks an invariant violation that should never happen in
// a correct build: a malformed IR node reaching the emitter or planner.
// It is wrapped with a stack trace since, unlike every other error path
// here, it signals a bug rather than a recoverable input problem.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string {
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// newInternalError builds an InternalError carrying a stack trace from the
// call site.
func newInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{cause: errors.Errorf(format, args...)}
}
