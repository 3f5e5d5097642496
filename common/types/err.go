package types

import (
	"fmt"

	"github.com/celexpr/celc/common/types/ref"
)

// Err is the internal error sentinel: not a user-facing value, but the
// signal every typed operation returns when its inputs violate its
// contract. It propagates eagerly through most operations and is absorbed
// only by &&, ||, and has().
type Err struct {
	cause error
}

// ErrType is the singleton type tag of the error sentinel.
var ErrType = NewTypeValue("error")

// NewErr builds an error-sentinel value from a format string.
func NewErr(format string, args ...interface{}) *Err {
	return &Err{cause: fmt.Errorf(format, args...)}
}

// WrapErr wraps a Go error as a CEL error sentinel.
func WrapErr(err error) *Err {
	return &Err{cause: err}
}

// CelErrorSentinel marks this value as the error sentinel for ref.IsError.
func (e *Err) CelErrorSentinel() bool { return true }

func (e *Err) Type() ref.Type { return ErrType }
func (e *Err) Value() interface{} { return e.cause }

// Equal returns the sentinel itself: an error is never equal to anything,
// including another error.
func (e *Err) Equal(other ref.Val) ref.Val { return e }

func (e *Err) ConvertToType(typeVal ref.Type) ref.Val { return e }

func (e *Err) Error() string { return e.cause.Error() }
func (e *Err) String() string { return e.cause.Error() }

// Unwrap exposes the underlying Go error for errors.Is/As.
func (e *Err) Unwrap() error { return e.cause }

// ValOrErr returns the first operand that is an error sentinel, or a new
// "no such overload" error naming fn if neither is.
func ValOrErr(fn string, vals ...ref.Val) ref.Val {
	for _, v := range vals {
		if IsError(v) {
			return v
		}
	}
	return NewErr("no such overload: %s", fn)
}

// IsError reports whether v is the error sentinel.
func IsError(v ref.Val) bool {
	return ref.IsError(v)
}
