package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValOrErrReturnsFirstError(t *testing.T) {
	e := NewErr("boom")
	result := ValOrErr("_+_", Int(1), e)
	assert.Same(t, e, result)
}

func TestValOrErrReportsNoSuchOverload(t *testing.T) {
	result := ValOrErr("_+_", Int(1), String("x"))
	assert.True(t, IsError(result))
	assert.Contains(t, result.(*Err).Error(), "_+_")
}

func TestErrEqualIsNeverTrue(t *testing.T) {
	e := NewErr("boom")
	assert.Same(t, e, e.Equal(e))
	assert.Same(t, e, e.Equal(Int(1)))
}

func TestWrapErrUnwraps(t *testing.T) {
	cause := errors.New("underlying")
	e := WrapErr(cause)
	assert.Same(t, cause, errors.Unwrap(e))
}
