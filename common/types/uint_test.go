package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSubtractUnderflows(t *testing.T) {
	assert.True(t, IsError(Uint(0).Subtract(Uint(1))))
}

func TestUintDivideByZero(t *testing.T) {
	assert.True(t, IsError(Uint(1).Divide(UintZero)))
}

func TestUintConvertToIntRejectsOutOfRange(t *testing.T) {
	assert.True(t, IsError(Uint(math.MaxUint64).ConvertToType(IntType)))
}

func TestUintCompareAgainstInt(t *testing.T) {
	assert.Equal(t, IntZero, Uint(5).Compare(Int(5)))
	assert.Equal(t, IntOne, Uint(5).Compare(Int(4)))
}

func TestUintEqualAgainstDoubleIsStrictError(t *testing.T) {
	assert.True(t, IsError(Uint(2).Equal(Double(2.0))))
}

func TestUintEqualAgainstDynDoubleRelaxesToPermissiveComparison(t *testing.T) {
	assert.Equal(t, True, Uint(2).Equal(NewDyn(Double(2.0))))
	assert.Equal(t, False, Uint(2).Equal(NewDyn(Double(2.5))))
}
