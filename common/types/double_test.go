package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleDivideByZeroIsInfNotError(t *testing.T) {
	result := Double(1).Divide(Double(0))
	assert.False(t, IsError(result))
	assert.True(t, math.IsInf(float64(result.(Double)), 1))
}

func TestDoubleCompareNaNIsError(t *testing.T) {
	nan := Double(math.NaN())
	assert.True(t, IsError(nan.Compare(Double(1))))
	assert.True(t, IsError(Double(1).Compare(nan)))
}

func TestDoubleEqualNaNIsNeverTrue(t *testing.T) {
	nan := Double(math.NaN())
	assert.Equal(t, False, nan.Equal(nan))
	// Cross-type against int is a strict-equality error before NaN even
	// enters into it.
	assert.True(t, IsError(nan.Equal(Int(1))))
	// Through dyn(), NaN still never compares equal, even permissively.
	assert.Equal(t, False, nan.Equal(NewDyn(Int(1))))
}

func TestDoubleConvertToIntRejectsNaNAndInf(t *testing.T) {
	assert.True(t, IsError(Double(math.NaN()).ConvertToType(IntType)))
	assert.True(t, IsError(Double(math.Inf(1)).ConvertToType(IntType)))
}

func TestDoubleConvertToIntTruncates(t *testing.T) {
	assert.Equal(t, Int(3), Double(3.9).ConvertToType(IntType))
}

func TestDoubleConvertToUintRejectsNegative(t *testing.T) {
	assert.True(t, IsError(Double(-1).ConvertToType(UintType)))
}
