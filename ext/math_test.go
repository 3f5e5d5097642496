package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

func newMathDispatcher() *interpreter.Dispatcher {
	d := interpreter.NewDispatcher()
	Math(d)
	return d
}

func call(t *testing.T, d *interpreter.Dispatcher, name string, args ...ref.Val) ref.Val {
	t.Helper()
	fn, ok := d.Find(name, false, len(args))
	require.True(t, ok, "no overload registered for %s/%d", name, len(args))
	return fn(nil, args)
}

func TestMathLeastAndGreatest(t *testing.T) {
	d := newMathDispatcher()

	assert.Equal(t, types.Double(-0.5), call(t, d, "math.least", types.Double(-0.5)))
	assert.Equal(t, types.Double(-0.5), call(t, d, "math.least", types.Double(42.0), types.Double(-0.5)))
	assert.Equal(t, types.Int(-1), call(t, d, "math.least", types.Int(-1), types.Int(0), types.Int(1)))
	assert.Equal(t, types.Int(1), call(t, d, "math.least", types.Int(1), types.Double(1.0)))
	assert.Equal(t, types.Uint(0), call(t, d, "math.least", types.Uint(1), types.Uint(42), types.Uint(0)))
	assert.Equal(t, types.Uint(0), call(t, d, "math.least", types.NewList(types.Uint(1), types.Uint(42), types.Uint(0))))

	assert.Equal(t, types.Double(42.0), call(t, d, "math.greatest", types.Double(42.0), types.Double(-0.5)))
	assert.Equal(t, types.Int(1), call(t, d, "math.greatest", types.Int(-1), types.Int(0), types.Int(1)))
	assert.Equal(t, types.Uint(42), call(t, d, "math.greatest", types.NewList(types.Uint(1), types.Uint(42), types.Uint(0))))
}

func TestMathLeastOnDynRelaxesCrossType(t *testing.T) {
	d := newMathDispatcher()
	out := call(t, d, "math.least", types.Uint(1), types.NewDyn(types.Int(42)))
	assert.Equal(t, types.Uint(1), out)
}

func TestMathLeastEmptyListErrors(t *testing.T) {
	d := newMathDispatcher()
	out := call(t, d, "math.least", types.NewList())
	assert.True(t, types.IsError(out))
}

func TestMathBitwiseOps(t *testing.T) {
	d := newMathDispatcher()

	assert.Equal(t, types.Int(0), call(t, d, "math.bitAnd", types.Int(1), types.Int(2)))
	assert.Equal(t, types.Int(1), call(t, d, "math.bitAnd", types.Int(1), types.Int(-1)))
	assert.Equal(t, types.Int(3), call(t, d, "math.bitOr", types.Int(1), types.Int(2)))
	assert.Equal(t, types.Int(2), call(t, d, "math.bitXor", types.Int(1), types.Int(3)))

	assert.Equal(t, types.Uint(0), call(t, d, "math.bitAnd", types.Uint(1), types.Uint(2)))
	assert.Equal(t, types.Uint(3), call(t, d, "math.bitOr", types.Uint(1), types.Uint(2)))
	assert.Equal(t, types.Uint(2), call(t, d, "math.bitXor", types.Uint(1), types.Uint(3)))

	assert.Equal(t, types.Int(-2), call(t, d, "math.bitNot", types.Int(1)))
	assert.Equal(t, types.Int(-1), call(t, d, "math.bitNot", types.Int(0)))
	assert.Equal(t, types.Uint(18446744073709551614), call(t, d, "math.bitNot", types.Uint(1)))

	assert.Equal(t, types.Int(4), call(t, d, "math.bitShiftLeft", types.Int(1), types.Int(2)))
	assert.Equal(t, types.Int(0), call(t, d, "math.bitShiftLeft", types.Int(1), types.Int(200)))
	assert.Equal(t, types.Int(256), call(t, d, "math.bitShiftRight", types.Int(1024), types.Int(2)))
	assert.Equal(t, types.Int(2305843009213693824), call(t, d, "math.bitShiftRight", types.Int(-1024), types.Int(3)))
	assert.Equal(t, types.Int(0), call(t, d, "math.bitShiftRight", types.Int(-1024), types.Int(64)))
	assert.Equal(t, types.Uint(4), call(t, d, "math.bitShiftLeft", types.Uint(1), types.Int(2)))

	assert.True(t, types.IsError(call(t, d, "math.bitShiftLeft", types.Int(1), types.Int(-1))))
}

func TestMathFloatingPointHelpers(t *testing.T) {
	d := newMathDispatcher()
	nan := types.Double(0.0).Divide(types.Double(0.0)).(types.Double)
	posInf := types.Double(1.0).Divide(types.Double(0.0)).(types.Double)

	assert.Equal(t, types.True, call(t, d, "math.isNaN", nan))
	assert.Equal(t, types.False, call(t, d, "math.isNaN", types.Double(1.0)))
	assert.Equal(t, types.True, call(t, d, "math.isInf", posInf))
	assert.Equal(t, types.False, call(t, d, "math.isFinite", posInf))
	assert.Equal(t, types.True, call(t, d, "math.isFinite", types.Double(1.5)))
}

func TestMathRoundingFunctions(t *testing.T) {
	d := newMathDispatcher()

	assert.Equal(t, types.Double(2.0), call(t, d, "math.ceil", types.Double(1.2)))
	assert.Equal(t, types.Double(-1.0), call(t, d, "math.ceil", types.Double(-1.2)))
	assert.Equal(t, types.Double(1.0), call(t, d, "math.floor", types.Double(1.2)))
	assert.Equal(t, types.Double(-2.0), call(t, d, "math.floor", types.Double(-1.2)))
	assert.Equal(t, types.Double(2.0), call(t, d, "math.round", types.Double(1.5)))
	assert.Equal(t, types.Double(-2.0), call(t, d, "math.round", types.Double(-1.5)))
	assert.Equal(t, types.Double(-1.0), call(t, d, "math.trunc", types.Double(-1.3)))
}

func TestMathSignAndAbs(t *testing.T) {
	d := newMathDispatcher()

	assert.Equal(t, types.Int(-1), call(t, d, "math.sign", types.Int(-42)))
	assert.Equal(t, types.Int(0), call(t, d, "math.sign", types.Int(0)))
	assert.Equal(t, types.Int(1), call(t, d, "math.sign", types.Int(42)))
	assert.Equal(t, types.Uint(0), call(t, d, "math.sign", types.Uint(0)))
	assert.Equal(t, types.Uint(1), call(t, d, "math.sign", types.Uint(42)))
	assert.Equal(t, types.Double(-1.0), call(t, d, "math.sign", types.Double(-0.3)))
	assert.Equal(t, types.Double(0.0), call(t, d, "math.sign", types.Double(0.0)))

	assert.Equal(t, types.Int(1), call(t, d, "math.abs", types.Int(-1)))
	assert.Equal(t, types.Int(1), call(t, d, "math.abs", types.Int(1)))
	assert.Equal(t, types.Double(234.5), call(t, d, "math.abs", types.Double(-234.5)))
	assert.True(t, types.IsError(call(t, d, "math.abs", types.Int(-9223372036854775808))))
}
