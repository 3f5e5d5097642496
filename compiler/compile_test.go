package compiler

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndEvaluateArithmetic(t *testing.T) {
	result, err := Compile("1 + 2 * 3", Options{}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Source, "func evaluate(")

	value, err := result.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), value)
}

func TestCompileAndEvaluateWithBindings(t *testing.T) {
	result, err := Compile("x.y + 1", Options{}, nil)
	require.NoError(t, err)

	value, err := result.Evaluate(map[string]interface{}{"x.y": int64(41)})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), value)
}

func TestEvaluateReturnsCelErrorOnSentinel(t *testing.T) {
	result, err := Compile("1 / 0", Options{}, nil)
	require.NoError(t, err)

	_, err = result.Evaluate(nil)
	require.Error(t, err)
	var celErr *CelError
	assert.ErrorAs(t, err, &celErr)
}

func TestCompileParseErrorIsParseError(t *testing.T) {
	_, err := Compile("1 +", Options{}, nil)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCompileRejectsInvalidContainer(t *testing.T) {
	_, err := Compile("1", Options{Container: "bad..container"}, nil)
	require.Error(t, err)
}

func TestCompileWithOptionalExtension(t *testing.T) {
	result, err := Compile(`optional.of(1).hasValue()`, Options{}, nil)
	require.NoError(t, err)

	value, err := result.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, true, value)
}

func TestCompileReusesBindingCacheAcrossEvaluates(t *testing.T) {
	result, err := Compile("x + 1", Options{}, nil)
	require.NoError(t, err)

	bindings := map[string]interface{}{"x": int64(1)}
	v1, err := result.Evaluate(bindings)
	require.NoError(t, err)
	v2, err := result.Evaluate(bindings)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestCompileWithMetricsDoesNotPanic(t *testing.T) {
	m := NewMetrics()
	result, err := Compile("1 + 1", Options{}, m)
	require.NoError(t, err)
	_, err = result.Evaluate(nil)
	require.NoError(t, err)

	_, err = Compile("1 / 0", Options{}, m)
	require.NoError(t, err)
}
