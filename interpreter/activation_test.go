package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func TestBindingMapResolveQualifiedExactMatch(t *testing.T) {
	b := newActivation(t, map[string]interface{}{"x.y": int64(1)})
	v, remaining, found := b.ResolveQualified("x.y")
	require.True(t, found)
	assert.Empty(t, remaining)
	assert.Equal(t, types.Int(1), v)
}

func TestBindingMapResolveQualifiedFallsBackToPrefix(t *testing.T) {
	b := newActivation(t, map[string]interface{}{"x": map[string]interface{}{"y": int64(1)}})
	v, remaining, found := b.ResolveQualified("x.y.z")
	require.True(t, found)
	assert.Equal(t, []string{"y", "z"}, remaining)
	_, ok := v.(*types.Map)
	assert.True(t, ok)
}

func TestBindingMapResolveQualifiedNotFound(t *testing.T) {
	b := newActivation(t, nil)
	_, _, found := b.ResolveQualified("nope")
	assert.False(t, found)
}

func TestResolveAppliesRemainingFieldSelects(t *testing.T) {
	b := newActivation(t, map[string]interface{}{"x": map[string]interface{}{"y": int64(9)}})
	v := Resolve(b, "x.y")
	assert.Equal(t, types.Int(9), v)
}

func TestResolveUndeclaredIsError(t *testing.T) {
	b := newActivation(t, nil)
	v := Resolve(b, "nope")
	assert.True(t, types.IsError(v))
}

func TestSelectFieldOnStructUsesGet(t *testing.T) {
	s := types.NewStruct("my.Msg", []string{"a"}, map[string]ref.Val{"a": types.Int(1)})
	assert.Equal(t, types.Int(1), SelectField(s, "a"))
}

func TestSelectFieldUnsupportedTypeIsError(t *testing.T) {
	assert.True(t, types.IsError(SelectField(types.Int(1), "a")))
}
