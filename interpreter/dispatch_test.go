package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func TestDispatcherRegisterAndFindByShapeAndArity(t *testing.T) {
	d := NewDispatcher()
	d.Register("f", true, 1, func(target ref.Val, args []ref.Val) ref.Val { return target })

	_, ok := d.Find("f", true, 1)
	assert.True(t, ok)

	_, ok = d.Find("f", false, 1)
	assert.False(t, ok, "hasTarget is part of the lookup key")

	_, ok = d.Find("f", true, 2)
	assert.False(t, ok, "arity is part of the lookup key")
}

func TestDispatcherRegisterTwiceReplaces(t *testing.T) {
	d := NewDispatcher()
	d.Register("f", false, 0, func(ref.Val, []ref.Val) ref.Val { return types.Int(1) })
	d.Register("f", false, 0, func(ref.Val, []ref.Val) ref.Val { return types.Int(2) })

	fn, ok := d.Find("f", false, 0)
	require.True(t, ok)
	assert.Equal(t, types.Int(2), fn(nil, nil))
}

func TestDefaultDispatcherConversions(t *testing.T) {
	d := NewDefaultDispatcher()
	intOf, ok := d.Find("int", false, 1)
	require.True(t, ok)
	assert.Equal(t, types.Int(3), intOf(nil, []ref.Val{types.Double(3.9)}))

	dynOf, ok := d.Find("dyn", false, 1)
	require.True(t, ok)
	wrapped, ok := dynOf(nil, []ref.Val{types.String("x")}).(types.Dyn)
	require.True(t, ok, "dyn() should wrap its argument in types.Dyn")
	assert.Equal(t, types.String("x"), wrapped.Unwrap())
}

func TestDefaultDispatcherSizeOnTargetAndFreeForm(t *testing.T) {
	d := NewDefaultDispatcher()
	list := types.NewList(types.Int(1), types.Int(2))

	method, ok := d.Find("size", true, 0)
	require.True(t, ok)
	assert.Equal(t, types.Int(2), method(list, nil))

	free, ok := d.Find("size", false, 1)
	require.True(t, ok)
	assert.Equal(t, types.Int(2), free(nil, []ref.Val{list}))
}

func TestDefaultDispatcherSizeUnsupportedTypeIsError(t *testing.T) {
	d := NewDefaultDispatcher()
	method, ok := d.Find("size", true, 0)
	require.True(t, ok)
	assert.True(t, types.IsError(method(types.Bool(true), nil)))
}
