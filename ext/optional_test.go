package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

func newDispatcher(t *testing.T, register func(*interpreter.Dispatcher)) *interpreter.Dispatcher {
	t.Helper()
	d := interpreter.NewDispatcher()
	register(d)
	return d
}

func find(t *testing.T, d *interpreter.Dispatcher, name string, hasTarget bool, arity int) interpreter.Function {
	t.Helper()
	fn, ok := d.Find(name, hasTarget, arity)
	require.True(t, ok, "no overload registered for %s/%v/%d", name, hasTarget, arity)
	return fn
}

func TestOptionalOfAndHasValue(t *testing.T) {
	d := newDispatcher(t, Optional)

	of := find(t, d, "optional.of", false, 1)
	opt := of(nil, []ref.Val{types.Int(5)})

	hasValue := find(t, d, "hasValue", true, 0)
	assert.Equal(t, types.Bool(true), hasValue(opt, nil))

	value := find(t, d, "value", true, 0)
	assert.Equal(t, types.Int(5), value(opt, nil))
}

func TestOptionalNoneHasNoValue(t *testing.T) {
	d := newDispatcher(t, Optional)
	none := find(t, d, "optional.none", false, 0)(nil, nil)
	hasValue := find(t, d, "hasValue", true, 0)
	assert.Equal(t, types.Bool(false), hasValue(none, nil))
}

func TestOptionalOrValue(t *testing.T) {
	d := newDispatcher(t, Optional)
	none := find(t, d, "optional.none", false, 0)(nil, nil)
	orValue := find(t, d, "orValue", true, 1)
	assert.Equal(t, types.String("fallback"), orValue(none, []ref.Val{types.String("fallback")}))
}

func TestOfNonZeroValue(t *testing.T) {
	d := newDispatcher(t, Optional)
	ofNonZero := find(t, d, "optional.ofNonZeroValue", false, 1)
	hasValue := find(t, d, "hasValue", true, 0)

	zero := ofNonZero(nil, []ref.Val{types.Int(0)})
	assert.Equal(t, types.Bool(false), hasValue(zero, nil))

	nonZero := ofNonZero(nil, []ref.Val{types.Int(3)})
	assert.Equal(t, types.Bool(true), hasValue(nonZero, nil))
}

func TestOptUnwrapListBridgesOptionalToComprehension(t *testing.T) {
	d := newDispatcher(t, Optional)
	unwrap := find(t, d, "__opt_unwrap_list", true, 0)

	none := find(t, d, "optional.none", false, 0)(nil, nil)
	emptyList := unwrap(none, nil).(*types.List)
	assert.Equal(t, types.Int(0), emptyList.Size())

	some := find(t, d, "optional.of", false, 1)(nil, []ref.Val{types.Int(7)})
	oneList := unwrap(some, nil).(*types.List)
	assert.Equal(t, types.Int(1), oneList.Size())
}
