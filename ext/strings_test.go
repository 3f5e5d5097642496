package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func TestStringsCharAt(t *testing.T) {
	d := newDispatcher(t, Strings)
	charAt := find(t, d, "charAt", true, 1)
	assert.Equal(t, types.String("e"), charAt(types.String("hello"), []ref.Val{types.Int(1)}))
	assert.Equal(t, types.String(""), charAt(types.String("hello"), []ref.Val{types.Int(5)}))
	assert.True(t, types.IsError(charAt(types.String("hello"), []ref.Val{types.Int(6)})))
}

func TestStringsIndexOfAndLastIndexOf(t *testing.T) {
	d := newDispatcher(t, Strings)
	indexOf := find(t, d, "indexOf", true, 1)
	lastIndexOf := find(t, d, "lastIndexOf", true, 1)

	assert.Equal(t, types.Int(1), indexOf(types.String("hello"), []ref.Val{types.String("e")}))
	assert.Equal(t, types.Int(-1), indexOf(types.String("hello"), []ref.Val{types.String("z")}))
	assert.Equal(t, types.Int(3), lastIndexOf(types.String("hello"), []ref.Val{types.String("l")}))
}

func TestStringsSubstring(t *testing.T) {
	d := newDispatcher(t, Strings)
	substring := find(t, d, "substring", true, 2)
	assert.Equal(t, types.String("ell"), substring(types.String("hello"), []ref.Val{types.Int(1), types.Int(4)}))

	oneArg := find(t, d, "substring", true, 1)
	assert.Equal(t, types.String("llo"), oneArg(types.String("hello"), []ref.Val{types.Int(2)}))
}

func TestStringsTrim(t *testing.T) {
	d := newDispatcher(t, Strings)
	trim := find(t, d, "trim", true, 0)
	assert.Equal(t, types.String("hi"), trim(types.String("  hi\t\n"), nil))
}

func TestStringsReplace(t *testing.T) {
	d := newDispatcher(t, Strings)
	replace := find(t, d, "replace", true, 2)
	assert.Equal(t, types.String("hxllo"), replace(types.String("hello"), []ref.Val{types.String("e"), types.String("x")}))

	replaceLimited := find(t, d, "replace", true, 3)
	assert.Equal(t, types.String("hello"), replaceLimited(types.String("hello"), []ref.Val{types.String("l"), types.String("L"), types.Int(0)}))
}

func TestStringsSplit(t *testing.T) {
	d := newDispatcher(t, Strings)
	split := find(t, d, "split", true, 1)
	result := split(types.String("a,b,c"), []ref.Val{types.String(",")}).(*types.List)
	assert.Equal(t, types.Int(3), result.Size())
}

func TestStringsJoin(t *testing.T) {
	d := newDispatcher(t, Strings)
	join := find(t, d, "strings.join", false, 2)
	list := types.NewList(types.String("a"), types.String("b"))
	assert.Equal(t, types.String("a-b"), join(nil, []ref.Val{list, types.String("-")}))
}

func TestStringsFormat(t *testing.T) {
	d := newDispatcher(t, Strings)
	format := find(t, d, "strings.format", false, 2)
	args := types.NewList(types.String("world"), types.Int(3))
	result := format(nil, []ref.Val{types.String("hello %s, count %d"), args})
	assert.Equal(t, types.String("hello world, count 3"), result)
}
