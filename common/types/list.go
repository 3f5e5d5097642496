package types

import (
	"strings"

	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/common/types/traits"
)

// List is the CEL list variant: an ordered, heterogeneous
// sequence of values.
type List struct {
	elems []ref.Val
}

// ListType is the singleton type tag for List.
var ListType = NewTypeValue("list")

// NewList constructs a List value from already-evaluated elements.
func NewList(elems ...ref.Val) *List {
	return &List{elems: elems}
}

func (l *List) Type() ref.Type { return ListType }

func (l *List) Value() interface{} {
	out := make([]interface{}, len(l.elems))
	for i, e := range l.elems {
		out[i] = e.Value()
	}
	return out
}

func (l *List) String() string {
	parts := make([]string, len(l.elems))
	for i, e := range l.elems {
		parts[i] = ref.ToString(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Add implements list concatenation.
func (l *List) Add(other ref.Val) ref.Val {
	o, ok := other.(*List)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	out := make([]ref.Val, 0, len(l.elems)+len(o.elems))
	out = append(out, l.elems...)
	out = append(out, o.elems...)
	return &List{elems: out}
}

func (l *List) Size() ref.Val { return Int(len(l.elems)) }

// Get implements `list[i]`: out-of-range is an error, never a
// zero value or panic.
func (l *List) Get(key ref.Val) ref.Val {
	i, ok := key.(Int)
	if !ok {
		return NewErr("unsupported index type '%s' for list", key.Type().TypeName())
	}
	if i < 0 || int(i) >= len(l.elems) {
		return NewErr("index '%d' out of range in list of size %d", int64(i), len(l.elems))
	}
	return l.elems[i]
}

// Contains implements `elem in list`, and inherits whatever equality each
// element's Equal applies — strict cross-numeric comparisons error here
// too, same as `==`.
func (l *List) Contains(elem ref.Val) ref.Val {
	var sawErr ref.Val
	for _, e := range l.elems {
		eq := e.Equal(elem)
		if b, ok := eq.(Bool); ok && bool(b) {
			return True
		}
		if ref.IsError(eq) && sawErr == nil {
			sawErr = eq
		}
	}
	if sawErr != nil {
		return sawErr
	}
	return False
}

func (l *List) Equal(other ref.Val) ref.Val {
	o, ok := other.(*List)
	if !ok {
		return False
	}
	if len(l.elems) != len(o.elems) {
		return False
	}
	for i := range l.elems {
		eq := l.elems[i].Equal(o.elems[i])
		if ref.IsError(eq) {
			return eq
		}
		if b, ok := eq.(Bool); !ok || !bool(b) {
			return False
		}
	}
	return True
}

func (l *List) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case ListType:
		return l
	case TypeType:
		return ListType
	}
	return NewErr("type conversion error from '%s' to '%s'", ListType.TypeName(), typeVal.TypeName())
}

func (l *List) Iterator() traits.Iterator {
	return &listIterator{list: l}
}

type listIterator struct {
	list *List
	pos int
}

func (it *listIterator) HasNext() bool { return it.pos < len(it.list.elems) }

func (it *listIterator) Next() ref.Val {
	v := it.list.elems[it.pos]
	it.pos++
	return v
}
