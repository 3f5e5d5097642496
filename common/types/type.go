package types

import "github.com/celexpr/celc/common/types/ref"

// TypeValue is the concrete ref.Type implementation: a named type tag. Two
// type values are equal iff their names are equal.
type TypeValue struct {
	name string
}

// TypeType is the type of a type value itself.
var TypeType = &TypeValue{name: "type"}

// NewTypeValue returns the type tag named name.
func NewTypeValue(name string) *TypeValue {
	return &TypeValue{name: name}
}

func (t *TypeValue) TypeName() string { return t.name }
func (t *TypeValue) Type() ref.Type { return TypeType }
func (t *TypeValue) Value() interface{} { return t.name }
func (t *TypeValue) String() string { return t.name }

func (t *TypeValue) Equal(other ref.Val) ref.Val {
	o, ok := other.(*TypeValue)
	if !ok {
		return False
	}
	return Bool(t.name == o.name)
}

func (t *TypeValue) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case TypeType:
		return t
	case StringType:
		return String(t.name)
	}
	return NewErr("type conversion error from '%s' to '%s'", TypeType.TypeName(), typeVal.TypeName())
}
