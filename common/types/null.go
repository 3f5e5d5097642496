package types

import "github.com/celexpr/celc/common/types/ref"

// Null is the CEL null variant; there is exactly one value, NullValue.
type Null struct{}

var (
	// NullType is the singleton type tag.
	NullType = NewTypeValue("null_type")
	// NullValue is the sole Null instance.
	NullValue = Null{}
)

func (n Null) Type() ref.Type { return NullType }
func (n Null) Value() interface{} { return nil }
func (n Null) String() string { return "null" }

func (n Null) Equal(other ref.Val) ref.Val {
	_, ok := other.(Null)
	return Bool(ok)
}

func (n Null) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case NullType:
		return n
	case StringType:
		return String("null")
	case TypeType:
		return NullType
	}
	return NewErr("type conversion error from '%s' to '%s'", NullType.TypeName(), typeVal.TypeName())
}
