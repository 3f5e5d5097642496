package types

import (
	"strconv"

	"github.com/celexpr/celc/common/types/ref"
)

// Bool is the CEL boolean variant.
type Bool bool

// BoolType is the singleton type tag for Bool.
var BoolType = NewTypeValue("bool")

// True and False are the only two Bool values.
const (
	False = Bool(false)
	True = Bool(true)
)

func (b Bool) Type() ref.Type { return BoolType }
func (b Bool) Value() interface{} { return bool(b) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Compare implements traits.Comparer: false < true.
func (b Bool) Compare(other ref.Val) ref.Val {
	o, ok := other.(Bool)
	if !ok {
		return ValOrErr("_<_", other)
	}
	switch {
	case b == o:
		return IntZero
	case !b && o:
		return IntNegOne
	default:
		return IntOne
	}
}

// Negate implements traits.Negater (the `!` operator).
func (b Bool) Negate() ref.Val { return !b }

func (b Bool) Equal(other ref.Val) ref.Val {
	o, ok := other.(Bool)
	if !ok {
		return False
	}
	return Bool(b == o)
}

func (b Bool) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case BoolType:
		return b
	case StringType:
		return String(strconv.FormatBool(bool(b)))
	case TypeType:
		return BoolType
	}
	return NewErr("type conversion error from '%s' to '%s'", BoolType.TypeName(), typeVal.TypeName())
}
