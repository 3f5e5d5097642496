package types

import (
	"math"
	"math/big"
	"strconv"

	"github.com/celexpr/celc/common/types/ref"
)

// Uint is the unsigned 64-bit CEL integer variant. Overflow is
// checked rather than wrapping.
type Uint uint64

// UintType is the singleton type tag for Uint.
var UintType = NewTypeValue("uint")

const UintZero = Uint(0)

func (u Uint) Type() ref.Type { return UintType }

// Value returns an arbitrary-precision integer. At the host boundary a
// uint crosses as a single-field wrapper instead (see
// interpreter.ValToNative).
func (u Uint) Value() interface{} { return new(big.Int).SetUint64(uint64(u)) }

func (u Uint) String() string { return strconv.FormatUint(uint64(u), 10) }

func (u Uint) Add(other ref.Val) ref.Val {
	o, ok := other.(Uint)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	v, ok := addUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr("unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Subtract(other ref.Val) ref.Val {
	o, ok := other.(Uint)
	if !ok {
		return ValOrErr(op_Subtract, other)
	}
	v, ok := subtractUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr("unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Multiply(other ref.Val) ref.Val {
	o, ok := other.(Uint)
	if !ok {
		return ValOrErr(op_Multiply, other)
	}
	v, ok := multiplyUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr("unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Divide(other ref.Val) ref.Val {
	o, ok := other.(Uint)
	if !ok {
		return ValOrErr(op_Divide, other)
	}
	if o == 0 {
		return NewErr("division by zero")
	}
	return Uint(uint64(u) / uint64(o))
}

func (u Uint) Modulo(other ref.Val) ref.Val {
	o, ok := other.(Uint)
	if !ok {
		return ValOrErr(op_Modulo, other)
	}
	if o == 0 {
		return NewErr("modulus by zero")
	}
	return Uint(uint64(u) % uint64(o))
}

func (u Uint) Compare(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Uint:
		switch {
		case u < o:
			return IntNegOne
		case u > o:
			return IntOne
		default:
			return IntZero
		}
	case Int:
		return -compareIntUint(int64(o), uint64(u))
	case Double:
		return -compareUintDouble(uint64(u), float64(o))
	}
	return ValOrErr(op_Compare, other)
}

// Equal implements CEL's strict equality: see Int.Equal.
func (u Uint) Equal(other ref.Val) ref.Val {
	if o, ok := other.(Dyn); ok {
		return o.Equal(u)
	}
	switch o := other.(type) {
	case Uint:
		return Bool(u == o)
	case Int, Double:
		return NewErr("no such overload: uint == %s", other.Type().TypeName())
	}
	return False
}

func (u Uint) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case UintType:
		return u
	case IntType:
		if u > math.MaxInt64 {
			return NewErr("range error converting %d to int", uint64(u))
		}
		return Int(u)
	case DoubleType:
		return Double(u)
	case StringType:
		return String(strconv.FormatUint(uint64(u), 10))
	case TypeType:
		return UintType
	}
	return NewErr("type conversion error from '%s' to '%s'", UintType.TypeName(), typeVal.TypeName())
}
