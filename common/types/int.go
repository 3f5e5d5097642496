package types

import (
	"math/big"
	"strconv"

	"github.com/celexpr/celc/common/types/ref"
)

// Int is the signed 64-bit CEL integer variant. Overflow is
// checked rather than wrapping.
type Int int64

// IntType is the singleton type tag for Int.
var IntType = NewTypeValue("int")

const (
	IntZero = Int(0)
	IntOne = Int(1)
	IntNegOne = Int(-1)
)

func (i Int) Type() ref.Type { return IntType }

// Value returns an arbitrary-precision integer, matching the boundary
// representation host code exchanges with the runtime.
func (i Int) Value() interface{} { return big.NewInt(int64(i)) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (i Int) Add(other ref.Val) ref.Val {
	o, ok := other.(Int)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	v, ok := addInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Subtract(other ref.Val) ref.Val {
	o, ok := other.(Int)
	if !ok {
		return ValOrErr(op_Subtract, other)
	}
	v, ok := subtractInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Multiply(other ref.Val) ref.Val {
	o, ok := other.(Int)
	if !ok {
		return ValOrErr(op_Multiply, other)
	}
	v, ok := multiplyInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Divide(other ref.Val) ref.Val {
	o, ok := other.(Int)
	if !ok {
		return ValOrErr(op_Divide, other)
	}
	if o == 0 {
		return NewErr("division by zero")
	}
	v, ok := divideInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Modulo(other ref.Val) ref.Val {
	o, ok := other.(Int)
	if !ok {
		return ValOrErr(op_Modulo, other)
	}
	if o == 0 {
		return NewErr("modulus by zero")
	}
	v, ok := moduloInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Negate() ref.Val {
	v, ok := negateInt64Checked(int64(i))
	if !ok {
		return NewErr("integer overflow")
	}
	return Int(v)
}

func (i Int) Compare(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Int:
		return compareInt64(int64(i), int64(o))
	case Uint:
		return compareIntUint(int64(i), uint64(o))
	case Double:
		return compareIntDouble(int64(i), float64(o))
	}
	return ValOrErr(op_Compare, other)
}

// Equal implements CEL's strict equality: a plain int compares equal only
// to another int. Comparing against uint or double is a type error unless
// the other operand passed through dyn(), which Dyn.Equal handles.
func (i Int) Equal(other ref.Val) ref.Val {
	if o, ok := other.(Dyn); ok {
		return o.Equal(i)
	}
	switch o := other.(type) {
	case Int:
		return Bool(i == o)
	case Uint, Double:
		return NewErr("no such overload: int == %s", other.Type().TypeName())
	}
	return False
}

func (i Int) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IntType:
		return i
	case UintType:
		if i < 0 {
			return NewErr("range error converting %d to uint", int64(i))
		}
		return Uint(i)
	case DoubleType:
		return Double(i)
	case StringType:
		return String(strconv.FormatInt(int64(i), 10))
	case TypeType:
		return IntType
	}
	return NewErr("type conversion error from '%s' to '%s'", IntType.TypeName(), typeVal.TypeName())
}

const (
	op_Add = "_+_"
	op_Subtract = "_-_"
	op_Multiply = "_*_"
	op_Divide = "_/_"
	op_Modulo = "_%_"
	op_Compare = "_<_"
)
