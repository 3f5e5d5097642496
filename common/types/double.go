package types

import (
	"math"
	"strconv"

	"github.com/celexpr/celc/common/types/ref"
)

// Double is the CEL IEEE-754 double-precision variant.
type Double float64

// DoubleType is the singleton type tag for Double.
var DoubleType = NewTypeValue("double")

func (d Double) Type() ref.Type { return DoubleType }
func (d Double) Value() interface{} { return float64(d) }
func (d Double) String() string { return strconv.FormatFloat(float64(d), 'g', -1, 64) }

func (d Double) Add(other ref.Val) ref.Val {
	o, ok := other.(Double)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	return d + o
}

func (d Double) Subtract(other ref.Val) ref.Val {
	o, ok := other.(Double)
	if !ok {
		return ValOrErr(op_Subtract, other)
	}
	return d - o
}

func (d Double) Multiply(other ref.Val) ref.Val {
	o, ok := other.(Double)
	if !ok {
		return ValOrErr(op_Multiply, other)
	}
	return d * o
}

func (d Double) Divide(other ref.Val) ref.Val {
	o, ok := other.(Double)
	if !ok {
		return ValOrErr(op_Divide, other)
	}
	// IEEE-754 division by zero produces +/-Inf or NaN, never an error.
	return d / o
}

func (d Double) Negate() ref.Val { return -d }

// Compare implements traits.Comparer. NaN has no ordering; callers
// implementing relational operators must check math.IsNaN before trusting
// this result, "NaN relational ops yield false" rule.
func (d Double) Compare(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Double:
		if math.IsNaN(float64(d)) || math.IsNaN(float64(o)) {
			return NewErr("NaN values cannot be ordered")
		}
		return compareFloat(float64(d), float64(o))
	case Int:
		if math.IsNaN(float64(d)) {
			return NewErr("NaN values cannot be ordered")
		}
		return -compareIntDouble(int64(o), float64(d))
	case Uint:
		if math.IsNaN(float64(d)) {
			return NewErr("NaN values cannot be ordered")
		}
		return -compareUintDouble(uint64(o), float64(d))
	}
	return ValOrErr(op_Compare, other)
}

// Equal follows IEEE-754 (NaN is never equal to anything, including
// itself) and CEL's strict equality: see Int.Equal. Comparing against int
// or uint is a type error unless the other operand passed through dyn().
func (d Double) Equal(other ref.Val) ref.Val {
	if o, ok := other.(Dyn); ok {
		return o.Equal(d)
	}
	switch o := other.(type) {
	case Double:
		return Bool(float64(d) == float64(o))
	case Int, Uint:
		return NewErr("no such overload: double == %s", other.Type().TypeName())
	}
	return False
}

func (d Double) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case DoubleType:
		return d
	case IntType:
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) || float64(d) < math.MinInt64 || float64(d) > math.MaxInt64 {
			return NewErr("range error converting %s to int", d.String())
		}
		return Int(d)
	case UintType:
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) || float64(d) < 0 || float64(d) > math.MaxUint64 {
			return NewErr("range error converting %s to uint", d.String())
		}
		return Uint(d)
	case StringType:
		return String(d.String())
	case TypeType:
		return DoubleType
	}
	return NewErr("type conversion error from '%s' to '%s'", DoubleType.TypeName(), typeVal.TypeName())
}
