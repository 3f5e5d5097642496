package types

import (
	"math"

	"github.com/celexpr/celc/common/types/ref"
)

// Dyn wraps a value to mark it as having passed through dyn(), CEL's escape
// hatch from strict equality: comparing a Dyn-wrapped numeric against a
// differently-typed numeric compares by value instead of erroring. Every
// other trait (Type, Value, ConvertToType, and the arithmetic/ordering
// operators that other code reaches through a type assertion to the
// wrapped concrete type) delegates straight through, so dyn(x) behaves
// exactly like x everywhere except at this one strictness boundary.
type Dyn struct {
	val ref.Val
}

// NewDyn wraps v as the result of dyn(v).
func NewDyn(v ref.Val) ref.Val {
	if d, ok := v.(Dyn); ok {
		return d
	}
	return Dyn{val: v}
}

func (d Dyn) Type() ref.Type { return d.val.Type() }
func (d Dyn) Value() interface{} { return d.val.Value() }
func (d Dyn) String() string { return ref.ToString(d.val) }

// Unwrap returns the value dyn() was applied to.
func (d Dyn) Unwrap() ref.Val { return d.val }

func (d Dyn) Equal(other ref.Val) ref.Val {
	rhs := other
	if o, ok := rhs.(Dyn); ok {
		rhs = o.val
	}
	if eq, ok := permissiveNumericEqual(d.val, rhs); ok {
		return eq
	}
	return d.val.Equal(rhs)
}

func (d Dyn) ConvertToType(typeVal ref.Type) ref.Val { return d.val.ConvertToType(typeVal) }

// permissiveNumericEqual compares two numeric operands of different
// concrete types by value, the relaxation dyn() grants over the strict
// same-type-only equality int/uint/double otherwise enforce. ok is false
// when a or b is not numeric, or both are the same numeric type (the
// ordinary same-type Equal already handles that case correctly).
func permissiveNumericEqual(a, b ref.Val) (Bool, bool) {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Uint:
			return compareIntUint(int64(x), uint64(y)) == IntZero, true
		case Double:
			return !math.IsNaN(float64(y)) && compareIntDouble(int64(x), float64(y)) == IntZero, true
		}
	case Uint:
		switch y := b.(type) {
		case Int:
			return compareIntUint(int64(y), uint64(x)) == IntZero, true
		case Double:
			return !math.IsNaN(float64(y)) && compareUintDouble(uint64(x), float64(y)) == IntZero, true
		}
	case Double:
		switch y := b.(type) {
		case Int:
			return !math.IsNaN(float64(x)) && compareIntDouble(int64(y), float64(x)) == IntZero, true
		case Uint:
			return !math.IsNaN(float64(x)) && compareUintDouble(uint64(y), float64(x)) == IntZero, true
		}
	}
	return false, false
}
