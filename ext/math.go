package ext

import (
	"math"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/common/types/traits"
	"github.com/celexpr/celc/interpreter"
)

// maxVariadicArgs bounds how many fixed-arity overloads math.least/
// math.greatest/math.bitAnd/math.bitOr/math.bitXor get registered under.
// The dispatcher has no macro layer to collect an arbitrary-length call
// into a single list argument the way the teacher's ReceiverVarArgMacro
// does, so each arity from 2 up to this bound gets its own registration
// against the same reduction; callers past the bound pass an explicit
// list argument instead (the arity-1 list form, also registered below).
const maxVariadicArgs = 8

// Math registers the math.* namespace functions: least/greatest,
// ceil/floor/round/trunc, isInf/isNaN/isFinite, abs/sign, and the bitwise
// bitAnd/bitOr/bitXor/bitNot/bitShiftLeft/bitShiftRight helpers.
func Math(d *interpreter.Dispatcher) {
	registerVariadicReduce(d, "math.least", minPair)
	registerVariadicReduce(d, "math.greatest", maxPair)
	registerVariadicReduce(d, "math.bitAnd", bitAndPair)
	registerVariadicReduce(d, "math.bitOr", bitOrPair)
	registerVariadicReduce(d, "math.bitXor", bitXorPair)

	doubleFn := func(name string, fn func(float64) float64) {
		d.Register(name, false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
			v, ok := args[0].(types.Double)
			if !ok {
				return types.NewErr("%s() requires a double argument", name)
			}
			return types.Double(fn(float64(v)))
		})
	}
	doubleFn("math.ceil", math.Ceil)
	doubleFn("math.floor", math.Floor)
	doubleFn("math.round", math.Round)
	doubleFn("math.trunc", math.Trunc)

	doubleBool := func(name string, fn func(float64) bool) {
		d.Register(name, false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
			v, ok := args[0].(types.Double)
			if !ok {
				return types.NewErr("%s() requires a double argument", name)
			}
			return types.Bool(fn(float64(v)))
		})
	}
	doubleBool("math.isInf", func(f float64) bool { return math.IsInf(f, 0) })
	doubleBool("math.isNaN", math.IsNaN)
	doubleBool("math.isFinite", func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) })

	d.Register("math.abs", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		switch v := args[0].(type) {
		case types.Double:
			return types.Double(math.Abs(float64(v)))
		case types.Int:
			if v == math.MinInt64 {
				return types.NewErr("integer overflow")
			}
			if v >= 0 {
				return v
			}
			return -v
		case types.Uint:
			return v
		}
		return types.NewErr("math.abs() unsupported on type '%s'", args[0].Type().TypeName())
	})

	d.Register("math.sign", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		switch v := args[0].(type) {
		case types.Double:
			if math.IsNaN(float64(v)) {
				return v
			}
			switch {
			case v > 0:
				return types.Double(1)
			case v < 0:
				return types.Double(-1)
			default:
				return types.Double(0)
			}
		case types.Int:
			return v.Compare(types.IntZero)
		case types.Uint:
			if v == 0 {
				return types.Uint(0)
			}
			return types.Uint(1)
		}
		return types.NewErr("math.sign() unsupported on type '%s'", args[0].Type().TypeName())
	})

	d.Register("math.bitNot", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		switch v := args[0].(type) {
		case types.Int:
			return ^v
		case types.Uint:
			return ^v
		}
		return types.NewErr("math.bitNot() unsupported on type '%s'", args[0].Type().TypeName())
	})

	shift := func(name string, left bool) interpreter.Function {
		return func(_ ref.Val, args []ref.Val) ref.Val {
			bits, ok := args[1].(types.Int)
			if !ok {
				return types.NewErr("%s() shift count must be an int", name)
			}
			if bits < 0 {
				return types.NewErr("%s() invalid shift count: %d", name, bits)
			}
			switch v := args[0].(type) {
			case types.Int:
				if left {
					return v << bits
				}
				// Right shift never carries the sign bit: the 64-bit
				// pattern shifts in zeros regardless of v's sign, so a
				// shift count of 64 or more always yields zero.
				return types.Int(uint64(v) >> uint64(bits))
			case types.Uint:
				if left {
					return v << bits
				}
				return v >> bits
			}
			return types.NewErr("%s() unsupported on type '%s'", name, args[0].Type().TypeName())
		}
	}
	d.Register("math.bitShiftLeft", false, 2, shift("math.bitShiftLeft", true))
	d.Register("math.bitShiftRight", false, 2, shift("math.bitShiftRight", false))
}

// registerVariadicReduce registers name at arities 1 (a bare numeric value
// passed straight through, or a list reduced left to right) and 2 through
// maxVariadicArgs (each argument folded pairwise through reduce, left to
// right), all sharing the one binary reduction.
func registerVariadicReduce(d *interpreter.Dispatcher, name string, reduce func(a, b ref.Val) ref.Val) {
	d.Register(name, false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		v := unwrapDyn(args[0])
		if l, ok := v.(*types.List); ok {
			return reduceList(name, l, reduce)
		}
		if !isNumeric(v) {
			return types.NewErr("%s() unsupported on type '%s'", name, v.Type().TypeName())
		}
		return args[0]
	})
	for arity := 2; arity <= maxVariadicArgs; arity++ {
		d.Register(name, false, arity, func(_ ref.Val, args []ref.Val) ref.Val {
			acc := unwrapDyn(args[0])
			if !isNumeric(acc) {
				return types.NewErr("%s() unsupported on type '%s'", name, acc.Type().TypeName())
			}
			for _, raw := range args[1:] {
				v := unwrapDyn(raw)
				if !isNumeric(v) {
					return types.NewErr("%s() unsupported on type '%s'", name, v.Type().TypeName())
				}
				acc = reduce(acc, v)
				if types.IsError(acc) {
					return acc
				}
			}
			return acc
		})
	}
}

// unwrapDyn strips a dyn() wrapper so least/greatest/bitAnd/bitOr/bitXor
// can inspect and compare the underlying numeric value directly; these
// functions order and combine values rather than test equality, so dyn()'s
// strictness marker carries no meaning for them.
func unwrapDyn(v ref.Val) ref.Val {
	if d, ok := v.(types.Dyn); ok {
		return d.Unwrap()
	}
	return v
}

func reduceList(name string, l *types.List, reduce func(a, b ref.Val) ref.Val) ref.Val {
	size, ok := l.Size().(types.Int)
	if !ok || size == types.IntZero {
		return types.NewErr("%s() list argument must not be empty", name)
	}
	acc := unwrapDyn(l.Get(types.IntZero))
	if !isNumeric(acc) {
		return types.NewErr("%s() unsupported on type '%s'", name, acc.Type().TypeName())
	}
	for i := types.IntOne; i < size; i++ {
		v := unwrapDyn(l.Get(i))
		if !isNumeric(v) {
			return types.NewErr("%s() unsupported on type '%s'", name, v.Type().TypeName())
		}
		acc = reduce(acc, v)
		if types.IsError(acc) {
			return acc
		}
	}
	return acc
}

func isNumeric(v ref.Val) bool {
	switch v.(type) {
	case types.Int, types.Uint, types.Double:
		return true
	}
	return false
}

// minPair/maxPair fold two numeric values via Compare, returning whichever
// operand wins; they also double as math.least/math.greatest's n-ary and
// list reductions.
func minPair(a, b ref.Val) ref.Val {
	cmp, ok := a.(traits.Comparer)
	if !ok {
		return types.NewErr("no such overload: math.least")
	}
	out := cmp.Compare(b)
	if types.IsError(out) {
		return out
	}
	if out == types.IntOne {
		return b
	}
	return a
}

func maxPair(a, b ref.Val) ref.Val {
	cmp, ok := a.(traits.Comparer)
	if !ok {
		return types.NewErr("no such overload: math.greatest")
	}
	out := cmp.Compare(b)
	if types.IsError(out) {
		return out
	}
	if out == types.IntNegOne {
		return b
	}
	return a
}

func bitAndPair(a, b ref.Val) ref.Val { return bitOpPair("math.bitAnd", a, b, func(x, y int64) int64 { return x & y }, func(x, y uint64) uint64 { return x & y }) }
func bitOrPair(a, b ref.Val) ref.Val {
	return bitOpPair("math.bitOr", a, b, func(x, y int64) int64 { return x | y }, func(x, y uint64) uint64 { return x | y })
}
func bitXorPair(a, b ref.Val) ref.Val {
	return bitOpPair("math.bitXor", a, b, func(x, y int64) int64 { return x ^ y }, func(x, y uint64) uint64 { return x ^ y })
}

func bitOpPair(name string, a, b ref.Val, intOp func(x, y int64) int64, uintOp func(x, y uint64) uint64) ref.Val {
	switch x := a.(type) {
	case types.Int:
		y, ok := b.(types.Int)
		if !ok {
			return types.NewErr("%s() operands must be the same numeric type", name)
		}
		return types.Int(intOp(int64(x), int64(y)))
	case types.Uint:
		y, ok := b.(types.Uint)
		if !ok {
			return types.NewErr("%s() operands must be the same numeric type", name)
		}
		return types.Uint(uintOp(uint64(x), uint64(y)))
	}
	return types.NewErr("%s() unsupported on type '%s'", name, a.Type().TypeName())
}
