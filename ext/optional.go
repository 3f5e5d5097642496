package ext

import (
	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
	"github.com/celexpr/celc/operators"
)

// Optional registers the optional.none/of/ofNonZeroValue namespace
// functions, the hasValue/value/or/orValue instance methods, and the
// __opt_unwrap_list helper the optMap/optFlatMap macro expansions drive.
func Optional(d *interpreter.Dispatcher) {
	d.Register("optional.none", false, 0, func(_ ref.Val, _ []ref.Val) ref.Val {
		return types.OptionalNone
	})
	d.Register("optional.of", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		return types.NewOptional(args[0])
	})
	d.Register("optional.ofNonZeroValue", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		if isZeroValue(args[0]) {
			return types.OptionalNone
		}
		return types.NewOptional(args[0])
	})

	d.Register("hasValue", true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		opt, ok := target.(*types.Optional)
		if !ok {
			return types.NewErr("hasValue() unsupported on type '%s'", target.Type().TypeName())
		}
		return types.Bool(opt.HasValue())
	})
	d.Register("value", true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		opt, ok := target.(*types.Optional)
		if !ok {
			return types.NewErr("value() unsupported on type '%s'", target.Type().TypeName())
		}
		return opt.GetValue()
	})
	d.Register("or", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		opt, ok := target.(*types.Optional)
		if !ok {
			return types.NewErr("or() unsupported on type '%s'", target.Type().TypeName())
		}
		if opt.HasValue() {
			return opt
		}
		alt, ok := args[0].(*types.Optional)
		if !ok {
			return types.NewErr("or() argument must be optional")
		}
		return alt
	})
	d.Register("orValue", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		opt, ok := target.(*types.Optional)
		if !ok {
			return types.NewErr("orValue() unsupported on type '%s'", target.Type().TypeName())
		}
		if opt.HasValue() {
			return opt.GetValue()
		}
		return args[0]
	})

	d.Register(operators.OptUnwrapList, true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		opt, ok := target.(*types.Optional)
		if !ok {
			return types.NewErr("optMap/optFlatMap target must be optional, got '%s'", target.Type().TypeName())
		}
		if !opt.HasValue() {
			return types.NewList()
		}
		return types.NewList(opt.GetValue())
	})
}

// isZeroValue reports whether v is the CEL zero value for its type,
// backing optional.ofNonZeroValue.
func isZeroValue(v ref.Val) bool {
	switch x := v.(type) {
	case types.Int:
		return x == 0
	case types.Uint:
		return x == 0
	case types.Double:
		return x == 0
	case types.String:
		return x == ""
	case types.Bytes:
		return len(x) == 0
	case types.Bool:
		return !bool(x)
	case *types.List:
		return x.Size() == types.IntZero
	case *types.Map:
		return x.Size() == types.IntZero
	case types.Null:
		return true
	}
	return false
}
