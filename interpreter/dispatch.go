package interpreter

import (
	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

// Function implements a named CEL function or method overload. target is
// nil for a plain function call; args excludes target.
type Function func(target ref.Val, args []ref.Val) ref.Val

type overloadKey struct {
	name string
	hasTarget bool
	arity int
}

// Dispatcher is the method/function table a compiled program closes over.
// It is deliberately simpler than a full overload-resolution table: no
// cascading by operand type, since each built-in or extension function
// branches on Go type switches internally instead.
type Dispatcher struct {
	fns map[overloadKey]Function
}

// NewDispatcher returns an empty dispatcher; callers register built-ins
// and extensions with Register.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{fns: make(map[overloadKey]Function)}
}

// Register binds name (optionally as a member/method call, when
// hasTarget) with the given fixed arity to fn. Registering the same key
// twice replaces the previous binding.
func (d *Dispatcher) Register(name string, hasTarget bool, arity int, fn Function) {
	d.fns[overloadKey{name: name, hasTarget: hasTarget, arity: arity}] = fn
}

// Find looks up a function overload by name, call shape, and arity.
func (d *Dispatcher) Find(name string, hasTarget bool, arity int) (Function, bool) {
	fn, ok := d.fns[overloadKey{name: name, hasTarget: hasTarget, arity: arity}]
	return fn, ok
}

// NewDefaultDispatcher returns a dispatcher pre-loaded with the explicit
// type conversions and the size() overloads. Extension namespaces (math,
// strings, base64, network, optional, timestamp/duration accessors) are
// registered separately by ext.Register.
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher()
	registerConversions(d)
	registerSize(d)
	return d
}

func registerSize(d *Dispatcher) {
	sizeFn := func(target ref.Val, _ []ref.Val) ref.Val {
		sizer, ok := target.(interface{ Size() ref.Val })
		if !ok {
			return types.NewErr("size() unsupported on type '%s'", target.Type().TypeName())
		}
		return sizer.Size()
	}
	d.Register("size", true, 0, sizeFn)
	d.Register("size", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
			return sizeFn(args[0], nil)
		})
}

func registerConversions(d *Dispatcher) {
	conv := func(name string, t ref.Type) {
		d.Register(name, false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
				return args[0].ConvertToType(t)
			})
	}
	conv("int", types.IntType)
	conv("uint", types.UintType)
	conv("double", types.DoubleType)
	conv("string", types.StringType)
	conv("bool", types.BoolType)
	conv("bytes", types.BytesType)
	conv("timestamp", types.TimestampType)
	conv("duration", types.DurationType)
	conv("type", types.TypeType)

	// dyn(v) marks v as having opted out of strict cross-numeric equality;
	// types.Dyn carries that marker through to Equal without otherwise
	// changing how v behaves.
	d.Register("dyn", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
			return types.NewDyn(args[0])
		})
}
