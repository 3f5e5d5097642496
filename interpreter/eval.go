package interpreter

import (
	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/common/types/traits"
	"github.com/celexpr/celc/ir"
	"github.com/celexpr/celc/operators"
)

// Interpretable is a planned, ready-to-run IR node. Planning (see
// planner.go) does no work beyond wrapping the tree and a dispatcher
// reference; all evaluation happens in Eval.
type Interpretable interface {
	Eval(act Activation) ref.Val
}

// evalNode dispatches a single IR node against an activation, tree-walking
// recursively. It is the engine underlying every Interpretable.
func evalNode(n ir.Node, act Activation, disp *Dispatcher) ref.Val {
	switch v := n.(type) {
	case *ir.Literal:
		return literalVal(v.Value)
	case *ir.QualifiedIdent:
		return resolveCandidates(act, v.Candidates)
	case *ir.Select:
		return evalSelect(v, act, disp)
	case *ir.Index:
		return evalIndex(v, act, disp)
	case *ir.Call:
		return evalCall(v, act, disp)
	case *ir.LogicalAnd:
		return evalLogicalAnd(v, act, disp)
	case *ir.LogicalOr:
		return evalLogicalOr(v, act, disp)
	case *ir.Not:
		return evalNot(v, act, disp)
	case *ir.Negate:
		return evalNegate(v, act, disp)
	case *ir.Ternary:
		return evalTernary(v, act, disp)
	case *ir.CreateList:
		return evalCreateList(v, act, disp)
	case *ir.CreateMap:
		return evalCreateMap(v, act, disp)
	case *ir.CreateStruct:
		return evalCreateStruct(v, act, disp)
	case *ir.Comprehension:
		return evalComprehension(v, act, disp)
	case *ir.ErrorNode:
		return types.NewErr("parse error")
	default:
		return types.NewErr("unsupported IR node %T", n)
	}
}

func literalVal(v interface{}) ref.Val {
	switch x := v.(type) {
	case nil:
		return types.NullValue
	case int64:
		return types.Int(x)
	case uint64:
		return types.Uint(x)
	case float64:
		return types.Double(x)
	case string:
		return types.String(x)
	case []byte:
		return types.Bytes(x)
	case bool:
		return types.Bool(x)
	default:
		return types.NewErr("unsupported literal type %T", v)
	}
}

func resolveCandidates(act Activation, candidates []string) ref.Val {
	for _, c := range candidates {
		if val, remaining, found := act.ResolveQualified(c); found {
			for _, field := range remaining {
				val = SelectField(val, field)
				if types.IsError(val) {
					return val
				}
			}
			return val
		}
	}
	return types.NewErr("undeclared reference to '%s'", candidates[len(candidates)-1])
}

func evalSelect(s *ir.Select, act Activation, disp *Dispatcher) ref.Val {
	operand := evalNode(s.Operand, act, disp)
	if types.IsError(operand) {
		if s.TestOnly {
			return types.False
		}
		return operand
	}
	if opt, ok := operand.(*types.Optional); ok {
		if s.Optional {
			if !opt.HasValue() {
				return types.OptionalNone
			}
			return wrapOptionalSelect(opt.GetValue(), s.Field, s.TestOnly)
		}
		return types.NewErr("select on optional requires '?.'")
	}
	if s.TestOnly {
		tester, ok := operand.(traits.FieldTester)
		if !ok {
			return types.NewErr("has() unsupported on type '%s'", operand.Type().TypeName())
		}
		return tester.IsSet(s.Field)
	}
	if s.Optional {
		return wrapOptionalSelect(operand, s.Field, false)
	}
	return SelectField(operand, s.Field)
}

func wrapOptionalSelect(base ref.Val, field string, testOnly bool) ref.Val {
	v := SelectField(base, field)
	if types.IsError(v) {
		return types.OptionalNone
	}
	return types.NewOptional(v)
}

func evalIndex(idx *ir.Index, act Activation, disp *Dispatcher) ref.Val {
	operand := evalNode(idx.Operand, act, disp)
	if types.IsError(operand) {
		return operand
	}
	key := evalNode(idx.Key, act, disp)
	if types.IsError(key) {
		return key
	}
	if opt, ok := operand.(*types.Optional); ok {
		if !idx.Optional {
			return types.NewErr("index on optional requires '[?...]'")
		}
		if !opt.HasValue() {
			return types.OptionalNone
		}
		return wrapOptionalIndex(opt.GetValue(), key)
	}
	if idx.Optional {
		return wrapOptionalIndex(operand, key)
	}
	indexer, ok := operand.(traits.Indexer)
	if !ok {
		return types.NewErr("type '%s' does not support indexing", operand.Type().TypeName())
	}
	return indexer.Get(key)
}

func wrapOptionalIndex(base ref.Val, key ref.Val) ref.Val {
	indexer, ok := base.(traits.Indexer)
	if !ok {
		return types.NewErr("type '%s' does not support indexing", base.Type().TypeName())
	}
	v := indexer.Get(key)
	if types.IsError(v) {
		return types.OptionalNone
	}
	return types.NewOptional(v)
}

func evalNot(n *ir.Not, act Activation, disp *Dispatcher) ref.Val {
	v := evalNode(n.Operand, act, disp)
	if types.IsError(v) {
		return v
	}
	b, ok := v.(types.Bool)
	if !ok {
		return types.NewErr("'!' unsupported on type '%s'", v.Type().TypeName())
	}
	return b.Negate()
}

func evalNegate(n *ir.Negate, act Activation, disp *Dispatcher) ref.Val {
	v := evalNode(n.Operand, act, disp)
	if types.IsError(v) {
		return v
	}
	neg, ok := v.(traits.Negater)
	if !ok {
		return types.NewErr("unary '-' unsupported on type '%s'", v.Type().TypeName())
	}
	return neg.Negate()
}

// evalLogicalAnd and evalLogicalOr implement the commutative error
// absorption table: a decisive operand (false for &&, true for ||) wins
// even if the other operand errored. Both operands are always evaluated;
// the temporary names on the IR node exist for the emitter's diagnostic
// output and are not needed by this direct tree-walk.
func evalLogicalAnd(n *ir.LogicalAnd, act Activation, disp *Dispatcher) ref.Val {
	l := evalNode(n.Left, act, disp)
	r := evalNode(n.Right, act, disp)
	lb, lIsBool := l.(types.Bool)
	rb, rIsBool := r.(types.Bool)
	switch {
	case lIsBool && !bool(lb):
		return types.False
	case rIsBool && !bool(rb):
		return types.False
	case types.IsError(l):
		return l
	case types.IsError(r):
		return r
	case lIsBool && rIsBool:
		return types.Bool(bool(lb) && bool(rb))
	default:
		return types.NewErr("no such overload: %s", operators.LogicalAnd)
	}
}

func evalLogicalOr(n *ir.LogicalOr, act Activation, disp *Dispatcher) ref.Val {
	l := evalNode(n.Left, act, disp)
	r := evalNode(n.Right, act, disp)
	lb, lIsBool := l.(types.Bool)
	rb, rIsBool := r.(types.Bool)
	switch {
	case lIsBool && bool(lb):
		return types.True
	case rIsBool && bool(rb):
		return types.True
	case types.IsError(l):
		return l
	case types.IsError(r):
		return r
	case lIsBool && rIsBool:
		return types.Bool(bool(lb) || bool(rb))
	default:
		return types.NewErr("no such overload: %s", operators.LogicalOr)
	}
}

// evalTernary implements: a non-bool condition errors without
// evaluating either branch; this is the only lazily-evaluated form.
func evalTernary(n *ir.Ternary, act Activation, disp *Dispatcher) ref.Val {
	c := evalNode(n.Cond, act, disp)
	b, ok := c.(types.Bool)
	if !ok {
		if types.IsError(c) {
			return c
		}
		return types.NewErr("ternary condition must be bool, got '%s'", c.Type().TypeName())
	}
	if bool(b) {
		return evalNode(n.True, act, disp)
	}
	return evalNode(n.False, act, disp)
}

func evalCreateList(l *ir.CreateList, act Activation, disp *Dispatcher) ref.Val {
	elems := make([]ref.Val, 0, len(l.Elements))
	for i, e := range l.Elements {
		v := evalNode(e, act, disp)
		if types.IsError(v) {
			return v
		}
		if i < len(l.OptionalIndices) && l.OptionalIndices[i] {
			opt, ok := v.(*types.Optional)
			if !ok {
				return types.NewErr("optional list entry must be type optional")
			}
			if !opt.HasValue() {
				continue
			}
			v = opt.GetValue()
		}
		elems = append(elems, v)
	}
	return types.NewList(elems...)
}

func evalCreateMap(m *ir.CreateMap, act Activation, disp *Dispatcher) ref.Val {
	keys := make([]ref.Val, 0, len(m.Entries))
	vals := make([]ref.Val, 0, len(m.Entries))
	for _, entry := range m.Entries {
		k := evalNode(entry.Key, act, disp)
		if types.IsError(k) {
			return k
		}
		v := evalNode(entry.Value, act, disp)
		if types.IsError(v) {
			return v
		}
		if entry.Optional {
			opt, ok := v.(*types.Optional)
			if !ok {
				return types.NewErr("optional map entry must be type optional")
			}
			if !opt.HasValue() {
				continue
			}
			v = opt.GetValue()
		}
		switch k.(type) {
		case types.Int, types.Uint, types.Bool, types.String:
		default:
			return types.NewErr("invalid map key type '%s'", k.Type().TypeName())
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return types.NewMap(keys, vals)
}

func evalCreateStruct(s *ir.CreateStruct, act Activation, disp *Dispatcher) ref.Val {
	order := make([]string, 0, len(s.Entries))
	fields := make(map[string]ref.Val, len(s.Entries))
	for _, entry := range s.Entries {
		// Every entry the literal names is a known field, whether or not
		// it ends up with a value below; has() on it must see "known,
		// unset", never "no such field".
		order = append(order, entry.Field)
		v := evalNode(entry.Initializer, act, disp)
		if types.IsError(v) {
			return v
		}
		if entry.Optional {
			opt, ok := v.(*types.Optional)
			if !ok {
				return types.NewErr("optional field initializer must be type optional")
			}
			if !opt.HasValue() {
				continue
			}
			v = opt.GetValue()
		}
		fields[entry.Field] = v
	}
	return types.NewStruct(s.MessageName, order, fields)
}

func evalCall(c *ir.Call, act Activation, disp *Dispatcher) ref.Val {
	if operators.IsOperator(c.Function) {
		return evalOperator(c, act, disp)
	}

	var target ref.Val
	if c.Target != nil {
		target = evalNode(c.Target, act, disp)
		if types.IsError(target) {
			return target
		}
	}
	args := make([]ref.Val, len(c.Args))
	for i, a := range c.Args {
		args[i] = evalNode(a, act, disp)
		if types.IsError(args[i]) {
			return args[i]
		}
	}
	fn, ok := disp.Find(c.Function, c.Target != nil, len(args))
	if !ok {
		return types.NewErr("no such function: %s", c.Function)
	}
	return fn(target, args)
}

func evalOperator(c *ir.Call, act Activation, disp *Dispatcher) ref.Val {
	args := make([]ref.Val, len(c.Args))
	for i, a := range c.Args {
		args[i] = evalNode(a, act, disp)
		if types.IsError(args[i]) {
			return args[i]
		}
	}
	switch c.Function {
	case operators.Add:
		adder, ok := args[0].(traits.Adder)
		if !ok {
			return types.NewErr("no such overload: %s", operators.Add)
		}
		return adder.Add(args[1])
	case operators.Subtract:
		s, ok := args[0].(traits.Subtractor)
		if !ok {
			return types.NewErr("no such overload: %s", operators.Subtract)
		}
		return s.Subtract(args[1])
	case operators.Multiply:
		m, ok := args[0].(traits.Multiplier)
		if !ok {
			return types.NewErr("no such overload: %s", operators.Multiply)
		}
		return m.Multiply(args[1])
	case operators.Divide:
		d, ok := args[0].(traits.Divider)
		if !ok {
			return types.NewErr("no such overload: %s", operators.Divide)
		}
		return d.Divide(args[1])
	case operators.Modulo:
		m, ok := args[0].(traits.Modder)
		if !ok {
			return types.NewErr("no such overload: %s", operators.Modulo)
		}
		return m.Modulo(args[1])
	case operators.Equals:
		return args[0].Equal(args[1])
	case operators.NotEquals:
		eq := args[0].Equal(args[1])
		if types.IsError(eq) {
			return eq
		}
		return types.Bool(!bool(eq.(types.Bool)))
	case operators.Less, operators.LessEquals, operators.Greater, operators.GreaterEquals:
		return evalRelational(c.Function, args[0], args[1])
	case operators.In:
		container, ok := args[1].(traits.Container)
		if !ok {
			return types.NewErr("no such overload: %s", operators.In)
		}
		return container.Contains(args[0])
	default:
		return types.NewErr("unsupported operator '%s'", c.Function)
	}
}

// evalRelational implements `<`,`<=`,`>`,`>=` including NaN
// rule: a NaN operand yields false, never the error sentinel.
func evalRelational(fn string, a, b ref.Val) ref.Val {
	ad, aIsDouble := a.(types.Double)
	bd, bIsDouble := b.(types.Double)
	if (aIsDouble && isNaN(float64(ad))) || (bIsDouble && isNaN(float64(bd))) {
		return types.False
	}
	cmp, ok := a.(traits.Comparer)
	if !ok {
		return types.NewErr("no such overload: %s", fn)
	}
	result := cmp.Compare(b)
	if types.IsError(result) {
		return result
	}
	c := result.(types.Int)
	switch fn {
	case operators.Less:
		return types.Bool(c == types.IntNegOne)
	case operators.LessEquals:
		return types.Bool(c != types.IntOne)
	case operators.Greater:
		return types.Bool(c == types.IntOne)
	case operators.GreaterEquals:
		return types.Bool(c != types.IntNegOne)
	}
	return types.NewErr("unsupported relational operator '%s'", fn)
}

func isNaN(f float64) bool { return f != f }

// evalComprehension implements the single iteration protocol every
// comprehension macro lowers to, including the @not_strictly_false probe
// all/exists rely on.
func evalComprehension(c *ir.Comprehension, act Activation, disp *Dispatcher) ref.Val {
	rangeVal := evalNode(c.IterRange, act, disp)
	if types.IsError(rangeVal) {
		return rangeVal
	}
	iterable, ok := rangeVal.(traits.Iterable)
	if !ok {
		return types.NewErr("comprehension range must be list or map, got '%s'", rangeVal.Type().TypeName())
	}
	accu := evalNode(c.AccuInit, act, disp)
	if types.IsError(accu) {
		return accu
	}

	it := iterable.Iterator()
	for it.HasNext() {
		iterVal := it.Next()
		scope := &loopActivation{parent: act, vars: map[string]ref.Val{c.IterVar: iterVal, c.AccuVar: accu}}
		if c.IterVar2 != "" {
			if kv, ok := it.(traits.KeyValueIterator); ok {
				scope.vars[c.IterVar2] = kv.NextValue()
			}
		}

		cond := evalNode(c.LoopCondition, scope, disp)
		if c.NotStrictlyFalse {
			if b, ok := cond.(types.Bool); ok && !bool(b) {
				break
			}
			// Any other outcome (true, or error) lets the loop continue;
			// errors are absorbed here and may resurface only if no
			// decisive (false) element is ever found, same as `&&`/`||`.
		} else {
			b, ok := cond.(types.Bool)
			if !ok {
				if types.IsError(cond) {
					return cond
				}
				return types.NewErr("comprehension condition must be bool")
			}
			if !b {
				break
			}
		}

		step := evalNode(c.LoopStep, scope, disp)
		if types.IsError(step) && !c.NotStrictlyFalse {
			return step
		}
		accu = step
	}

	result := &loopActivation{parent: act, vars: map[string]ref.Val{c.AccuVar: accu}}
	return evalNode(c.Result, result, disp)
}

// loopActivation layers comprehension-local bindings (the iteration and
// accumulator variables) over the enclosing activation.
type loopActivation struct {
	parent Activation
	vars map[string]ref.Val
}

func (s *loopActivation) ResolveQualified(name string) (ref.Val, []string, bool) {
	if v, ok := s.vars[name]; ok {
		return v, nil, true
	}
	return s.parent.ResolveQualified(name)
}
