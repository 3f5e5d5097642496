package parser

import (
	"github.com/celexpr/celc/ast"
	"github.com/celexpr/celc/common"
	"github.com/celexpr/celc/operators"
)

// accumulatorName is the synthetic variable every comprehension macro binds
// its running result to. The double-underscore form keeps it out of the
// space of identifiers a user could write (parsePrimary rejects them).
const accumulatorName = "__result__"

// expandMacro recognizes has/all/exists/exists_one/map/filter by name, call
// shape (instance vs. plain), and arity, and rewrites call into the
// comprehension (or select) it expands to. Any call that does not match one
// of the known macro shapes, or when DisableMacros is set, passes through
// unchanged.
func (p *parser) expandMacro(call *ast.CallExpression, isMethodCall bool) ast.Expression {
	if p.opts.DisableMacros {
		return call
	}
	loc := call.Location()
	switch {
	case !isMethodCall && call.Function == operators.Has && len(call.Args) == 1:
		return p.expandHas(loc, call.Args[0])
	case isMethodCall && call.Function == operators.All && len(call.Args) == 2:
		return p.expandQuantifier(quantifierAll, loc, call.Target, call.Args[0], nil, call.Args[1])
	case isMethodCall && call.Function == operators.All && len(call.Args) == 3:
		return p.expandQuantifier(quantifierAll, loc, call.Target, call.Args[0], call.Args[1], call.Args[2])
	case isMethodCall && call.Function == operators.Exists && len(call.Args) == 2:
		return p.expandQuantifier(quantifierExists, loc, call.Target, call.Args[0], nil, call.Args[1])
	case isMethodCall && call.Function == operators.Exists && len(call.Args) == 3:
		return p.expandQuantifier(quantifierExists, loc, call.Target, call.Args[0], call.Args[1], call.Args[2])
	case isMethodCall && call.Function == operators.ExistsOne && len(call.Args) == 2:
		return p.expandQuantifier(quantifierExistsOne, loc, call.Target, call.Args[0], nil, call.Args[1])
	case isMethodCall && call.Function == operators.Map && len(call.Args) == 2:
		return p.expandMap(loc, call.Target, call.Args[0], nil, call.Args[1])
	case isMethodCall && call.Function == operators.Map && len(call.Args) == 3:
		return p.expandMap(loc, call.Target, call.Args[0], call.Args[1], call.Args[2])
	case isMethodCall && call.Function == operators.Filter && len(call.Args) == 2:
		return p.expandFilter(loc, call.Target, call.Args[0], nil, call.Args[1])
	case isMethodCall && call.Function == operators.Filter && len(call.Args) == 3:
		return p.expandFilter(loc, call.Target, call.Args[0], call.Args[1], call.Args[2])
	case isMethodCall && call.Function == operators.OptMap && len(call.Args) == 2:
		return p.expandOptMap(loc, call.Target, call.Args[0], call.Args[1], false)
	case isMethodCall && call.Function == operators.OptFlatMap && len(call.Args) == 2:
		return p.expandOptMap(loc, call.Target, call.Args[0], call.Args[1], true)
	}
	return call
}

// expandHas rewrites has(m.f) into a test-only select: the one form CEL
// resolves without an accumulator loop.
func (p *parser) expandHas(loc common.Location, arg ast.Expression) ast.Expression {
	sel, ok := arg.(*ast.SelectExpression)
	if !ok || sel.Optional {
		p.errs.invalidHasArgument(loc)
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	return ast.NewSelect(p.id(), loc, sel.Operand, sel.Field, true)
}

type quantifierKind int

const (
	quantifierAll quantifierKind = iota
	quantifierExists
	quantifierExistsOne
)

// expandQuantifier builds the comprehension shared by all/exists/exists_one:
// only the accumulator's init/condition/step/result differ between them.
// varArg2 is non-nil only for the two-variable (k, v) forms of all/exists.
func (p *parser) expandQuantifier(kind quantifierKind, loc common.Location, iterRange, varArg, varArg2, predicate ast.Expression) ast.Expression {
	iterVar, ok := extractIdent(varArg)
	if !ok {
		p.errs.argumentIsNotIdent(varArg.Location())
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	iterVar2 := ""
	if varArg2 != nil {
		iterVar2, ok = extractIdent(varArg2)
		if !ok {
			p.errs.argumentIsNotIdent(varArg2.Location())
			return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
		}
	}
	accu := func() ast.Expression { return ast.NewIdent(p.id(), loc, accumulatorName) }

	var init, condition, step, result ast.Expression
	switch kind {
	case quantifierAll:
		init = ast.NewBoolLit(p.id(), loc, true)
		condition = ast.NewCallFunction(p.id(), loc, operators.NotStrictlyFalse, accu())
		step = ast.NewCallFunction(p.id(), loc, operators.LogicalAnd, accu(), predicate)
		result = accu()
	case quantifierExists:
		init = ast.NewBoolLit(p.id(), loc, false)
		condition = ast.NewCallFunction(p.id(), loc, operators.NotStrictlyFalse,
			ast.NewCallFunction(p.id(), loc, operators.LogicalNot, accu()))
		step = ast.NewCallFunction(p.id(), loc, operators.LogicalOr, accu(), predicate)
		result = accu()
	case quantifierExistsOne:
		zero := ast.NewIntLit(p.id(), loc, 0)
		one := ast.NewIntLit(p.id(), loc, 1)
		init = zero
		condition = ast.NewCallFunction(p.id(), loc, operators.LessEquals, accu(), one)
		step = ast.NewCallFunction(p.id(), loc, operators.Conditional, predicate,
			ast.NewCallFunction(p.id(), loc, operators.Add, accu(), one), accu())
		result = ast.NewCallFunction(p.id(), loc, operators.Equals, accu(), one)
	}
	if iterVar2 != "" {
		return ast.NewComprehension2(p.id(), loc, iterVar, iterVar2, iterRange, accumulatorName, init, condition, step, result)
	}
	return ast.NewComprehension(p.id(), loc, iterVar, iterRange, accumulatorName, init, condition, step, result)
}

// expandMap rewrites `range.map(v, fn)` and the three-argument
// `range.map(v, filter, fn)` form into a list-building comprehension; the
// filter form conditionally re-contributes the current accumulator instead
// of appending when the predicate is false.
func (p *parser) expandMap(loc common.Location, iterRange, varArg, filter, fn ast.Expression) ast.Expression {
	iterVar, ok := extractIdent(varArg)
	if !ok {
		p.errs.argumentIsNotIdent(varArg.Location())
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	accu := ast.NewIdent(p.id(), loc, accumulatorName)
	init := ast.NewCreateList(p.id(), loc)
	condition := ast.NewBoolLit(p.id(), loc, true)
	step := ast.NewCallFunction(p.id(), loc, operators.Add, accu, ast.NewCreateList(p.id(), loc, fn))
	if filter != nil {
		step = ast.NewCallFunction(p.id(), loc, operators.Conditional, filter, step, accu)
	}
	return ast.NewComprehension(p.id(), loc, iterVar, iterRange, accumulatorName, init, condition, step, accu)
}

// expandFilter rewrites `range.filter(v, predicate)` into a list-building
// comprehension that appends the loop variable itself rather than a
// function of it. varArg2 is non-nil for the two-variable (k, v) form,
// where the value `v` rather than the key `k` is what gets appended.
func (p *parser) expandFilter(loc common.Location, iterRange, varArg, varArg2, predicate ast.Expression) ast.Expression {
	iterVar, ok := extractIdent(varArg)
	if !ok {
		p.errs.argumentIsNotIdent(varArg.Location())
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	appended := varArg
	iterVar2 := ""
	if varArg2 != nil {
		iterVar2, ok = extractIdent(varArg2)
		if !ok {
			p.errs.argumentIsNotIdent(varArg2.Location())
			return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
		}
		appended = varArg2
	}
	accu := ast.NewIdent(p.id(), loc, accumulatorName)
	init := ast.NewCreateList(p.id(), loc)
	condition := ast.NewBoolLit(p.id(), loc, true)
	step := ast.NewCallFunction(p.id(), loc, operators.Add, accu, ast.NewCreateList(p.id(), loc, appended))
	step = ast.NewCallFunction(p.id(), loc, operators.Conditional, predicate, step, accu)
	if iterVar2 != "" {
		return ast.NewComprehension2(p.id(), loc, iterVar, iterVar2, iterRange, accumulatorName, init, condition, step, accu)
	}
	return ast.NewComprehension(p.id(), loc, iterVar, iterRange, accumulatorName, init, condition, step, accu)
}

// expandOptMap rewrites `target.optMap(bind, f)` (and the flat variant) into
// a comprehension over the zero- or one-element list __opt_unwrap_list(target)
// produces at runtime: zero iterations leaves the accumulator at its
// optional.none() initial value, one iteration sets it to f (optFlatMap,
// where f already yields an optional) or optional.of(f) (optMap).
func (p *parser) expandOptMap(loc common.Location, target, varArg, fn ast.Expression, flat bool) ast.Expression {
	iterVar, ok := extractIdent(varArg)
	if !ok {
		p.errs.argumentIsNotIdent(varArg.Location())
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	iterRange := ast.NewCallMethod(p.id(), loc, operators.OptUnwrapList, target)
	init := ast.NewCallMethod(p.id(), loc, "none", ast.NewIdent(p.id(), loc, "optional"))
	condition := ast.NewBoolLit(p.id(), loc, true)
	step := fn
	if !flat {
		step = ast.NewCallMethod(p.id(), loc, "of", ast.NewIdent(p.id(), loc, "optional"), fn)
	}
	accu := ast.NewIdent(p.id(), loc, accumulatorName)
	return ast.NewComprehension(p.id(), loc, iterVar, iterRange, accumulatorName, init, condition, step, accu)
}

func extractIdent(e ast.Expression) (string, bool) {
	ident, ok := e.(*ast.IdentExpression)
	if !ok {
		return "", false
	}
	return ident.Name, true
}
