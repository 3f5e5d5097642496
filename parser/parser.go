// Package parser produces a CEL-AST from CEL source text, including macro
// expansion. It is a hand-written recursive-descent parser: CEL's grammar
// needs no generated table to express its small, fixed precedence cascade.
package parser

import (
	"github.com/celexpr/celc/ast"
	"github.com/celexpr/celc/common"
	"github.com/celexpr/celc/operators"
)

// Options configures a Parse call.
type Options struct {
	// DisableMacros turns off has/all/exists/exists_one/map/filter
	// expansion, leaving the corresponding calls as plain Call nodes.
	DisableMacros bool
}

// Result is the outcome of a single Parse call.
type Result struct {
	Expr ast.Expression
	Errors *common.Errors
}

// Parse produces a CEL-AST from src.
func Parse(src common.Source, opts Options) Result {
	errs := newParseErrors(src)
	toks := newLexer(src.Content(), errs).tokenize()
	p := &parser{toks: toks, errs: errs, opts: opts}
	e := p.parseExpr()
	if p.cur().kind != tokEOF {
		p.errs.syntaxError(p.loc(), "unexpected trailing input: %q", p.cur().text)
	}
	return Result{Expr: e, Errors: errs.Errors}
}

type parser struct {
	toks []token
	pos int
	nextID int64
	errs *parseErrors
	opts Options
}

func (p *parser) cur() token { return p.toks[p.pos] }
func (p *parser) peekAt(off int) token {
	if p.pos+off >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+off]
}
func (p *parser) loc() common.Location { return newLoc(p.cur().line, p.cur().column) }
func (p *parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) id() int64 {
	p.nextID++
	return p.nextID
}

func (p *parser) isPunct(text string) bool {
	return p.cur().kind == tokPunct && p.cur().text == text
}

func (p *parser) expectPunct(text string) {
	if !p.isPunct(text) {
		p.errs.syntaxError(p.loc(), "expected %q, got %q", text, p.cur().text)
		return
	}
	p.advance()
}

// parseExpr is the ternary (lowest-precedence, right-associative) level.
func (p *parser) parseExpr() ast.Expression {
	loc := p.loc()
	cond := p.parseOr()
	if !p.isPunct("?") {
		return cond
	}
	p.advance()
	trueBranch := p.parseExpr()
	p.expectPunct(":")
	falseBranch := p.parseExpr()
	return ast.NewCallFunction(p.id(), loc, operators.Conditional, cond, trueBranch, falseBranch)
}

func (p *parser) parseOr() ast.Expression {
	loc := p.loc()
	left := p.parseAnd()
	for p.isPunct("||") {
		p.advance()
		right := p.parseAnd()
		left = ast.NewCallFunction(p.id(), loc, operators.LogicalOr, left, right)
	}
	return left
}

func (p *parser) parseAnd() ast.Expression {
	loc := p.loc()
	left := p.parseRelational()
	for p.isPunct("&&") {
		p.advance()
		right := p.parseRelational()
		left = ast.NewCallFunction(p.id(), loc, operators.LogicalAnd, left, right)
	}
	return left
}

// parseRelational is non-associative: at most one relational or `in`
// operator may appear at this level.
func (p *parser) parseRelational() ast.Expression {
	loc := p.loc()
	left := p.parseAdditive()
	if p.cur().kind == tokPunct {
		if op, ok := operators.Find(p.cur().text); ok {
			p.advance()
			right := p.parseAdditive()
			return ast.NewCallFunction(p.id(), loc, op, left, right)
		}
	}
	if p.cur().kind == tokIdent && p.cur().text == "in" {
		p.advance()
		right := p.parseAdditive()
		return ast.NewCallFunction(p.id(), loc, operators.In, left, right)
	}
	return left
}

func (p *parser) parseAdditive() ast.Expression {
	loc := p.loc()
	left := p.parseMultiplicative()
	for p.isPunct("+") || p.isPunct("-") {
		op := p.advance().text
		right := p.parseMultiplicative()
		fn := operators.Add
		if op == "-" {
			fn = operators.Subtract
		}
		left = ast.NewCallFunction(p.id(), loc, fn, left, right)
	}
	return left
}

func (p *parser) parseMultiplicative() ast.Expression {
	loc := p.loc()
	left := p.parseUnary()
	for p.isPunct("*") || p.isPunct("/") || p.isPunct("%") {
		op := p.advance().text
		right := p.parseUnary()
		fn := operators.Multiply
		switch op {
		case "/":
			fn = operators.Divide
		case "%":
			fn = operators.Modulo
		}
		left = ast.NewCallFunction(p.id(), loc, fn, left, right)
	}
	return left
}

func (p *parser) parseUnary() ast.Expression {
	loc := p.loc()
	if p.isPunct("!") {
		p.advance()
		operand := p.parseUnary()
		return ast.NewCallFunction(p.id(), loc, operators.LogicalNot, operand)
	}
	if p.isPunct("-") {
		p.advance()
		operand := p.parseUnary()
		return ast.NewCallFunction(p.id(), loc, operators.Negate, operand)
	}
	return p.parsePostfix()
}

// parsePostfix handles the member chain: field select, optional select,
// index, and calls, left-associatively.
func (p *parser) parsePostfix() ast.Expression {
	e := p.parsePrimary()
	for {
		switch {
		case p.isPunct("."):
			p.advance()
			e = p.parseSelectOrCall(e, false)
		case p.isPunct("?."):
			p.advance()
			e = p.parseSelectOrCall(e, true)
		case p.isPunct("["):
			loc := p.loc()
			p.advance()
			optional := p.isPunct("?")
			if optional {
				p.advance()
			}
			key := p.parseExpr()
			p.expectPunct("]")
			if optional {
				e = ast.NewCallFunction(p.id(), loc, operators.IndexOpt, e, key)
			} else {
				e = ast.NewCallFunction(p.id(), loc, operators.Index, e, key)
			}
		default:
			return e
		}
	}
}

func (p *parser) parseSelectOrCall(operand ast.Expression, optional bool) ast.Expression {
	loc := p.loc()
	if p.cur().kind != tokIdent {
		p.errs.syntaxError(loc, "expected field or method name, got %q", p.cur().text)
		return &ast.ErrorExpression{BaseExpression: ast.BaseExpression{}}
	}
	name := p.advance().text
	if p.isPunct("(") {
		args := p.parseArgs()
		call := ast.NewCallMethod(p.id(), loc, name, operand, args...)
		return p.expandMacro(call, true)
	}
	if optional {
		return ast.NewOptionalSelect(p.id(), loc, operand, name)
	}
	return ast.NewSelect(p.id(), loc, operand, name, false)
}

func (p *parser) parseArgs() []ast.Expression {
	p.expectPunct("(")
	var args []ast.Expression
	for !p.isPunct(")") {
		args = append(args, p.parseExprOrOptional())
		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	p.expectPunct(")")
	return args
}

// parseExprOrOptional parses one call argument as a plain expression. It
// does not accept the `?value` optional-entry prefix; parseList, parseMap
// and parseStruct consume that marker themselves before each entry.
func (p *parser) parseExprOrOptional() ast.Expression {
	return p.parseExpr()
}

func (p *parser) parsePrimary() ast.Expression {
	loc := p.loc()
	t := p.cur()
	switch t.kind {
	case tokInt:
		p.advance()
		return ast.NewIntLit(p.id(), loc, t.ival)
	case tokUint:
		p.advance()
		return ast.NewUintLit(p.id(), loc, t.uval)
	case tokDouble:
		p.advance()
		return ast.NewDoubleLit(p.id(), loc, t.dval)
	case tokString:
		p.advance()
		return ast.NewStringLit(p.id(), loc, t.sval)
	case tokBytes:
		p.advance()
		return ast.NewBytesLit(p.id(), loc, t.bval)
	case tokBool:
		p.advance()
		return ast.NewBoolLit(p.id(), loc, t.bbool)
	case tokNull:
		p.advance()
		return ast.NewNullLit(p.id(), loc)
	case tokIdent:
		return p.parseIdentOrCallOrStruct()
	case tokPunct:
		switch t.text {
		case "(":
			p.advance()
			e := p.parseExpr()
			p.expectPunct(")")
			return e
		case "[":
			return p.parseList()
		case "{":
			return p.parseMap()
		case "-":
			// handled in parseUnary; reaching here means a stray '-' made
			// it through, treat consistently as unary negate.
			p.advance()
			operand := p.parseUnary()
			return ast.NewCallFunction(p.id(), loc, operators.Negate, operand)
		}
	}
	p.errs.syntaxError(loc, "unexpected token %q", t.text)
	p.advance()
	return &ast.ErrorExpression{}
}

func (p *parser) parseIdentOrCallOrStruct() ast.Expression {
	loc := p.loc()
	name := p.advance().text
	if isReserved(name) {
		p.errs.reservedIdentifier(loc, name)
	}
	if len(name) > 4 && hasDoubleUnderscoreEnds(name) {
		p.errs.syntaxError(loc, "identifiers may not begin and end with '__': %s", name)
	}

	// Dotted namespace path preceding a call, e.g. `pkg.ns.fn(x)`, or a
	// qualified struct type name, e.g. `pkg.Msg{f: 1}`.
	qualified := name
	for p.isPunct(".") && p.peekAt(1).kind == tokIdent {
		p.advance()
		qualified += "." + p.advance().text
	}

	if p.isPunct("(") {
		args := p.parseArgs()
		if qualified == name {
			call := ast.NewCallFunction(p.id(), loc, name, args...)
			return p.expandMacro(call, false)
		}
		// A dotted prefix preceded the call: `optional.of(x)`, `strings.quote(x)`,
		// or an ordinary method call on a variable or chain, `x.size()`,
		// `a.b.c(x)`. Only the last segment is the called name; everything
		// before it is a receiver expression, the same shape parseSelectOrCall
		// builds for a call reached through a non-identifier-led chain.
		parts := splitDotted(qualified)
		method := parts[len(parts)-1]
		receiver := selectChainFromParts(p, loc, parts[:len(parts)-1])
		call := ast.NewCallMethod(p.id(), loc, method, receiver, args...)
		return p.expandMacro(call, true)
	}
	if p.isPunct("{") {
		return p.parseStruct(qualified, loc)
	}
	if qualified != name {
		// No call/struct followed the dotted path: fold it back into a
		// chain of plain selects so downstream qualified-identifier
		// fusion (ir.Transform) sees the familiar Select(Select(Ident)) shape.
		return identChainToSelect(p, loc, qualified)
	}
	return ast.NewIdent(p.id(), loc, name)
}

func identChainToSelect(p *parser, loc common.Location, qualified string) ast.Expression {
	return selectChainFromParts(p, loc, splitDotted(qualified))
}

func selectChainFromParts(p *parser, loc common.Location, parts []string) ast.Expression {
	var e ast.Expression = ast.NewIdent(p.id(), loc, parts[0])
	for _, field := range parts[1:] {
		e = ast.NewSelect(p.id(), loc, e, field, false)
	}
	return e
}

func splitDotted(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func hasDoubleUnderscoreEnds(name string) bool {
	return len(name) >= 4 && name[:2] == "__" && name[len(name)-2:] == "__"
}

func (p *parser) parseList() ast.Expression {
	loc := p.loc()
	p.advance() // [
	var elems []ast.Expression
	var optIdx []bool
	for !p.isPunct("]") {
		optional := p.isPunct("?")
		if optional {
			p.advance()
		}
		elems = append(elems, p.parseExpr())
		optIdx = append(optIdx, optional)
		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	p.expectPunct("]")
	l := ast.NewCreateList(p.id(), loc, elems...)
	l.OptionalIndices = optIdx
	return l
}

func (p *parser) parseMap() ast.Expression {
	loc := p.loc()
	p.advance() // {
	var entries []*ast.MapEntry
	for !p.isPunct("}") {
		entryLoc := p.loc()
		optional := p.isPunct("?")
		if optional {
			p.advance()
		}
		key := p.parseExpr()
		p.expectPunct(":")
		value := p.parseExpr()
		entries = append(entries, ast.NewMapEntry(p.id(), entryLoc, key, value, optional))
		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	p.expectPunct("}")
	return ast.NewCreateMap(p.id(), loc, entries...)
}

func (p *parser) parseStruct(messageName string, loc common.Location) ast.Expression {
	p.advance() // {
	var entries []*ast.FieldEntry
	for !p.isPunct("}") {
		fieldLoc := p.loc()
		optional := p.isPunct("?")
		if optional {
			p.advance()
		}
		if p.cur().kind != tokIdent {
			p.errs.syntaxError(fieldLoc, "expected field name, got %q", p.cur().text)
			break
		}
		field := p.advance().text
		p.expectPunct(":")
		value := p.parseExpr()
		entries = append(entries, ast.NewFieldEntry(p.id(), fieldLoc, field, value, optional))
		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	p.expectPunct("}")
	return ast.NewCreateStruct(p.id(), loc, messageName, entries...)
}
