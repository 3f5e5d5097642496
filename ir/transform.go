package ir

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/celexpr/celc/ast"
	"github.com/celexpr/celc/common/containers"
	"github.com/celexpr/celc/operators"
)

// Transform lowers a CEL-AST produced by the parser into the reduced IR.
// cont resolves bare identifiers against the compile-time container prefix;
// pass containers.New("") for no prefix.
func Transform(e ast.Expression, cont *containers.Container) (Node, error) {
	t := &transformer{cont: cont}
	return t.transform(e)
}

type transformer struct {
	cont *containers.Container
}

func (t *transformer) transform(e ast.Expression) (Node, error) {
	switch v := e.(type) {
	case *ast.IntLit:
		return &Literal{Value: v.Value}, nil
	case *ast.UintLit:
		return &Literal{Value: v.Value}, nil
	case *ast.DoubleLit:
		return &Literal{Value: v.Value}, nil
	case *ast.StringLit:
		return &Literal{Value: v.Value}, nil
	case *ast.BytesLit:
		return &Literal{Value: v.Value}, nil
	case *ast.BoolLit:
		return &Literal{Value: v.Value}, nil
	case *ast.NullLit:
		return &Literal{Value: nil}, nil
	case *ast.IdentExpression:
		// The container prefix is known at compile time, so its candidate
		// list is baked in here rather than recomputed per evaluate call
		//.
		return &QualifiedIdent{Candidates: t.cont.ResolveCandidates(v.Name)}, nil
	case *ast.SelectExpression:
		return t.transformSelect(v)
	case *ast.CallExpression:
		return t.transformCall(v)
	case *ast.CreateListExpression:
		return t.transformCreateList(v)
	case *ast.CreateMapExpression:
		return t.transformCreateMap(v)
	case *ast.CreateStructExpression:
		return t.transformCreateStruct(v)
	case *ast.ComprehensionExpression:
		return t.transformComprehension(v)
	case *ast.ErrorExpression:
		return &ErrorNode{}, nil
	default:
		return nil, fmt.Errorf("ir: unknown AST node type %T", e)
	}
}

// transformSelect fuses a chain of plain (non-optional, non-test-only)
// selects over identifiers into a single QualifiedIdent.
func (t *transformer) transformSelect(s *ast.SelectExpression) (Node, error) {
	if path, ok := fusedPath(s); ok {
		// Qualified chains longer than a bare identifier are not subject
		// to container prefixing (only the leading bare name is a
		// candidate for prefix substitution); the cascade below still
		// applies the longest-prefix-over-bindings rule to this one
		// candidate.
		return &QualifiedIdent{Candidates: []string{path}}, nil
	}
	operand, err := t.transform(s.Operand)
	if err != nil {
		return nil, err
	}
	return &Select{Operand: operand, Field: s.Field, TestOnly: s.TestOnly, Optional: s.Optional}, nil
}

// fusedPath walks upward from s collecting field names as long as every
// link in the chain is a plain select, bottoming out at a bare identifier.
func fusedPath(e ast.Expression) (string, bool) {
	switch v := e.(type) {
	case *ast.IdentExpression:
		return v.Name, true
	case *ast.SelectExpression:
		if v.TestOnly || v.Optional {
			return "", false
		}
		base, ok := fusedPath(v.Operand)
		if !ok {
			return "", false
		}
		return base + "." + v.Field, true
	default:
		return "", false
	}
}

// extensionNamespace reports whether name is a bare identifier used as an
// extension function namespace (`optional.of(...)`, `strings.quote(...)`,
// `base64.encode(...)`, `math.least(...)`) rather than a value a method is
// dispatched against. There is no checker here to resolve this from
// declarations, so the namespaces are a fixed, hand-maintained list; a
// user-declared binding with one of these names shadows the namespace and
// cannot be reached.
func extensionNamespace(name string) bool {
	switch name {
	case "optional", "strings", "base64", "math":
		return true
	}
	return false
}

func (t *transformer) transformCall(c *ast.CallExpression) (Node, error) {
	if ident, ok := c.Target.(*ast.IdentExpression); ok && extensionNamespace(ident.Name) {
		args := make([]Node, len(c.Args))
		for i, a := range c.Args {
			n, err := t.transform(a)
			if err != nil {
				return nil, err
			}
			args[i] = n
		}
		return &Call{Function: ident.Name + "." + c.Function, Args: args}, nil
	}

	switch c.Function {
	case operators.LogicalAnd:
		left, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		right, err := t.transform(c.Args[1])
		if err != nil {
			return nil, err
		}
		return &LogicalAnd{Left: left, Right: right, TempL: freshTemp(), TempR: freshTemp()}, nil
	case operators.LogicalOr:
		left, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		right, err := t.transform(c.Args[1])
		if err != nil {
			return nil, err
		}
		return &LogicalOr{Left: left, Right: right, TempL: freshTemp(), TempR: freshTemp()}, nil
	case operators.LogicalNot:
		operand, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	case operators.Negate:
		operand, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operand}, nil
	case operators.Conditional:
		cond, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		trueBranch, err := t.transform(c.Args[1])
		if err != nil {
			return nil, err
		}
		falseBranch, err := t.transform(c.Args[2])
		if err != nil {
			return nil, err
		}
		return &Ternary{Cond: cond, True: trueBranch, False: falseBranch}, nil
	case operators.Index, operators.IndexOpt:
		operand, err := t.transform(c.Args[0])
		if err != nil {
			return nil, err
		}
		key, err := t.transform(c.Args[1])
		if err != nil {
			return nil, err
		}
		return &Index{Operand: operand, Key: key, Optional: c.Function == operators.IndexOpt}, nil
	}

	var target Node
	var err error
	if c.Target != nil {
		target, err = t.transform(c.Target)
		if err != nil {
			return nil, err
		}
	}
	args := make([]Node, len(c.Args))
	for i, a := range c.Args {
		args[i], err = t.transform(a)
		if err != nil {
			return nil, err
		}
	}
	return &Call{Target: target, Function: c.Function, Args: args}, nil
}

func (t *transformer) transformCreateList(l *ast.CreateListExpression) (Node, error) {
	elems := make([]Node, len(l.Elements))
	for i, e := range l.Elements {
		n, err := t.transform(e)
		if err != nil {
			return nil, err
		}
		elems[i] = n
	}
	return &CreateList{Elements: elems, OptionalIndices: l.OptionalIndices}, nil
}

func (t *transformer) transformCreateMap(m *ast.CreateMapExpression) (Node, error) {
	entries := make([]MapEntry, len(m.Entries))
	for i, e := range m.Entries {
		k, err := t.transform(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := t.transform(e.Value)
		if err != nil {
			return nil, err
		}
		entries[i] = MapEntry{Key: k, Value: v, Optional: e.Optional}
	}
	return &CreateMap{Entries: entries}, nil
}

func (t *transformer) transformCreateStruct(s *ast.CreateStructExpression) (Node, error) {
	entries := make([]FieldEntry, len(s.Entries))
	for i, e := range s.Entries {
		v, err := t.transform(e.Initializer)
		if err != nil {
			return nil, err
		}
		entries[i] = FieldEntry{Field: e.Field, Initializer: v, Optional: e.Optional}
	}
	return &CreateStruct{MessageName: s.MessageName, Entries: entries}, nil
}

// notStrictlyFalse marks LoopCondition nodes built from `all`/`exists`
// expansions: an error probed this way counts as not
// false rather than propagating, letting the loop continue in search of a
// decisive element. The `@not_strictly_false(...)` wrapper the macro
// expansion applies is a marker only; it is unwrapped here rather than
// transformed into a callable node, since nothing evaluates it as a function.
func (t *transformer) transformComprehension(c *ast.ComprehensionExpression) (Node, error) {
	iterRange, err := t.transform(c.IterRange)
	if err != nil {
		return nil, err
	}
	accuInit, err := t.transform(c.AccuInit)
	if err != nil {
		return nil, err
	}
	notStrictlyFalse := isNotStrictlyFalseProbe(c.LoopCondition)
	loopCondition := c.LoopCondition
	if notStrictlyFalse {
		loopCondition = c.LoopCondition.(*ast.CallExpression).Args[0]
	}
	cond, err := t.transform(loopCondition)
	if err != nil {
		return nil, err
	}
	step, err := t.transform(c.LoopStep)
	if err != nil {
		return nil, err
	}
	result, err := t.transform(c.Result)
	if err != nil {
		return nil, err
	}
	return &Comprehension{
		IterVar: c.IterVar,
		IterVar2: c.IterVar2,
		IterRange: iterRange,
		AccuVar: c.AccuVar,
		AccuInit: accuInit,
		LoopCondition: cond,
		NotStrictlyFalse: notStrictlyFalse,
		LoopStep: step,
		Result: result,
	}, nil
}

// isNotStrictlyFalseProbe recognizes the `@not_strictly_false(accuVar)`
// shape the parser's all/exists macro expansion produces.
func isNotStrictlyFalseProbe(e ast.Expression) bool {
	call, ok := e.(*ast.CallExpression)
	return ok && call.Function == operators.NotStrictlyFalse
}

func freshTemp() string {
	return "__t_" + uuid.NewString()
}
