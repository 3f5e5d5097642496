package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/ir"
	"github.com/celexpr/celc/operators"
)

func newActivation(t *testing.T, raw map[string]interface{}) *BindingMap {
	t.Helper()
	b, err := NewBindingMap(raw)
	require.NoError(t, err)
	return b
}

func eval(t *testing.T, n ir.Node, bindings map[string]interface{}) interface{} {
	t.Helper()
	act := newActivation(t, bindings)
	disp := NewDefaultDispatcher()
	result := evalNode(n, act, disp)
	require.False(t, types.IsError(result), "unexpected error: %v", result)
	return result
}

func TestEvalLiteralArithmetic(t *testing.T) {
	n := &ir.Call{
		Function: operators.Add,
		Args: []ir.Node{
			&ir.Literal{Value: int64(1)},
			&ir.Call{
				Function: operators.Multiply,
				Args:     []ir.Node{&ir.Literal{Value: int64(2)}, &ir.Literal{Value: int64(3)}},
			},
		},
	}
	assert.Equal(t, types.Int(7), eval(t, n, nil))
}

func TestEvalQualifiedIdentResolvesLongestPrefix(t *testing.T) {
	n := &ir.QualifiedIdent{Candidates: []string{"x.y", "y"}}
	assert.Equal(t, types.Int(41), eval(t, n, map[string]interface{}{"x.y": int64(41)}))
}

func TestEvalDivideByZeroIsErrorSentinel(t *testing.T) {
	n := &ir.Call{
		Function: operators.Divide,
		Args:     []ir.Node{&ir.Literal{Value: int64(1)}, &ir.Literal{Value: int64(0)}},
	}
	act := newActivation(t, nil)
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.True(t, types.IsError(result))
}

func TestEvalLogicalAndShortCircuitsOnFalseEvenWithErrorOperand(t *testing.T) {
	n := &ir.LogicalAnd{
		Left:  &ir.Literal{Value: false},
		Right: &ir.Call{Function: "no_such_fn", Args: nil},
	}
	act := newActivation(t, nil)
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.Equal(t, types.False, result)
}

func TestEvalLogicalOrShortCircuitsOnTrueEvenWithErrorOperand(t *testing.T) {
	n := &ir.LogicalOr{
		Left:  &ir.Literal{Value: true},
		Right: &ir.Call{Function: "no_such_fn", Args: nil},
	}
	act := newActivation(t, nil)
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.Equal(t, types.True, result)
}

func TestEvalTernaryOnlyEvaluatesTakenBranch(t *testing.T) {
	n := &ir.Ternary{
		Cond:  &ir.Literal{Value: true},
		True:  &ir.Literal{Value: int64(1)},
		False: &ir.Call{Function: "no_such_fn", Args: nil},
	}
	assert.Equal(t, types.Int(1), eval(t, n, nil))
}

func TestEvalRelationalNaNIsFalseNotError(t *testing.T) {
	n := &ir.Call{
		Function: operators.Less,
		Args: []ir.Node{
			&ir.Literal{Value: 0.0},
			&ir.Call{Function: operators.Divide, Args: []ir.Node{&ir.Literal{Value: 0.0}, &ir.Literal{Value: 0.0}}},
		},
	}
	act := newActivation(t, nil)
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.Equal(t, types.False, result)
}

func TestEvalCreateListDropsEmptyOptionalEntry(t *testing.T) {
	n := &ir.CreateList{
		Elements: []ir.Node{
			&ir.Call{Function: "optional.none", Args: nil},
			&ir.Literal{Value: int64(1)},
		},
		OptionalIndices: []bool{true, false},
	}
	disp := NewDefaultDispatcher()
	disp.Register("optional.none", false, 0, func(ref.Val, []ref.Val) ref.Val { return types.OptionalNone })
	act := newActivation(t, nil)
	result := evalNode(n, act, disp).(*types.List)
	assert.Equal(t, types.Int(1), result.Size())
}

func TestEvalCreateMapRejectsDoubleKey(t *testing.T) {
	n := &ir.CreateMap{
		Entries: []ir.MapEntry{{Key: &ir.Literal{Value: 1.5}, Value: &ir.Literal{Value: int64(1)}}},
	}
	act := newActivation(t, nil)
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.True(t, types.IsError(result))
}

func TestEvalComprehensionSumsList(t *testing.T) {
	n := &ir.Comprehension{
		IterVar:   "x",
		AccuVar:   "__result__",
		IterRange: &ir.CreateList{Elements: []ir.Node{&ir.Literal{Value: int64(1)}, &ir.Literal{Value: int64(2)}, &ir.Literal{Value: int64(3)}}},
		AccuInit:  &ir.Literal{Value: int64(0)},
		LoopCondition: &ir.Literal{Value: true},
		LoopStep: &ir.Call{
			Function: operators.Add,
			Args:     []ir.Node{&ir.QualifiedIdent{Candidates: []string{"__result__"}}, &ir.QualifiedIdent{Candidates: []string{"x"}}},
		},
		Result: &ir.QualifiedIdent{Candidates: []string{"__result__"}},
	}
	assert.Equal(t, types.Int(6), eval(t, n, nil))
}

func TestEvalComprehensionNotStrictlyFalseStopsAfterDecisiveElement(t *testing.T) {
	// exists-style: the first element sets the accumulator to true, so the
	// negated probe is false and the loop stops before the second element.
	n := &ir.Comprehension{
		IterVar:   "x",
		AccuVar:   "__result__",
		IterRange: &ir.CreateList{Elements: []ir.Node{&ir.Literal{Value: int64(1)}, &ir.Literal{Value: int64(2)}}},
		AccuInit:  &ir.Literal{Value: false},
		NotStrictlyFalse: true,
		LoopCondition:    &ir.Not{Operand: &ir.QualifiedIdent{Candidates: []string{"__result__"}}},
		LoopStep: &ir.Call{
			Function: operators.Equals,
			Args:     []ir.Node{&ir.QualifiedIdent{Candidates: []string{"x"}}, &ir.Literal{Value: int64(1)}},
		},
		Result: &ir.QualifiedIdent{Candidates: []string{"__result__"}},
	}
	assert.Equal(t, types.True, eval(t, n, nil))
}

func TestEvalSelectHasOnMissingFieldIsFalse(t *testing.T) {
	n := &ir.Select{
		Operand:  &ir.QualifiedIdent{Candidates: []string{"m"}},
		Field:    "missing",
		TestOnly: true,
	}
	act := newActivation(t, map[string]interface{}{"m": map[string]interface{}{"present": int64(1)}})
	result := evalNode(n, act, NewDefaultDispatcher())
	assert.Equal(t, types.False, result)
}

func TestEvalIndexOptionalOnMissingKeyIsOptionalNone(t *testing.T) {
	n := &ir.Index{
		Operand:  &ir.QualifiedIdent{Candidates: []string{"m"}},
		Key:      &ir.Literal{Value: "missing"},
		Optional: true,
	}
	act := newActivation(t, map[string]interface{}{"m": map[string]interface{}{"present": int64(1)}})
	result := evalNode(n, act, NewDefaultDispatcher())
	opt, ok := result.(*types.Optional)
	require.True(t, ok)
	assert.False(t, opt.HasValue())
}
