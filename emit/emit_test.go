package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/ir"
	"github.com/celexpr/celc/operators"
)

func TestRenderLiteralAndCall(t *testing.T) {
	root := &ir.Call{
		Function: operators.Add,
		Args: []ir.Node{
			&ir.Literal{Value: int64(1)},
			&ir.Literal{Value: int64(2)},
		},
	}
	out := Render(root)
	assert.Contains(t, out, "func evaluate(bindings Bindings) (Value, error)")
	assert.Contains(t, out, "add(1, 2)")
}

func TestRenderQualifiedIdent(t *testing.T) {
	root := &ir.QualifiedIdent{Candidates: []string{"a.b", "b"}}
	out := Render(root)
	assert.Contains(t, out, `resolve(bindings, []string{"a.b", "b"})`)
}

func TestRenderSelectAndIndex(t *testing.T) {
	sel := &ir.Select{Operand: &ir.QualifiedIdent{Candidates: []string{"x"}}, Field: "y"}
	out := Render(sel)
	assert.Contains(t, out, `select(`)
	assert.Contains(t, out, `"y"`)

	idx := &ir.Index{Operand: &ir.QualifiedIdent{Candidates: []string{"x"}}, Key: &ir.Literal{Value: int64(0)}}
	out = Render(idx)
	assert.Contains(t, out, "index(")
}

func TestRenderLogicalAndUsesTempNames(t *testing.T) {
	root := &ir.LogicalAnd{
		Left:  &ir.Literal{Value: true},
		Right: &ir.Literal{Value: false},
		TempL: "__t_a",
		TempR: "__t_b",
	}
	out := Render(root)
	assert.Contains(t, out, "__t_a := true")
	assert.Contains(t, out, "__t_b := false")
	assert.Contains(t, out, "__t_a && __t_b")
}

func TestRenderComprehension(t *testing.T) {
	root := &ir.Comprehension{
		IterVar:   "x",
		IterRange: &ir.QualifiedIdent{Candidates: []string{"items"}},
		AccuVar:   "__result__",
		AccuInit:  &ir.Literal{Value: int64(0)},
		LoopCondition: &ir.Literal{Value: true},
		LoopStep:      &ir.QualifiedIdent{Candidates: []string{"x"}},
		Result:        &ir.QualifiedIdent{Candidates: []string{"__result__"}},
	}
	out := Render(root)
	assert.True(t, strings.Contains(out, "for x := range"))
	assert.Contains(t, out, "accu := 0")
}

func TestRenderErrorNode(t *testing.T) {
	out := Render(&ir.ErrorNode{})
	assert.Contains(t, out, "errVal")
}
