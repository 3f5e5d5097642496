package interpreter

import (
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/ir"
)

// Planner builds an Interpretable from IR, closing over the function
// dispatcher a compiled program uses for every call.
type Planner struct {
	disp *Dispatcher
}

// NewPlanner returns a Planner bound to disp.
func NewPlanner(disp *Dispatcher) *Planner {
	return &Planner{disp: disp}
}

// Plan wraps root for repeated evaluation. Planning does no transformation
// of its own; it exists so a compiled program holds a closure rather than
// a bare IR node plus a dispatcher it must remember to pass along.
func (p *Planner) Plan(root ir.Node) Interpretable {
	return &treeWalker{root: root, disp: p.disp}
}

type treeWalker struct {
	root ir.Node
	disp *Dispatcher
}

func (t *treeWalker) Eval(act Activation) ref.Val {
	return evalNode(t.root, act, t.disp)
}
