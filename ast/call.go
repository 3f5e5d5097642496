package ast

import "github.com/celexpr/celc/common"

// CallExpression is either an operator application or a function/method
// call. Target is non-nil only for instance-style (member) calls.
type CallExpression struct {
	BaseExpression

	Target Expression
	Function string
	Args []Expression
}

func NewCallFunction(id int64, l common.Location, function string, args ...Expression) *CallExpression {
	return &CallExpression{BaseExpression: BaseExpression{id, l}, Function: function, Args: args}
}

func NewCallMethod(id int64, l common.Location, function string, target Expression, args ...Expression) *CallExpression {
	return &CallExpression{BaseExpression: BaseExpression{id, l}, Function: function, Target: target, Args: args}
}

func (e *CallExpression) String() string { return ToDebugString(e) }

func (e *CallExpression) writeDebugString(w *debugWriter) {
	if e.Target != nil {
		w.appendExpression(e.Target)
		w.append(".")
	}
	w.append(e.Function)
	w.append("(")
	for i, arg := range e.Args {
		if i > 0 {
			w.append(", ")
		}
		w.appendExpression(arg)
	}
	w.append(")")
}
