package ast

import "github.com/celexpr/celc/common"

// CreateListExpression is a list literal. OptionalIndices records which
// positional entries were written with the `?value` optional-entry prefix;
// such entries are omitted from the constructed list when the value is
// `optional.none()`.
type CreateListExpression struct {
	BaseExpression

	Elements []Expression
	OptionalIndices []bool
}

func NewCreateList(id int64, l common.Location, elements ...Expression) *CreateListExpression {
	return &CreateListExpression{BaseExpression: BaseExpression{id, l}, Elements: elements, OptionalIndices: make([]bool, len(elements))}
}

func (e *CreateListExpression) String() string { return ToDebugString(e) }

func (e *CreateListExpression) writeDebugString(w *debugWriter) {
	w.append("[")
	for i, elem := range e.Elements {
		if i > 0 {
			w.append(", ")
		}
		if i < len(e.OptionalIndices) && e.OptionalIndices[i] {
			w.append("?")
		}
		w.appendExpression(elem)
	}
	w.append("]")
}
