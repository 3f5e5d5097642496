package ast

import "github.com/celexpr/celc/common"

// IdentExpression is a bare identifier reference.
type IdentExpression struct {
	BaseExpression
	Name string
}

func NewIdent(id int64, l common.Location, name string) *IdentExpression {
	return &IdentExpression{BaseExpression{id, l}, name}
}

func (e *IdentExpression) String() string { return ToDebugString(e) }

func (e *IdentExpression) writeDebugString(w *debugWriter) { w.append(e.Name) }
