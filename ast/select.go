package ast

import "github.com/celexpr/celc/common"

// SelectExpression is a field selection `operand.field`. TestOnly is set
// when the select was synthesized by expanding has(operand.field).
type SelectExpression struct {
	BaseExpression

	Operand Expression
	Field string
	TestOnly bool

	// Optional is true for the `?.` optional-chaining select operator.
	Optional bool
}

func NewSelect(id int64, l common.Location, operand Expression, field string, testOnly bool) *SelectExpression {
	return &SelectExpression{BaseExpression: BaseExpression{id, l}, Operand: operand, Field: field, TestOnly: testOnly}
}

func NewOptionalSelect(id int64, l common.Location, operand Expression, field string) *SelectExpression {
	return &SelectExpression{BaseExpression: BaseExpression{id, l}, Operand: operand, Field: field, Optional: true}
}

func (e *SelectExpression) String() string { return ToDebugString(e) }

func (e *SelectExpression) writeDebugString(w *debugWriter) {
	w.appendExpression(e.Operand)
	if e.Optional {
		w.append("?.")
	} else {
		w.append(".")
	}
	w.append(e.Field)
	if e.TestOnly {
		w.append("~test-only~")
	}
}
