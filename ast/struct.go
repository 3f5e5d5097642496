package ast

import "github.com/celexpr/celc/common"

// CreateStructExpression is a typed struct literal `T{field: value,...}`.
type CreateStructExpression struct {
	BaseExpression
	MessageName string
	Entries []*FieldEntry
}

// FieldEntry is one field initializer of a struct literal.
type FieldEntry struct {
	BaseExpression
	Field string
	Initializer Expression
	Optional bool
}

func NewCreateStruct(id int64, l common.Location, messageName string, entries ...*FieldEntry) *CreateStructExpression {
	return &CreateStructExpression{BaseExpression: BaseExpression{id, l}, MessageName: messageName, Entries: entries}
}

func NewFieldEntry(id int64, l common.Location, field string, initializer Expression, optional bool) *FieldEntry {
	return &FieldEntry{BaseExpression: BaseExpression{id, l}, Field: field, Initializer: initializer, Optional: optional}
}

func (e *CreateStructExpression) String() string { return ToDebugString(e) }

func (e *CreateStructExpression) writeDebugString(w *debugWriter) {
	w.append(e.MessageName)
	w.append("{")
	for i, f := range e.Entries {
		if i > 0 {
			w.append(", ")
		}
		w.appendExpression(f)
	}
	w.append("}")
}

func (e *FieldEntry) String() string { return ToDebugString(e) }

func (e *FieldEntry) writeDebugString(w *debugWriter) {
	if e.Optional {
		w.append("?")
	}
	w.append(e.Field)
	w.append(": ")
	w.appendExpression(e.Initializer)
}
