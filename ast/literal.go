package ast

import "github.com/celexpr/celc/common"

// IntLit is a signed 64-bit integer literal.
type IntLit struct {
	BaseExpression
	Value int64
}

// UintLit is an unsigned 64-bit integer literal, spelled with a trailing
// 'u'/'U' in source.
type UintLit struct {
	BaseExpression
	Value uint64
}

// DoubleLit is an IEEE-754 binary64 literal.
type DoubleLit struct {
	BaseExpression
	Value float64
}

// StringLit is a Unicode code-point-sequence literal.
type StringLit struct {
	BaseExpression
	Value string
}

// BytesLit is an octet-sequence literal.
type BytesLit struct {
	BaseExpression
	Value []byte
}

// BoolLit is a boolean literal.
type BoolLit struct {
	BaseExpression
	Value bool
}

// NullLit is the null literal.
type NullLit struct {
	BaseExpression
}

func NewIntLit(id int64, l common.Location, v int64) *IntLit {
	return &IntLit{BaseExpression{id, l}, v}
}
func NewUintLit(id int64, l common.Location, v uint64) *UintLit {
	return &UintLit{BaseExpression{id, l}, v}
}
func NewDoubleLit(id int64, l common.Location, v float64) *DoubleLit {
	return &DoubleLit{BaseExpression{id, l}, v}
}
func NewStringLit(id int64, l common.Location, v string) *StringLit {
	return &StringLit{BaseExpression{id, l}, v}
}
func NewBytesLit(id int64, l common.Location, v []byte) *BytesLit {
	return &BytesLit{BaseExpression{id, l}, v}
}
func NewBoolLit(id int64, l common.Location, v bool) *BoolLit {
	return &BoolLit{BaseExpression{id, l}, v}
}
func NewNullLit(id int64, l common.Location) *NullLit {
	return &NullLit{BaseExpression{id, l}}
}

func (e *IntLit) String() string { return ToDebugString(e) }
func (e *UintLit) String() string { return ToDebugString(e) }
func (e *DoubleLit) String() string { return ToDebugString(e) }
func (e *StringLit) String() string { return ToDebugString(e) }
func (e *BytesLit) String() string { return ToDebugString(e) }
func (e *BoolLit) String() string { return ToDebugString(e) }
func (e *NullLit) String() string { return ToDebugString(e) }

func (e *IntLit) writeDebugString(w *debugWriter) { w.appendFormat("%d", e.Value) }
func (e *UintLit) writeDebugString(w *debugWriter) { w.appendFormat("%du", e.Value) }
func (e *DoubleLit) writeDebugString(w *debugWriter) { w.appendFormat("%v", e.Value) }
func (e *StringLit) writeDebugString(w *debugWriter) { w.appendFormat("%q", e.Value) }
func (e *BytesLit) writeDebugString(w *debugWriter) { w.appendFormat("b%q", string(e.Value)) }
func (e *BoolLit) writeDebugString(w *debugWriter) {
	if e.Value {
		w.append("true")
	} else {
		w.append("false")
	}
}
func (e *NullLit) writeDebugString(w *debugWriter) { w.append("null") }
