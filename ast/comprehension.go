package ast

import "github.com/celexpr/celc/common"

// ComprehensionExpression is CEL's single iteration primitive; every
// iteration macro (all, exists, exists_one, map, filter) lowers to one of
// these. IterVar2 is non-empty only for the two-variable macro forms, where
// IterVar binds the index/key and IterVar2 binds the element/value.
type ComprehensionExpression struct {
	BaseExpression

	IterVar string
	IterVar2 string
	IterRange Expression
	AccuVar string
	AccuInit Expression
	LoopCondition Expression
	LoopStep Expression
	Result Expression
}

func NewComprehension(id int64, l common.Location, iterVar string, iterRange Expression, accuVar string,
	accuInit, condition, step, result Expression) *ComprehensionExpression {
	return &ComprehensionExpression{
		BaseExpression: BaseExpression{id, l},
		IterVar: iterVar,
		IterRange: iterRange,
		AccuVar: accuVar,
		AccuInit: accuInit,
		LoopCondition: condition,
		LoopStep: step,
		Result: result,
	}
}

// NewComprehension2 builds the two-variable (key, value) form.
func NewComprehension2(id int64, l common.Location, iterVar, iterVar2 string, iterRange Expression, accuVar string,
	accuInit, condition, step, result Expression) *ComprehensionExpression {
	c := NewComprehension(id, l, iterVar, iterRange, accuVar, accuInit, condition, step, result)
	c.IterVar2 = iterVar2
	return c
}

func (e *ComprehensionExpression) String() string { return ToDebugString(e) }

func (e *ComprehensionExpression) writeDebugString(w *debugWriter) {
	w.append("__comprehension__(")
	w.addIndent()
	w.appendLine()
	w.append(e.IterVar)
	if e.IterVar2 != "" {
		w.append(", ")
		w.append(e.IterVar2)
	}
	w.append(",")
	w.appendLine()
	w.appendExpression(e.IterRange)
	w.append(",")
	w.appendLine()
	w.append(e.AccuVar)
	w.append(",")
	w.appendLine()
	w.appendExpression(e.AccuInit)
	w.append(",")
	w.appendLine()
	w.appendExpression(e.LoopCondition)
	w.append(",")
	w.appendLine()
	w.appendExpression(e.LoopStep)
	w.append(",")
	w.appendLine()
	w.appendExpression(e.Result)
	w.removeIndent()
	w.appendLine()
	w.append(")")
}
