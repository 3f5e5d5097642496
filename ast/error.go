package ast

// ErrorExpression marks a subtree that failed to parse; it lets the parser
// keep scanning for further diagnostics instead of aborting at the first
// syntax error.
type ErrorExpression struct {
	BaseExpression
}

func (e *ErrorExpression) String() string { return ToDebugString(e) }
func (e *ErrorExpression) writeDebugString(w *debugWriter) { w.append("*error*") }
