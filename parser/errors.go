package parser

import "github.com/celexpr/celc/common"

// parseErrors accumulates diagnostics during a single parse, matching the
// parser's "keep scanning after an error" recovery policy:
// a syntax error produces an ErrorExpression node rather than aborting.
type parseErrors struct {
	*common.Errors
}

func newParseErrors(src common.Source) *parseErrors {
	return &parseErrors{Errors: common.NewErrors(src)}
}

func (e *parseErrors) syntaxError(l common.Location, format string, args ...interface{}) {
	e.ReportError(l, format, args...)
}

func (e *parseErrors) invalidHasArgument(l common.Location) {
	e.ReportError(l, "has() argument must be a field selection, e.g. has(m.f)")
}

func (e *parseErrors) argumentIsNotIdent(l common.Location) {
	e.ReportError(l, "argument must be a simple identifier")
}

func (e *parseErrors) reservedIdentifier(l common.Location, name string) {
	e.ReportError(l, "reserved identifier: %s", name)
}
