package common

import (
	"fmt"
	"strings"
)

// Error is a single diagnostic anchored to a source location.
type Error struct {
	Location Location
	Message string
}

// ToDisplayString renders the error with a source snippet and a caret
// pointing at the offending column, when the source is available.
func (e *Error) ToDisplayString(src Source) string {
	name := "<input>"
	if src != nil {
		name = src.Name()
	}
	result := fmt.Sprintf("ERROR: %s:%d:%d: %s", name, e.Location.Line(), e.Location.Column(), e.Message)
	if src == nil {
		return result
	}
	if snippet, found := src.Snippet(e.Location.Line()); found {
		result += "\n | " + snippet
		result += "\n | " + strings.Repeat(".", e.Location.Column()) + "^"
	}
	return result
}

// Errors accumulates diagnostics produced while processing a single source.
type Errors struct {
	src Source
	errors []*Error
}

// NewErrors returns an empty collector bound to src (used for snippet
// rendering; may be nil).
func NewErrors(src Source) *Errors {
	return &Errors{src: src}
}

// ReportError appends a formatted diagnostic at location l.
func (e *Errors) ReportError(l Location, format string, args ...interface{}) {
	e.errors = append(e.errors, &Error{Location: l, Message: fmt.Sprintf(format, args...)})
}

// GetErrors returns the accumulated diagnostics in report order.
func (e *Errors) GetErrors() []*Error {
	return e.errors
}

// Empty reports whether no diagnostic has been recorded.
func (e *Errors) Empty() bool {
	return len(e.errors) == 0
}

func (e *Errors) String() string {
	parts := make([]string, len(e.errors))
	for i, err := range e.errors {
		parts[i] = err.ToDisplayString(e.src)
	}
	return strings.Join(parts, "\n")
}
