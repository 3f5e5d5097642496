package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// ToDebugString renders a pretty-printed form of an expression tree. It is
// used by compiler diagnostics and tests, not by the compiled program.
func ToDebugString(e Expression) string {
	w := newDebugWriter()
	e.writeDebugString(w)
	return w.String()
}

type debugWriter struct {
	buf bytes.Buffer
	indent int
	lineStart bool
}

func newDebugWriter() *debugWriter {
	return &debugWriter{lineStart: true}
}

func (w *debugWriter) append(s string) {
	if w.lineStart {
		w.lineStart = false
		w.buf.WriteString(strings.Repeat(" ", w.indent))
	}
	w.buf.WriteString(s)
}

func (w *debugWriter) appendFormat(f string, args ...interface{}) {
	w.append(fmt.Sprintf(f, args...))
}

func (w *debugWriter) appendExpression(e Expression) { e.writeDebugString(w) }

func (w *debugWriter) appendLine() {
	w.buf.WriteString("\n")
	w.lineStart = true
}

func (w *debugWriter) addIndent() { w.indent++ }
func (w *debugWriter) removeIndent() { w.indent-- }
func (w *debugWriter) String() string { return w.buf.String() }
