// Package emit renders the IR produced by ir.Transform into Go source text.
// The rendering is diagnostic only (CompileResult.Source): the expression
// actually runs by tree-walking the IR through the interpreter package, per
// the emitted-code trade-off spec.md's design notes sanction for a host
// with no runtime compile-and-load primitive. Render never fails — an IR
// shape it does not recognize is rendered as a commented-out placeholder
// rather than returned as an error, since a diagnostic string is never
// itself on the error path of a compile.
package emit

import (
	"strings"
	"text/template"

	"github.com/celexpr/celc/ir"
)

// Render produces a Go source rendering of root: a single expression
// function body whose shape mirrors the IR tree.
func Render(root ir.Node) string {
	var b strings.Builder
	b.WriteString("func evaluate(bindings Bindings) (Value, error) {\n\treturn ")
	writeNode(&b, root, 1)
	b.WriteString("\n}\n")
	return b.String()
}

func writeNode(b *strings.Builder, n ir.Node, depth int) {
	switch v := n.(type) {
	case *ir.Literal:
		writeLiteral(b, v)
	case *ir.QualifiedIdent:
		b.WriteString("resolve(bindings, ")
		writeStringSlice(b, v.Candidates)
		b.WriteString(")")
	case *ir.Select:
		writeSelect(b, v, depth)
	case *ir.Index:
		writeIndex(b, v, depth)
	case *ir.Call:
		writeCall(b, v, depth)
	case *ir.LogicalAnd:
		tmpl.Execute(b, andOrData{TempL: v.TempL, TempR: v.TempR, Op: "&&", Left: renderInline(v.Left, depth), Right: renderInline(v.Right, depth)})
	case *ir.LogicalOr:
		tmpl.Execute(b, andOrData{TempL: v.TempL, TempR: v.TempR, Op: "||", Left: renderInline(v.Left, depth), Right: renderInline(v.Right, depth)})
	case *ir.Not:
		b.WriteString("!(")
		writeNode(b, v.Operand, depth)
		b.WriteString(")")
	case *ir.Negate:
		b.WriteString("-(")
		writeNode(b, v.Operand, depth)
		b.WriteString(")")
	case *ir.Ternary:
		b.WriteString("cond(")
		writeNode(b, v.Cond, depth)
		b.WriteString(", ")
		writeNode(b, v.True, depth)
		b.WriteString(", ")
		writeNode(b, v.False, depth)
		b.WriteString(")")
	case *ir.CreateList:
		writeCreateList(b, v, depth)
	case *ir.CreateMap:
		writeCreateMap(b, v, depth)
	case *ir.CreateStruct:
		writeCreateStruct(b, v, depth)
	case *ir.Comprehension:
		writeComprehension(b, v, depth)
	case *ir.ErrorNode:
		b.WriteString("/* error node */ errVal")
	default:
		b.WriteString("/* unrenderable node */ nil")
	}
}

func renderInline(n ir.Node, depth int) string {
	var b strings.Builder
	writeNode(&b, n, depth)
	return b.String()
}

func writeStringSlice(b *strings.Builder, ss []string) {
	b.WriteString("[]string{")
	for i, s := range ss {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"`)
		b.WriteString(s)
		b.WriteString(`"`)
	}
	b.WriteString("}")
}

type andOrData struct {
	TempL, TempR, Op, Left, Right string
}

var tmpl = template.Must(template.New("andor").Parse(
	`func() Value {
{{.TempL}} := {{.Left}}
{{.TempR}} := {{.Right}}
return {{.TempL}} {{.Op}} {{.TempR}} // error-absorbing per the commutative table
}()`))
