package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/celexpr/celc/ir"
)

func writeLiteral(b *strings.Builder, l *ir.Literal) {
	switch v := l.Value.(type) {
	case nil:
		b.WriteString("Null")
	case string:
		b.WriteString(strconv.Quote(v))
	case []byte:
		fmt.Fprintf(b, "Bytes(%q)", v)
	case bool:
		fmt.Fprintf(b, "%v", v)
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func writeSelect(b *strings.Builder, s *ir.Select, depth int) {
	if s.TestOnly {
		b.WriteString("has(")
		writeNode(b, s.Operand, depth)
		fmt.Fprintf(b, ", %q)", s.Field)
		return
	}
	op := "select"
	if s.Optional {
		op = "optSelect"
	}
	fmt.Fprintf(b, "%s(", op)
	writeNode(b, s.Operand, depth)
	fmt.Fprintf(b, ", %q)", s.Field)
}

func writeIndex(b *strings.Builder, idx *ir.Index, depth int) {
	op := "index"
	if idx.Optional {
		op = "optIndex"
	}
	fmt.Fprintf(b, "%s(", op)
	writeNode(b, idx.Operand, depth)
	b.WriteString(", ")
	writeNode(b, idx.Key, depth)
	b.WriteString(")")
}

func writeCall(b *strings.Builder, c *ir.Call, depth int) {
	if c.Target != nil {
		writeNode(b, c.Target, depth)
		b.WriteString(".")
	}
	fmt.Fprintf(b, "%s(", sanitizeFnName(c.Function))
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNode(b, a, depth)
	}
	b.WriteString(")")
}

// operatorNames maps the punctuation-spelled operator tokens (see the
// operators package) to an identifier-safe rendering; everything else
// (ordinary function names, extension-namespace names like
// "optional.of") is already identifier-safe or close enough that a plain
// dot-to-underscore rewrite suffices.
var operatorNames = map[string]string{
	"_==_": "eq", "_!=_": "ne", "_<_": "lt", "_<=_": "le", "_>_": "gt", "_>=_": "ge",
	"_+_": "add", "_-_": "sub", "_*_": "mul", "_/_": "div", "_%_": "mod",
	"@in": "in",
}

// sanitizeFnName renders a call's function name as a bare identifier-safe
// call name, since the emitted text is Go source and punctuation-named
// identifiers would not parse.
func sanitizeFnName(fn string) string {
	if name, ok := operatorNames[fn]; ok {
		return name
	}
	replacer := strings.NewReplacer(".", "_")
	return replacer.Replace(fn)
}

func writeCreateList(b *strings.Builder, l *ir.CreateList, depth int) {
	b.WriteString("list(")
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(l.OptionalIndices) && l.OptionalIndices[i] {
			b.WriteString("?")
		}
		writeNode(b, e, depth)
	}
	b.WriteString(")")
}

func writeCreateMap(b *strings.Builder, m *ir.CreateMap, depth int) {
	b.WriteString("newMap(")
	for i, e := range m.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if e.Optional {
			b.WriteString("?")
		}
		b.WriteString("entry(")
		writeNode(b, e.Key, depth)
		b.WriteString(": ")
		writeNode(b, e.Value, depth)
		b.WriteString(")")
	}
	b.WriteString(")")
}

func writeCreateStruct(b *strings.Builder, s *ir.CreateStruct, depth int) {
	fmt.Fprintf(b, "newStruct(%q", s.MessageName)
	for _, e := range s.Entries {
		b.WriteString(", ")
		if e.Optional {
			b.WriteString("?")
		}
		fmt.Fprintf(b, "%s: ", e.Field)
		writeNode(b, e.Initializer, depth)
	}
	b.WriteString(")")
}

func writeComprehension(b *strings.Builder, c *ir.Comprehension, depth int) {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(b, "func() Value {\n%saccu := ", indent)
	writeNode(b, c.AccuInit, depth+1)
	fmt.Fprintf(b, "\n%sfor %s", indent, c.IterVar)
	if c.IterVar2 != "" {
		fmt.Fprintf(b, ", %s", c.IterVar2)
	}
	b.WriteString(" := range ")
	writeNode(b, c.IterRange, depth+1)
	b.WriteString(" {\n")
	fmt.Fprintf(b, "%s\tif ", indent)
	if c.NotStrictlyFalse {
		b.WriteString("notStrictlyFalse(")
		writeNode(b, c.LoopCondition, depth+1)
		b.WriteString(")")
	} else {
		writeNode(b, c.LoopCondition, depth+1)
	}
	b.WriteString(" == false {\n")
	fmt.Fprintf(b, "%s\t\tbreak\n%s\t}\n", indent, indent)
	fmt.Fprintf(b, "%s\taccu = ", indent)
	writeNode(b, c.LoopStep, depth+1)
	b.WriteString("\n")
	fmt.Fprintf(b, "%s}\n%sreturn ", indent, indent)
	writeNode(b, c.Result, depth+1)
	fmt.Fprintf(b, "\n%s}()", strings.Repeat("\t", depth-1))
}
