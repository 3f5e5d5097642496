package ext

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

// runes normalizes s to NFC and folds full/half-width variants before
// slicing by code point, so charAt/indexOf/substring agree on what a
// "character" is regardless of composed-vs-decomposed or width-variant
// input.
func runes(s string) []rune {
	return []rune(width.Fold.String(norm.NFC.String(s)))
}

// Strings registers the string-manipulation instance methods and the
// strings.join/quote/format namespace functions.
func Strings(d *interpreter.Dispatcher) {
	strArg := func(v ref.Val) (string, bool) {
		s, ok := v.(types.String)
		return string(s), ok
	}

	d.Register("charAt", true, 1, func(target ref.Val, args []ref.Val) ref.Val {
		s, ok := strArg(target)
		if !ok {
			return types.NewErr("charAt() unsupported on type '%s'", target.Type().TypeName())
		}
		i, ok := args[0].(types.Int)
		if !ok {
			return types.NewErr("charAt() requires an int index")
		}
		rs := runes(s)
		if int64(i) < 0 || int64(i) > int64(len(rs)) {
			return types.NewErr("charAt() index %d out of range", i)
		}
		if int64(i) == int64(len(rs)) {
			return types.String("")
		}
		return types.String(rs[i])
	})

	indexOf := func(last bool) interpreter.Function {
		return func(target ref.Val, args []ref.Val) ref.Val {
			s, ok := strArg(target)
			if !ok {
				return types.NewErr("indexOf() unsupported on type '%s'", target.Type().TypeName())
			}
			sub, ok := strArg(args[0])
			if !ok {
				return types.NewErr("indexOf() requires a string argument")
			}
			rs, subrs := runes(s), runes(sub)
			start := 0
			if len(args) > 1 {
				iv, ok := args[1].(types.Int)
				if !ok {
					return types.NewErr("indexOf() start must be an int")
				}
				start = int(iv)
			}
			if start < 0 || start > len(rs) {
				return types.NewErr("indexOf() start %d out of range", start)
			}
			idx := findRunes(rs, subrs, start, last)
			return types.Int(idx)
		}
	}
	d.Register("indexOf", true, 1, indexOf(false))
	d.Register("indexOf", true, 2, indexOf(false))
	d.Register("lastIndexOf", true, 1, indexOf(true))
	d.Register("lastIndexOf", true, 2, indexOf(true))

	substring := func(target ref.Val, args []ref.Val) ref.Val {
		s, ok := strArg(target)
		if !ok {
			return types.NewErr("substring() unsupported on type '%s'", target.Type().TypeName())
		}
		rs := runes(s)
		start, ok := args[0].(types.Int)
		if !ok {
			return types.NewErr("substring() start must be an int")
		}
		end := types.Int(len(rs))
		if len(args) > 1 {
			e, ok := args[1].(types.Int)
			if !ok {
				return types.NewErr("substring() end must be an int")
			}
			end = e
		}
		if start < 0 || end > types.Int(len(rs)) || start > end {
			return types.NewErr("substring(%d, %d) out of range", start, end)
		}
		return types.String(rs[start:end])
	}
	d.Register("substring", true, 1, substring)
	d.Register("substring", true, 2, substring)

	d.Register("trim", true, 0, func(target ref.Val, _ []ref.Val) ref.Val {
		s, ok := strArg(target)
		if !ok {
			return types.NewErr("trim() unsupported on type '%s'", target.Type().TypeName())
		}
		return types.String(strings.TrimFunc(s, unicode.IsSpace))
	})

	replace := func(target ref.Val, args []ref.Val) ref.Val {
		s, ok := strArg(target)
		if !ok {
			return types.NewErr("replace() unsupported on type '%s'", target.Type().TypeName())
		}
		old, ok := strArg(args[0])
		if !ok {
			return types.NewErr("replace() old must be a string")
		}
		newStr, ok := strArg(args[1])
		if !ok {
			return types.NewErr("replace() new must be a string")
		}
		count := -1
		if len(args) > 2 {
			c, ok := args[2].(types.Int)
			if !ok {
				return types.NewErr("replace() count must be an int")
			}
			if c >= 0 {
				count = int(c)
			}
		}
		return types.String(strings.Replace(s, old, newStr, count))
	}
	d.Register("replace", true, 2, replace)
	d.Register("replace", true, 3, replace)

	split := func(target ref.Val, args []ref.Val) ref.Val {
		s, ok := strArg(target)
		if !ok {
			return types.NewErr("split() unsupported on type '%s'", target.Type().TypeName())
		}
		sep, ok := strArg(args[0])
		if !ok {
			return types.NewErr("split() separator must be a string")
		}
		var parts []string
		if len(args) > 1 {
			limit, ok := args[1].(types.Int)
			if !ok {
				return types.NewErr("split() limit must be an int")
			}
			parts = strings.SplitN(s, sep, int(limit))
		} else {
			parts = strings.Split(s, sep)
		}
		elems := make([]ref.Val, len(parts))
		for i, p := range parts {
			elems[i] = types.String(p)
		}
		return types.NewList(elems...)
	}
	d.Register("split", true, 1, split)
	d.Register("split", true, 2, split)

	d.Register("strings.join", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		return joinList(args[0], "")
	})
	d.Register("strings.join", false, 2, func(_ ref.Val, args []ref.Val) ref.Val {
		sep, ok := strArg(args[1])
		if !ok {
			return types.NewErr("strings.join() separator must be a string")
		}
		return joinList(args[0], sep)
	})

	d.Register("strings.quote", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		s, ok := strArg(args[0])
		if !ok {
			return types.NewErr("strings.quote() requires a string")
		}
		return types.String(strconvQuote(s))
	})

	d.Register("strings.format", false, 2, func(_ ref.Val, args []ref.Val) ref.Val {
		format, ok := strArg(args[0])
		if !ok {
			return types.NewErr("strings.format() requires a format string")
		}
		list, ok := args[1].(*types.List)
		if !ok {
			return types.NewErr("strings.format() requires a list of arguments")
		}
		return formatString(format, list)
	})
}

// findRunes mimics strings.Index/LastIndex over a rune slice, searching
// forward from start; last reverses the scan direction.
func findRunes(rs, sub []rune, start int, last bool) int {
	if len(sub) == 0 {
		if last {
			return len(rs)
		}
		return start
	}
	match := func(at int) bool {
		if at+len(sub) > len(rs) {
			return false
		}
		for i, r := range sub {
			if rs[at+i] != r {
				return false
			}
		}
		return true
	}
	if last {
		for i := len(rs) - len(sub); i >= start; i-- {
			if match(i) {
				return i
			}
		}
		return -1
	}
	for i := start; i <= len(rs)-len(sub); i++ {
		if match(i) {
			return i
		}
	}
	return -1
}

func joinList(v ref.Val, sep string) ref.Val {
	list, ok := v.(*types.List)
	if !ok {
		return types.NewErr("strings.join() requires a list, got '%s'", v.Type().TypeName())
	}
	it := list.Iterator()
	var parts []string
	for it.HasNext() {
		s, ok := it.Next().(types.String)
		if !ok {
			return types.NewErr("strings.join() requires a list of strings")
		}
		parts = append(parts, string(s))
	}
	return types.String(strings.Join(parts, sep))
}

func strconvQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatString implements strings.format's Go-compatible verb subset
// (%s %d %f %e %b %o %x %X); %f relies on Go's strconv round-to-even
// rounding, matching the banker's rounding CEL requires.
func formatString(format string, args *types.List) ref.Val {
	it := args.Iterator()
	var native []interface{}
	for it.HasNext() {
		v := it.Next()
		if types.IsError(v) {
			return v
		}
		native = append(native, v.Value())
	}
	// CEL's format() verb set (%s %d %f %e %b %o %x %X) maps directly onto
	// fmt's own, including Go's round-to-even %f, which matches the
	// banker's rounding CEL requires.
	return types.String(fmt.Sprintf(format, native...))
}
