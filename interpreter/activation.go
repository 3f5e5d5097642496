// Package interpreter tree-walks the IR produced by the ir package against
// a runtime activation, implementing the evaluate half of the compile/
// evaluate pipeline. The emitter's Go source is diagnostic only; this is
// the engine that actually runs a compiled program.
package interpreter

import (
	"strings"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

// Activation resolves a qualified dotted-path name to a value, implementing
// the longest-prefix-wins protocol of CEL identifier resolution.
type Activation interface {
	// ResolveQualified returns the value for the longest prefix of name
	// found in the binding map, along with the remaining field path to
	// select off of it. If name itself is bound exactly, remaining is nil.
	ResolveQualified(name string) (val ref.Val, remaining []string, found bool)
}

// BindingMap is an associative structure from dotted-path strings to
// values. Keys may be simple identifiers or already-qualified paths.
type BindingMap struct {
	bindings map[string]ref.Val
}

// NewBindingMap builds a BindingMap from host-native values, wrapping each
// with NativeToVal.
func NewBindingMap(raw map[string]interface{}) (*BindingMap, error) {
	b := &BindingMap{bindings: make(map[string]ref.Val, len(raw))}
	for k, v := range raw {
		cv, err := NativeToVal(v)
		if err != nil {
			return nil, err
		}
		b.bindings[k] = cv
	}
	return b, nil
}

var _ Activation = (*BindingMap)(nil)

// ResolveQualified implements the four-step cascade of: try the
// full name, then progressively shorter prefixes, selecting the dropped
// suffix as a field path off of whatever prefix matches.
func (b *BindingMap) ResolveQualified(name string) (ref.Val, []string, bool) {
	parts := strings.Split(name, ".")
	for i := len(parts); i > 0; i-- {
		prefix := strings.Join(parts[:i], ".")
		if v, ok := b.bindings[prefix]; ok {
			return v, parts[i:], true
		}
	}
	return nil, nil, false
}

// Resolve selects the full dotted path name out of the activation,
// applying field selects for any unmatched suffix left after the longest
// bound prefix is found.
func Resolve(act Activation, name string) ref.Val {
	val, remaining, found := act.ResolveQualified(name)
	if !found {
		return types.NewErr("undeclared reference to '%s'", name)
	}
	for _, field := range remaining {
		val = SelectField(val, field)
		if types.IsError(val) {
			return val
		}
	}
	return val
}

// SelectField implements `v.field` for maps and structs: maps
// treat it as key lookup by string; structs use their own Get.
func SelectField(val ref.Val, field string) ref.Val {
	switch v := val.(type) {
	case *types.Map:
		r := v.Get(types.String(field))
		if types.IsError(r) {
			return types.NewErr("no such key: %s", field)
		}
		return r
	case *types.Struct:
		return v.Get(types.String(field))
	default:
		return types.NewErr("type '%s' does not support field selection", val.Type().TypeName())
	}
}
