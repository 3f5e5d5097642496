package types

import (
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/celexpr/celc/common/types/ref"
)

// Struct is the CEL struct variant: a tagged record with a
// qualified type name and an ordered set of known field names. It
// represents protobuf-like messages without depending on protobuf
// descriptors at runtime; unset fields fall back to a naming-convention
// default rather than a schema-driven one. order is every field name the
// struct literal (or boundary-crossing embedder) declared, whether or not
// that field ended up with a value in fields — a field present in order
// but absent from fields is known but unset (e.g. `?f: optional.none()`);
// a field absent from order entirely is unknown to this struct's type.
type Struct struct {
	typeName string
	order []string
	fields map[string]ref.Val
}

// structType is the ref.Type returned for a given qualified struct name;
// each distinct name gets its own singleton so `==` on types works.
type structType struct {
	name string
}

func (t *structType) Type() ref.Type { return TypeType }
func (t *structType) Value() interface{} { return t.name }
func (t *structType) String() string { return t.name }
func (t *structType) TypeName() string { return t.name }
func (t *structType) Equal(other ref.Val) ref.Val {
	o, ok := other.(*structType)
	return Bool(ok && o.name == t.name)
}
func (t *structType) ConvertToType(tv ref.Type) ref.Val {
	if tv == TypeType {
		return TypeType
	}
	return NewErr("type conversion error from '%s' to '%s'", t.name, tv.TypeName())
}

var structTypeCache = map[string]*structType{}

func structTypeFor(name string) *structType {
	if t, ok := structTypeCache[name]; ok {
		return t
	}
	t := &structType{name: name}
	structTypeCache[name] = t
	return t
}

// NewStruct constructs a struct value. order is the full set of field
// names this struct's type declares (a field in order but not in fields
// is known but unset); fields holds the values actually present.
func NewStruct(typeName string, order []string, fields map[string]ref.Val) *Struct {
	return &Struct{typeName: typeName, order: order, fields: fields}
}

func (s *Struct) Type() ref.Type { return structTypeFor(s.typeName) }

// FieldOrder returns every field name this struct's type declares, in
// declaration order, whether or not it currently has a value.
func (s *Struct) FieldOrder() []string { return s.order }

// FieldMap returns the fields that currently have a value, keyed by name.
func (s *Struct) FieldMap() map[string]ref.Val { return s.fields }

func (s *Struct) Value() interface{} {
	out := make(map[string]interface{}, len(s.fields))
	for k, v := range s.fields {
		out[k] = v.Value()
	}
	return out
}

func (s *Struct) String() string {
	parts := make([]string, 0, len(s.order))
	for _, f := range s.order {
		v, ok := s.fields[f]
		if !ok {
			continue
		}
		parts = append(parts, f+": "+ref.ToString(v))
	}
	return s.typeName + "{" + strings.Join(parts, ", ") + "}"
}

// isKnownField reports whether field is among the type's declared fields,
// set or not.
func (s *Struct) isKnownField(field string) bool {
	for _, f := range s.order {
		if f == field {
			return true
		}
	}
	return false
}

// Get implements field select, returning the explicit value if set, else
// the naming-convention default.
func (s *Struct) Get(key ref.Val) ref.Val {
	name, ok := key.(String)
	if !ok {
		return NewErr("unsupported struct field key type '%s'", key.Type().TypeName())
	}
	field := string(name)
	if v, ok := s.fields[field]; ok {
		return v
	}
	return fieldDefault(field)
}

// IsSet implements has(s.f): true only if explicitly set and,
// by proto3 convention, not equal to the type default. A field this
// struct's type does not declare at all is reported as the error
// sentinel, distinct from a declared field that is simply unset.
func (s *Struct) IsSet(field string) ref.Val {
	v, ok := s.fields[field]
	if !ok {
		if !s.isKnownField(field) {
			return NewErr("no such field '%s' on struct '%s'", field, s.typeName)
		}
		return False
	}
	def := fieldDefault(field)
	eq := v.Equal(def)
	if b, ok := eq.(Bool); ok && bool(b) {
		return False
	}
	return True
}

func (s *Struct) Equal(other ref.Val) ref.Val {
	o, ok := other.(*Struct)
	if !ok {
		return False
	}
	if s.typeName != o.typeName {
		return False
	}
	names := map[string]bool{}
	for _, f := range s.order {
		names[f] = true
	}
	for _, f := range o.order {
		names[f] = true
	}
	for f := range names {
		av := s.Get(String(f))
		bv := o.Get(String(f))
		eq := av.Equal(bv)
		if ref.IsError(eq) {
			return eq
		}
		if b, ok := eq.(Bool); !ok || !bool(b) {
			return False
		}
	}
	return True
}

func (s *Struct) ConvertToType(typeVal ref.Type) ref.Val {
	if typeVal == TypeType {
		return s.Type()
	}
	if typeVal == s.Type() {
		return s
	}
	return NewErr("type conversion error from '%s' to '%s'", s.typeName, typeVal.TypeName())
}

// fieldDefault computes a naming-convention default, using
// strcase to normalize the field name into tokens before inspecting them
// for well-known proto-style suffixes/prefixes.
func fieldDefault(field string) ref.Val {
	tokens := strings.Split(strcase.SnakeCase(field), "_")
	has := func(want string) bool {
		for _, t := range tokens {
			if t == want {
				return true
			}
		}
		return false
	}
	last := ""
	if len(tokens) > 0 {
		last = tokens[len(tokens)-1]
	}

	switch {
	case has("map"):
		return NewMap(nil, nil)
	case last == "list" || strings.HasSuffix(last, "s"):
		return NewList()
	case has("value") && (has("bool") || has("int") || has("string") || has("float") || has("double") || has("bytes")):
		// Well-known wrapper-type field (BoolValue, Int32Value,...).
		return NullValue
	case has("uint") || has("unsigned"):
		return UintZero
	case has("float") || has("double"):
		return Double(0)
	case has("bool") || strings.HasPrefix(field, "is") || strings.HasPrefix(field, "has"):
		return False
	case has("string") || has("name"):
		return String("")
	case has("bytes"):
		return Bytes(nil)
	default:
		return IntZero
	}
}
