// Package ref declares the interfaces every CEL value variant implements:
// Val for the value itself, Type for its type tag. Keeping these as small
// interfaces (rather than one deep class hierarchy) lets every runtime
// helper pattern-match on concrete type via a type switch.
package ref

import "fmt"

// Val is implemented by every CEL value variant, including the error
// sentinel. Operations that cannot produce a sensible result return a Val
// whose Type() is the error type rather than a Go error.
type Val interface {
	// Type returns the value's CEL type tag.
	Type() Type

	// Value returns the boundary (host-native) representation: big.Int for
	// int, a Uint wrapper for uint, string, []byte, etc.
	Value() interface{}

	// Equal implements CEL's == operator for this variant against other.
	// The result is always Bool or the error sentinel.
	Equal(other Val) Val

	// ConvertToType implements one of the explicit CEL type conversions, or
	// the error sentinel if no such conversion exists.
	ConvertToType(typeVal Type) Val
}

// Type is the value returned by Val.Type(); it is itself a Val so that CEL
// expressions can compare types with ==.
type Type interface {
	Val

	// TypeName returns the type's CEL name, e.g. "int", "list", "my.pkg.Msg".
	TypeName() string
}

// IsError reports whether v is the error-sentinel value. The error sentinel
// marks itself by implementing this unexported structural check rather than
// ref depending on the types package (which depends on ref).
func IsError(v Val) bool {
	marker, ok := v.(interface{ CelErrorSentinel() bool })
	return ok && marker.CelErrorSentinel()
}

// ToString renders v for display, e.g. inside a containing list or map's
// String(). Every concrete variant implements fmt.Stringer; this falls back
// to %v for anything that, unexpectedly, does not.
func ToString(v Val) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v.Value())
}
