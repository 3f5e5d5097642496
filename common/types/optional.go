package types

import (
	"github.com/celexpr/celc/common/types/ref"
)

// Optional is the CEL optional(T) variant: either empty
// or wrapping exactly one present value. It is produced by `?.`/`[?...]`
// field and index access and by the optional.of/optional.none/optional.ofNonZeroValue
// extension functions.
type Optional struct {
	hasValue bool
	value ref.Val
}

// OptionalType is the singleton type tag for Optional.
var OptionalType = NewTypeValue("optional_type")

// OptionalNone is the empty optional value.
var OptionalNone = &Optional{hasValue: false}

// NewOptional wraps value as a present optional.
func NewOptional(value ref.Val) *Optional {
	return &Optional{hasValue: true, value: value}
}

func (o *Optional) Type() ref.Type { return OptionalType }

func (o *Optional) Value() interface{} {
	if !o.hasValue {
		return nil
	}
	return o.value.Value()
}

func (o *Optional) String() string {
	if !o.hasValue {
		return "optional.none()"
	}
	return "optional.of(" + ref.ToString(o.value) + ")"
}

// HasValue reports presence, backing the `optional.hasValue()` method.
func (o *Optional) HasValue() bool { return o.hasValue }

// GetValue returns the wrapped value, or the error sentinel if empty,
// backing `optional.value()`.
func (o *Optional) GetValue() ref.Val {
	if !o.hasValue {
		return NewErr("optional.none() has no value")
	}
	return o.value
}

func (o *Optional) Equal(other ref.Val) ref.Val {
	other2, ok := other.(*Optional)
	if !ok {
		return False
	}
	if o.hasValue != other2.hasValue {
		return False
	}
	if !o.hasValue {
		return True
	}
	return o.value.Equal(other2.value)
}

func (o *Optional) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case OptionalType:
		return o
	case TypeType:
		return OptionalType
	}
	return NewErr("type conversion error from '%s' to '%s'", OptionalType.TypeName(), typeVal.TypeName())
}
