package types

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/celexpr/celc/common/types/ref"
)

// String is the CEL UTF-8 string variant.
type String string

// StringType is the singleton type tag for String.
var StringType = NewTypeValue("string")

func (s String) Type() ref.Type { return StringType }
func (s String) Value() interface{} { return string(s) }
func (s String) String() string { return string(s) }

func (s String) Add(other ref.Val) ref.Val {
	o, ok := other.(String)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	return s + o
}

// Size returns the number of Unicode code points, (not bytes).
func (s String) Size() ref.Val {
	return Int(utf8.RuneCountInString(string(s)))
}

func (s String) Compare(other ref.Val) ref.Val {
	o, ok := other.(String)
	if !ok {
		return ValOrErr(op_Compare, other)
	}
	return Int(strings.Compare(string(s), string(o)))
}

func (s String) Equal(other ref.Val) ref.Val {
	o, ok := other.(String)
	if !ok {
		return False
	}
	return Bool(s == o)
}

func (s String) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case StringType:
		return s
	case BytesType:
		return Bytes(s)
	case IntType:
		v, err := strconv.ParseInt(string(s), 10, 64)
		if err != nil {
			return NewErr("invalid int literal '%s'", string(s))
		}
		return Int(v)
	case UintType:
		v, err := strconv.ParseUint(string(s), 10, 64)
		if err != nil {
			return NewErr("invalid uint literal '%s'", string(s))
		}
		return Uint(v)
	case DoubleType:
		v, err := strconv.ParseFloat(string(s), 64)
		if err != nil {
			return NewErr("invalid double literal '%s'", string(s))
		}
		return Double(v)
	case BoolType:
		v, err := strconv.ParseBool(string(s))
		if err != nil {
			return NewErr("invalid bool literal '%s'", string(s))
		}
		return Bool(v)
	case TimestampType:
		return timestampFromString(string(s))
	case DurationType:
		return durationFromString(string(s))
	case TypeType:
		return StringType
	}
	return NewErr("type conversion error from '%s' to '%s'", StringType.TypeName(), typeVal.TypeName())
}
