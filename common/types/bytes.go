package types

import (
	"bytes"
	"encoding/base64"

	"github.com/celexpr/celc/common/types/ref"
)

// Bytes is the CEL byte-string variant.
type Bytes []byte

// BytesType is the singleton type tag for Bytes.
var BytesType = NewTypeValue("bytes")

func (b Bytes) Type() ref.Type { return BytesType }
func (b Bytes) Value() interface{} { return []byte(b) }
func (b Bytes) String() string { return base64.StdEncoding.EncodeToString(b) }

func (b Bytes) Add(other ref.Val) ref.Val {
	o, ok := other.(Bytes)
	if !ok {
		return ValOrErr(op_Add, other)
	}
	out := make(Bytes, 0, len(b)+len(o))
	out = append(out, b...)
	out = append(out, o...)
	return out
}

func (b Bytes) Size() ref.Val { return Int(len(b)) }

func (b Bytes) Equal(other ref.Val) ref.Val {
	o, ok := other.(Bytes)
	if !ok {
		return False
	}
	return Bool(bytes.Equal(b, o))
}

func (b Bytes) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case BytesType:
		return b
	case StringType:
		return String(b)
	case TypeType:
		return BytesType
	}
	return NewErr("type conversion error from '%s' to '%s'", BytesType.TypeName(), typeVal.TypeName())
}
