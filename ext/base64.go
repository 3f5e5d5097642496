package ext

import (
	"encoding/base64"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

// Base64 registers the base64.encode/decode namespace functions.
func Base64(d *interpreter.Dispatcher) {
	d.Register("base64.encode", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		b, ok := args[0].(types.Bytes)
		if !ok {
			return types.NewErr("base64.encode() requires bytes, got '%s'", args[0].Type().TypeName())
		}
		return types.String(base64.StdEncoding.EncodeToString(b))
	})
	d.Register("base64.decode", false, 1, func(_ ref.Val, args []ref.Val) ref.Val {
		s, ok := args[0].(types.String)
		if !ok {
			return types.NewErr("base64.decode() requires string, got '%s'", args[0].Type().TypeName())
		}
		raw := string(s)
		if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
			return types.Bytes(b)
		}
		if b, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
			return types.Bytes(b)
		}
		return types.NewErr("invalid base64 string: %q", raw)
	})
}
