package interpreter

import (
	"fmt"
	"math/big"
	"net/netip"
	"time"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func timeFromRecord(seconds int64, nanos int32) time.Time {
	return time.Unix(seconds, int64(nanos)).UTC()
}

func durationFromRecord(seconds int64, nanos int32) time.Duration {
	return time.Duration(seconds)*time.Second + time.Duration(nanos)
}

// UintValue is the boundary wrapper for the CEL uint type: the
// host has no native unsigned 64-bit type guaranteed, so uint crosses the
// boundary as this single-field wrapper in both directions.
type UintValue struct{ Value uint64 }

// TimeValue is the boundary representation of a CEL timestamp: a
// (seconds, nanos) record rather than a host-specific time type.
type TimeValue struct {
	Seconds int64
	Nanos int32
}

// DurationValue is the boundary representation of a CEL duration.
type DurationValue struct {
	Seconds int64
	Nanos int32
}

// TypeNameValue is the boundary wrapper for the CEL type type: a
// single-field wrapper over the type's name.
type TypeNameValue struct{ Name string }

// OptionalValue is the boundary tagged none/some representation.
type OptionalValue struct {
	HasValue bool
	Value interface{}
}

// StructValue is the boundary tagged-record representation a struct
// crosses as, letting an embedder construct one without proto descriptors.
type StructValue struct {
	TypeName string
	Order []string
	Fields map[string]interface{}
}

// NativeToVal converts a host-native value, in one of the boundary shapes
// below, into the corresponding internal ref.Val.
func NativeToVal(v interface{}) (ref.Val, error) {
	switch x := v.(type) {
	case nil:
		return types.NullValue, nil
	case ref.Val:
		return x, nil
	case bool:
		return types.Bool(x), nil
	case int:
		return types.Int(x), nil
	case int64:
		return types.Int(x), nil
	case *big.Int:
		if !x.IsInt64() {
			return nil, fmt.Errorf("int value %s out of int64 range", x.String())
		}
		return types.Int(x.Int64()), nil
	case uint64:
		return types.Uint(x), nil
	case UintValue:
		return types.Uint(x.Value), nil
	case float32:
		return types.Double(x), nil
	case float64:
		return types.Double(x), nil
	case string:
		return types.String(x), nil
	case []byte:
		return types.Bytes(x), nil
	case []interface{}:
		elems := make([]ref.Val, len(x))
		for i, e := range x {
			cv, err := NativeToVal(e)
			if err != nil {
				return nil, err
			}
			elems[i] = cv
		}
		return types.NewList(elems...), nil
	case map[string]interface{}:
		keys := make([]ref.Val, 0, len(x))
		vals := make([]ref.Val, 0, len(x))
		for k, val := range x {
			cv, err := NativeToVal(val)
			if err != nil {
				return nil, err
			}
			keys = append(keys, types.String(k))
			vals = append(vals, cv)
		}
		return types.NewMap(keys, vals), nil
	case map[interface{}]interface{}:
		keys := make([]ref.Val, 0, len(x))
		vals := make([]ref.Val, 0, len(x))
		for k, val := range x {
			ck, err := NativeToVal(k)
			if err != nil {
				return nil, err
			}
			cv, err := NativeToVal(val)
			if err != nil {
				return nil, err
			}
			keys = append(keys, ck)
			vals = append(vals, cv)
		}
		return types.NewMap(keys, vals), nil
	case TimeValue:
		return types.Timestamp{Time: timeFromRecord(x.Seconds, x.Nanos)}, nil
	case DurationValue:
		return types.Duration{Duration: durationFromRecord(x.Seconds, x.Nanos)}, nil
	case TypeNameValue:
		return types.NewTypeValue(x.Name), nil
	case OptionalValue:
		if !x.HasValue {
			return types.OptionalNone, nil
		}
		cv, err := NativeToVal(x.Value)
		if err != nil {
			return nil, err
		}
		return types.NewOptional(cv), nil
	case StructValue:
		fields := make(map[string]ref.Val, len(x.Fields))
		for k, val := range x.Fields {
			cv, err := NativeToVal(val)
			if err != nil {
				return nil, err
			}
			fields[k] = cv
		}
		return types.NewStruct(x.TypeName, x.Order, fields), nil
	case netip.Addr:
		return types.NewIP(x), nil
	case netip.Prefix:
		pv, _ := types.ParseCIDR(x.String()).(types.CIDR)
		return pv, nil
	default:
		return nil, fmt.Errorf("unsupported host value of type %T", v)
	}
}

// ValToNative converts an internal ref.Val to its host-native boundary shape.
func ValToNative(v ref.Val) (interface{}, error) {
	switch x := v.(type) {
	case types.Null:
		return nil, nil
	case types.Bool:
		return bool(x), nil
	case types.Int:
		return big.NewInt(int64(x)), nil
	case types.Uint:
		return UintValue{Value: uint64(x)}, nil
	case types.Double:
		return float64(x), nil
	case types.String:
		return string(x), nil
	case types.Bytes:
		return []byte(x), nil
	case *types.List:
		out := make([]interface{}, 0)
		it := x.Iterator()
		for it.HasNext() {
			cv, err := ValToNative(it.Next())
			if err != nil {
				return nil, err
			}
			out = append(out, cv)
		}
		return out, nil
	case *types.Map:
		out := make(map[interface{}]interface{})
		it := x.Iterator()
		for it.HasNext() {
			k := it.Next()
			nk, err := ValToNative(k)
			if err != nil {
				return nil, err
			}
			nv, err := ValToNative(x.Get(k))
			if err != nil {
				return nil, err
			}
			out[nk] = nv
		}
		return out, nil
	case types.Timestamp:
		return TimeValue{Seconds: x.Unix(), Nanos: int32(x.Nanosecond())}, nil
	case types.Duration:
		return DurationValue{Seconds: int64(x.Duration / 1e9), Nanos: int32(int64(x.Duration) % 1e9)}, nil
	case *types.TypeValue:
		return TypeNameValue{Name: x.TypeName()}, nil
	case *types.Optional:
		if !x.HasValue() {
			return OptionalValue{HasValue: false}, nil
		}
		nv, err := ValToNative(x.GetValue())
		if err != nil {
			return nil, err
		}
		return OptionalValue{HasValue: true, Value: nv}, nil
	case *types.Struct:
		fields := make(map[string]interface{}, len(x.FieldMap()))
		for k, fv := range x.FieldMap() {
			nv, err := ValToNative(fv)
			if err != nil {
				return nil, err
			}
			fields[k] = nv
		}
		return StructValue{TypeName: x.Type().TypeName(), Order: x.FieldOrder(), Fields: fields}, nil
	case types.IP:
		return x.Value().(netip.Addr), nil
	case types.CIDR:
		return x.Value().(netip.Prefix), nil
	case *types.Err:
		return nil, x
	default:
		return nil, fmt.Errorf("unsupported internal value of type %T", v)
	}
}
