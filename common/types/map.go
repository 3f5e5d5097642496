package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/common/types/traits"
)

// Map is the CEL map variant: unordered key/value pairs keyed
// by int, uint, bool, or string. Iteration order is insertion order, which
// CEL does not guarantee but which makes output deterministic for tests.
type Map struct {
	keys []ref.Val
	values map[interface{}]ref.Val
}

// MapType is the singleton type tag for Map.
var MapType = NewTypeValue("map")

// NewMap constructs a Map from parallel slices of already-evaluated keys
// and values. Duplicate keys (per mapKey) keep the last write.
func NewMap(keys, values []ref.Val) *Map {
	m := &Map{values: make(map[interface{}]ref.Val, len(keys))}
	for i, k := range keys {
		mk := mapKey(k)
		if _, exists := m.values[mk]; !exists {
			m.keys = append(m.keys, k)
		} else {
			for j, existing := range m.keys {
				if mapKey(existing) == mk {
					m.keys[j] = k
					break
				}
			}
		}
		m.values[mk] = values[i]
	}
	return m
}

// mapKey normalizes a key value to a comparable Go value so int/uint keys
// that are numerically equal collide the way CEL equality requires.
func mapKey(k ref.Val) interface{} {
	switch v := k.(type) {
	case Int:
		return int64(v)
	case Uint:
		// Only representable uint64 values collide with their signed
		// counterpart; values beyond MaxInt64 keep a distinct key space,
		// which matches the fact no Int value can equal them anyway.
		if uint64(v) <= math.MaxInt64 {
			return int64(v)
		}
		return v
	case Bool:
		return bool(v)
	case String:
		return string(v)
	default:
		return fmt.Sprintf("%T:%v", k, k.Value())
	}
}

func (m *Map) Type() ref.Type { return MapType }

func (m *Map) Value() interface{} {
	out := make(map[interface{}]interface{}, len(m.keys))
	for _, k := range m.keys {
		out[k.Value()] = m.values[mapKey(k)].Value()
	}
	return out
}

func (m *Map) String() string {
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = ref.ToString(k) + ": " + ref.ToString(m.values[mapKey(k)])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) Size() ref.Val { return Int(len(m.keys)) }

// Get implements `map[k]`: a missing key is an error.
func (m *Map) Get(key ref.Val) ref.Val {
	v, ok := m.values[mapKey(key)]
	if !ok {
		return NewErr("no such key: %s", ref.ToString(key))
	}
	return v
}

// IsSet implements has(m.f)/has(m["f"]) field presence.
func (m *Map) IsSet(field string) ref.Val {
	_, ok := m.values[mapKey(String(field))]
	return Bool(ok)
}

// Contains implements `k in map`: true iff k is a present key.
func (m *Map) Contains(elem ref.Val) ref.Val {
	_, ok := m.values[mapKey(elem)]
	return Bool(ok)
}

func (m *Map) Equal(other ref.Val) ref.Val {
	o, ok := other.(*Map)
	if !ok {
		return False
	}
	if len(m.keys) != len(o.keys) {
		return False
	}
	for _, k := range m.keys {
		ov, ok := o.values[mapKey(k)]
		if !ok {
			return False
		}
		eq := m.values[mapKey(k)].Equal(ov)
		if ref.IsError(eq) {
			return eq
		}
		if b, ok := eq.(Bool); !ok || !bool(b) {
			return False
		}
	}
	return True
}

func (m *Map) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case MapType:
		return m
	case TypeType:
		return MapType
	}
	return NewErr("type conversion error from '%s' to '%s'", MapType.TypeName(), typeVal.TypeName())
}

func (m *Map) Iterator() traits.Iterator {
	return &mapIterator{m: m}
}

type mapIterator struct {
	m *Map
	pos int
}

func (it *mapIterator) HasNext() bool { return it.pos < len(it.m.keys) }

func (it *mapIterator) Next() ref.Val {
	k := it.m.keys[it.pos]
	it.pos++
	return k
}

// NextValue supports two-variable comprehension macros that
// need the value alongside the most recently yielded key.
func (it *mapIterator) NextValue() ref.Val {
	return it.m.values[mapKey(it.m.keys[it.pos-1])]
}
