package compiler

import (
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/celexpr/celc/interpreter"
)

// bindingCache memoizes the derived interpreter.BindingMap built from a
// user-supplied binding map across successive Evaluate calls, keyed by the
// identity of the map value itself rather than its contents: repeated
// evaluates against the same map (a common pattern for request-scoped
// binding records reused across many expressions) should not re-pay the
// NativeToVal conversion and qualified-path setup on every call.
type bindingCache struct {
	group singleflight.Group

	mu      sync.Mutex
	entries map[uintptr]*interpreter.BindingMap
}

func newBindingCache() *bindingCache {
	return &bindingCache{entries: make(map[uintptr]*interpreter.BindingMap)}
}

// derive returns the BindingMap for raw, building and caching it on first
// use. Concurrent callers deriving the same identity collapse onto a
// single NewBindingMap call via the singleflight group.
func (c *bindingCache) derive(raw map[string]interface{}) (*interpreter.BindingMap, error) {
	if raw == nil {
		return interpreter.NewBindingMap(nil)
	}
	key := reflect.ValueOf(raw).Pointer()

	c.mu.Lock()
	if b, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return b, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(strconv.FormatUint(uint64(key), 16), func() (interface{}, error) {
		b, err := interpreter.NewBindingMap(raw)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = b
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*interpreter.BindingMap), nil
}
