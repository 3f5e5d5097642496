package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/common/types/ref"
)

func TestMapGetMissingKeyIsError(t *testing.T) {
	m := NewMap([]ref.Val{String("a")}, []ref.Val{Int(1)})
	assert.True(t, IsError(m.Get(String("missing"))))
}

func TestMapDuplicateKeyKeepsLastWrite(t *testing.T) {
	m := NewMap([]ref.Val{String("a"), String("a")}, []ref.Val{Int(1), Int(2)})
	assert.Equal(t, Int(1), m.Size())
	assert.Equal(t, Int(2), m.Get(String("a")))
}

func TestMapIsSetReflectsPresence(t *testing.T) {
	m := NewMap([]ref.Val{String("a")}, []ref.Val{Int(1)})
	assert.Equal(t, True, m.IsSet("a"))
	assert.Equal(t, False, m.IsSet("b"))
}

func TestMapContainsChecksKeySet(t *testing.T) {
	m := NewMap([]ref.Val{Int(1)}, []ref.Val{String("x")})
	assert.Equal(t, True, m.Contains(Int(1)))
	assert.Equal(t, False, m.Contains(Int(2)))
}

func TestMapEqual(t *testing.T) {
	a := NewMap([]ref.Val{String("a")}, []ref.Val{Int(1)})
	b := NewMap([]ref.Val{String("a")}, []ref.Val{Int(1)})
	c := NewMap([]ref.Val{String("a")}, []ref.Val{Int(2)})
	assert.Equal(t, True, a.Equal(b))
	assert.Equal(t, False, a.Equal(c))
}
