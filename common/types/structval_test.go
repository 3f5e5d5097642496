package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/common/types/ref"
)

func TestStructGetExplicitFieldOverridesDefault(t *testing.T) {
	s := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("alice")})
	assert.Equal(t, String("alice"), s.Get(String("name")))
}

func TestStructGetUnsetFieldFallsBackToConventionDefault(t *testing.T) {
	s := NewStruct("my.Msg", nil, map[string]ref.Val{})
	assert.Equal(t, String(""), s.Get(String("name")))
	assert.Equal(t, IntZero, s.Get(String("count")))
	assert.Equal(t, False, s.Get(String("is_active")))
	assert.Equal(t, UintZero, s.Get(String("unsigned_id")))
}

func TestStructIsSetFalseForDefaultValuedField(t *testing.T) {
	s := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("")})
	assert.Equal(t, False, s.IsSet("name"))
}

func TestStructIsSetTrueForNonDefaultValue(t *testing.T) {
	s := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("alice")})
	assert.Equal(t, True, s.IsSet("name"))
}

func TestStructEqualComparesExplicitFieldValues(t *testing.T) {
	a := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("x")})
	b := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("x")})
	c := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("y")})
	assert.Equal(t, True, a.Equal(b))
	assert.Equal(t, False, a.Equal(c))
}

func TestStructIsSetErrorsOnUnknownField(t *testing.T) {
	s := NewStruct("my.Msg", []string{"name"}, map[string]ref.Val{"name": String("alice")})
	assert.True(t, IsError(s.IsSet("nonexistent")))
}

func TestStructIsSetFalseForKnownButUnsetField(t *testing.T) {
	// "email" is declared (present in order, e.g. from `?email:
	// optional.none()`) but never made it into fields.
	s := NewStruct("my.Msg", []string{"name", "email"}, map[string]ref.Val{"name": String("alice")})
	assert.Equal(t, False, s.IsSet("email"))
}

func TestStructStringSkipsKnownButUnsetFields(t *testing.T) {
	s := NewStruct("my.Msg", []string{"name", "email"}, map[string]ref.Val{"name": String("alice")})
	assert.Equal(t, `my.Msg{name: "alice"}`, s.String())
}

func TestStructTypeSingletonPerName(t *testing.T) {
	a := NewStruct("my.Msg", nil, nil).Type()
	b := NewStruct("my.Msg", nil, nil).Type()
	assert.Same(t, a, b)
}
