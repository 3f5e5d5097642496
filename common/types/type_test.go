package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeValueEqualByName(t *testing.T) {
	a := NewTypeValue("foo")
	b := NewTypeValue("foo")
	assert.Equal(t, True, a.Equal(b))
	assert.Equal(t, False, a.Equal(NewTypeValue("bar")))
}

func TestTypeValueConvertToString(t *testing.T) {
	assert.Equal(t, String("int"), IntType.ConvertToType(StringType))
}
