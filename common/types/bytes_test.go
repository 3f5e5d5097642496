package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesAddConcatenates(t *testing.T) {
	result := Bytes("ab").Add(Bytes("cd"))
	assert.Equal(t, Bytes("abcd"), result)
}

func TestBytesSize(t *testing.T) {
	assert.Equal(t, Int(3), Bytes("abc").Size())
}

func TestBytesEqual(t *testing.T) {
	assert.Equal(t, True, Bytes("abc").Equal(Bytes("abc")))
	assert.Equal(t, False, Bytes("abc").Equal(Bytes("abd")))
}

func TestBytesConvertToString(t *testing.T) {
	assert.Equal(t, String("abc"), Bytes("abc").ConvertToType(StringType))
}
