package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationFromStringRejectsInvalidLiteral(t *testing.T) {
	assert.True(t, IsError(durationFromString("not a duration")))
}

func TestDurationAddTimestampYieldsTimestamp(t *testing.T) {
	base := Timestamp{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	result := Duration{time.Hour}.Add(base)
	ts, ok := result.(Timestamp)
	require.True(t, ok)
	assert.Equal(t, 1, ts.Hours())
}

func TestDurationNegate(t *testing.T) {
	result := Duration{time.Hour}.Negate().(Duration)
	assert.Equal(t, -time.Hour, result.Duration)
}

func TestDurationAccessors(t *testing.T) {
	d := Duration{90*time.Minute + 30*time.Second}
	assert.Equal(t, 1, d.Hours())
	assert.Equal(t, 30, d.Minutes())
	assert.Equal(t, 30, d.Seconds())
}

func TestDurationConvertToInt(t *testing.T) {
	assert.Equal(t, Int(time.Hour.Nanoseconds()), Duration{time.Hour}.ConvertToType(IntType))
}
