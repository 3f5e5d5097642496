package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampFromStringRejectsInvalidLiteral(t *testing.T) {
	assert.True(t, IsError(timestampFromString("not a timestamp")))
}

func TestTimestampAddDuration(t *testing.T) {
	base := Timestamp{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	result := base.Add(Duration{24 * time.Hour})
	ts, ok := result.(Timestamp)
	require.True(t, ok)
	assert.Equal(t, 2, ts.Day())
}

func TestTimestampSubtractTimestampYieldsDuration(t *testing.T) {
	a := Timestamp{time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)}
	b := Timestamp{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	result := a.Subtract(b)
	dur, ok := result.(Duration)
	require.True(t, ok)
	assert.Equal(t, 24, dur.Hours())
}

func TestTimestampCompare(t *testing.T) {
	a := Timestamp{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	b := Timestamp{time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, IntNegOne, a.Compare(b))
	assert.Equal(t, IntOne, b.Compare(a))
}

func TestTimestampAccessorsUseUTCBasis(t *testing.T) {
	ts := Timestamp{time.Date(2024, time.March, 15, 10, 30, 45, 0, time.UTC)}
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 2, ts.Month())
	assert.Equal(t, 15, ts.Day())
	assert.Equal(t, 10, ts.Hours())
	assert.Equal(t, 30, ts.Minutes())
	assert.Equal(t, 45, ts.Seconds())
}
