package interpreter

import (
	"math/big"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/common/types"
)

func TestNativeToValBigIntInRange(t *testing.T) {
	v, err := NativeToVal(big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, types.Int(42), v)
}

func TestNativeToValBigIntOutOfRangeErrors(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	_, err := NativeToVal(huge)
	assert.Error(t, err)
}

func TestNativeToValListAndMap(t *testing.T) {
	v, err := NativeToVal([]interface{}{int64(1), "two"})
	require.NoError(t, err)
	list, ok := v.(*types.List)
	require.True(t, ok)
	assert.Equal(t, types.Int(2), list.Size())

	m, err := NativeToVal(map[string]interface{}{"a": int64(1)})
	require.NoError(t, err)
	mv, ok := m.(*types.Map)
	require.True(t, ok)
	assert.Equal(t, types.Int(1), mv.Get(types.String("a")))
}

func TestNativeToValOptional(t *testing.T) {
	none, err := NativeToVal(OptionalValue{HasValue: false})
	require.NoError(t, err)
	assert.Same(t, types.OptionalNone, none)

	some, err := NativeToVal(OptionalValue{HasValue: true, Value: int64(5)})
	require.NoError(t, err)
	opt, ok := some.(*types.Optional)
	require.True(t, ok)
	assert.Equal(t, types.Int(5), opt.GetValue())
}

func TestValToNativeIntIsBigInt(t *testing.T) {
	v, err := ValToNative(types.Int(7))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), v)
}

func TestValToNativeUintIsUintValue(t *testing.T) {
	v, err := ValToNative(types.Uint(9))
	require.NoError(t, err)
	assert.Equal(t, UintValue{Value: 9}, v)
}

func TestValToNativeTimestampRoundTripsThroughRecord(t *testing.T) {
	ts := types.Timestamp{Time: time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)}
	native, err := ValToNative(ts)
	require.NoError(t, err)
	record, ok := native.(TimeValue)
	require.True(t, ok)

	back, err := NativeToVal(record)
	require.NoError(t, err)
	assert.True(t, ts.Time.Equal(back.(types.Timestamp).Time))
}

func TestValToNativeErrPropagatesAsGoError(t *testing.T) {
	sentinel := types.NewErr("boom")
	native, err := ValToNative(sentinel)
	assert.Nil(t, native)
	assert.Equal(t, sentinel, err)
}

func TestNativeToValAndBackIPAddress(t *testing.T) {
	addr := netip.MustParseAddr("192.168.1.1")
	v, err := NativeToVal(addr)
	require.NoError(t, err)

	native, err := ValToNative(v)
	require.NoError(t, err)
	assert.Equal(t, addr, native)
}

func TestNativeToValRejectsUnsupportedType(t *testing.T) {
	_, err := NativeToVal(struct{ X int }{X: 1})
	assert.Error(t, err)
}
