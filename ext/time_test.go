package ext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
)

func mkTimestamp(y int, m time.Month, day, hour, min, sec int) types.Timestamp {
	return types.Timestamp{Time: time.Date(y, m, day, hour, min, sec, 0, time.UTC)}
}

func TestTimeTimestampFieldAccessors(t *testing.T) {
	d := newDispatcher(t, Time)
	ts := mkTimestamp(2024, time.March, 15, 13, 30, 45)

	assert.Equal(t, types.Int(2024), find(t, d, "getFullYear", true, 0)(ts, nil))
	assert.Equal(t, types.Int(2), find(t, d, "getMonth", true, 0)(ts, nil))
	assert.Equal(t, types.Int(15), find(t, d, "getDate", true, 0)(ts, nil))
	assert.Equal(t, types.Int(14), find(t, d, "getDayOfMonth", true, 0)(ts, nil))
	assert.Equal(t, types.Int(13), find(t, d, "getHours", true, 0)(ts, nil))
	assert.Equal(t, types.Int(30), find(t, d, "getMinutes", true, 0)(ts, nil))
	assert.Equal(t, types.Int(45), find(t, d, "getSeconds", true, 0)(ts, nil))
}

func TestTimeTimestampRespectsTimezoneArgument(t *testing.T) {
	d := newDispatcher(t, Time)
	ts := mkTimestamp(2024, time.January, 1, 1, 0, 0)

	getHours := find(t, d, "getHours", true, 1)
	assert.Equal(t, types.Int(20), getHours(ts, []ref.Val{types.String("-05:00")}))
}

func TestTimeDurationAccessorsShareNameWithTimestamp(t *testing.T) {
	d := newDispatcher(t, Time)
	dur := types.Duration{Duration: 2*time.Hour + 30*time.Minute + 15*time.Second}

	getHours := find(t, d, "getHours", true, 0)
	getMinutes := find(t, d, "getMinutes", true, 0)
	getSeconds := find(t, d, "getSeconds", true, 0)

	assert.Equal(t, types.Int(2), getHours(dur, nil))
	assert.Equal(t, types.Int(30), getMinutes(dur, nil))
	assert.Equal(t, types.Int(15), getSeconds(dur, nil))
}

func TestTimeAccessorUnsupportedType(t *testing.T) {
	d := newDispatcher(t, Time)
	getHours := find(t, d, "getHours", true, 0)
	assert.True(t, types.IsError(getHours(types.String("not a time"), nil)))
}
