package types

import (
	"math"
	"time"
)

// minUnixTime and maxUnixTime bound the Unix-epoch-seconds range
// valid for a timestamp: 0001-01-01T00:00:00Z.. 9999-12-31T23:59:59Z.
var (
	minUnixTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnixTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

func addInt64Checked(x, y int64) (int64, bool) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, false
	}
	return x + y, true
}

func subtractInt64Checked(x, y int64) (int64, bool) {
	if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
		return 0, false
	}
	return x - y, true
}

func negateInt64Checked(x int64) (int64, bool) {
	// In two's complement, negating MinInt64 would produce MaxInt64+1.
	if x == math.MinInt64 {
		return 0, false
	}
	return -x, true
}

func multiplyInt64Checked(x, y int64) (int64, bool) {
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) ||
	(x > 0 && y > 0 && x > math.MaxInt64/y) ||
	(x > 0 && y < 0 && y < math.MinInt64/x) ||
	(x < 0 && y > 0 && x < math.MinInt64/y) ||
	(x < 0 && y < 0 && y < math.MaxInt64/x) {
		return 0, false
	}
	return x * y, true
}

func divideInt64Checked(x, y int64) (int64, bool) {
	if x == math.MinInt64 && y == -1 {
		return 0, false
	}
	return x / y, true
}

func moduloInt64Checked(x, y int64) (int64, bool) {
	if x == math.MinInt64 && y == -1 {
		return 0, false
	}
	return x % y, true
}

func addUint64Checked(x, y uint64) (uint64, bool) {
	if y > 0 && x > math.MaxUint64-y {
		return 0, false
	}
	return x + y, true
}

func subtractUint64Checked(x, y uint64) (uint64, bool) {
	if y > x {
		return 0, false
	}
	return x - y, true
}

func multiplyUint64Checked(x, y uint64) (uint64, bool) {
	if y != 0 && x > math.MaxUint64/y {
		return 0, false
	}
	return x * y, true
}

func addDurationChecked(x, y time.Duration) (time.Duration, bool) {
	if val, ok := addInt64Checked(int64(x), int64(y)); ok {
		return time.Duration(val), true
	}
	return 0, false
}

func subtractDurationChecked(x, y time.Duration) (time.Duration, bool) {
	if val, ok := subtractInt64Checked(int64(x), int64(y)); ok {
		return time.Duration(val), true
	}
	return 0, false
}

func negateDurationChecked(x time.Duration) (time.Duration, bool) {
	if val, ok := negateInt64Checked(int64(x)); ok {
		return time.Duration(val), true
	}
	return 0, false
}

// addTimeDurationChecked adds a duration to a time, range-checking the
// result against the 0001-9999 timestamp bound.
func addTimeDurationChecked(x time.Time, y time.Duration) (time.Time, bool) {
	sec1 := x.Truncate(time.Second).Unix()
	nsec1 := x.Sub(x.Truncate(time.Second)).Nanoseconds()

	sec2 := int64(y) / int64(time.Second)
	nsec2 := int64(y) % int64(time.Second)

	sec, ok := addInt64Checked(sec1, sec2)
	if !ok {
		return time.Time{}, false
	}
	nsec := nsec1 + nsec2
	if nsec < 0 || nsec >= int64(time.Second) {
		sec, ok = addInt64Checked(sec, nsec/int64(time.Second))
		if !ok {
			return time.Time{}, false
		}
		nsec -= (nsec / int64(time.Second)) * int64(time.Second)
		if nsec < 0 {
			sec, ok = addInt64Checked(sec, -1)
			if !ok {
				return time.Time{}, false
			}
			nsec += int64(time.Second)
		}
	}
	if sec < minUnixTime || sec > maxUnixTime {
		return time.Time{}, false
	}
	return time.Unix(sec, nsec).In(x.Location()), true
}

// subtractTimeChecked computes x - y as a duration, failing if the result
// would not fit in an int64 nanosecond count.
func subtractTimeChecked(x, y time.Time) (time.Duration, bool) {
	sec1 := x.Truncate(time.Second).Unix()
	nsec1 := x.Sub(x.Truncate(time.Second)).Nanoseconds()
	sec2 := y.Truncate(time.Second).Unix()
	nsec2 := y.Sub(y.Truncate(time.Second)).Nanoseconds()

	sec, ok := subtractInt64Checked(sec1, sec2)
	if !ok {
		return 0, false
	}
	nsec := nsec1 - nsec2
	if nsec < 0 || nsec >= int64(time.Second) {
		sec, ok = addInt64Checked(sec, nsec/int64(time.Second))
		if !ok {
			return 0, false
		}
		nsec -= (nsec / int64(time.Second)) * int64(time.Second)
		if nsec < 0 {
			sec, ok = addInt64Checked(sec, -1)
			if !ok {
				return 0, false
			}
			nsec += int64(time.Second)
		}
	}
	tsec, ok := multiplyInt64Checked(sec, int64(time.Second))
	if !ok {
		return 0, false
	}
	val, ok := addInt64Checked(tsec, nsec)
	if !ok {
		return 0, false
	}
	return time.Duration(val), true
}

func subtractTimeDurationChecked(x time.Time, y time.Duration) (time.Time, bool) {
	val, ok := negateDurationChecked(y)
	if !ok {
		return time.Time{}, false
	}
	return addTimeDurationChecked(x, val)
}
