package types

import (
	"time"

	"github.com/celexpr/celc/common/types/ref"
)

// Timestamp is the CEL timestamp variant: an instant in time, represented
// internally as a UTC time.Time. Valid range is
// 0001-01-01T00:00:00Z.. 9999-12-31T23:59:59Z.
type Timestamp struct {
	time.Time
}

// TimestampType is the singleton type tag for Timestamp.
var TimestampType = NewTypeValue("google.protobuf.Timestamp")

func timestampFromString(s string) ref.Val {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return NewErr("invalid timestamp literal '%s': %v", s, err)
	}
	t = t.UTC()
	if t.Unix() < minUnixTime || t.Unix() > maxUnixTime {
		return NewErr("timestamp '%s' out of range", s)
	}
	return Timestamp{t}
}

func (t Timestamp) Type() ref.Type { return TimestampType }
func (t Timestamp) Value() interface{} { return t.Time }
func (t Timestamp) String() string { return t.Format(time.RFC3339Nano) }

func (t Timestamp) Add(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Duration:
		v, ok := addTimeDurationChecked(t.Time, o.Duration)
		if !ok {
			return NewErr("timestamp overflow")
		}
		return Timestamp{v}
	}
	return ValOrErr(op_Add, other)
}

func (t Timestamp) Subtract(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Timestamp:
		v, ok := subtractTimeChecked(t.Time, o.Time)
		if !ok {
			return NewErr("timestamp subtraction overflow")
		}
		return Duration{v}
	case Duration:
		v, ok := subtractTimeDurationChecked(t.Time, o.Duration)
		if !ok {
			return NewErr("timestamp overflow")
		}
		return Timestamp{v}
	}
	return ValOrErr(op_Subtract, other)
}

func (t Timestamp) Compare(other ref.Val) ref.Val {
	o, ok := other.(Timestamp)
	if !ok {
		return ValOrErr(op_Compare, other)
	}
	switch {
	case t.Time.Before(o.Time):
		return IntNegOne
	case t.Time.After(o.Time):
		return IntOne
	default:
		return IntZero
	}
}

func (t Timestamp) Equal(other ref.Val) ref.Val {
	o, ok := other.(Timestamp)
	if !ok {
		return False
	}
	return Bool(t.Time.Equal(o.Time))
}

func (t Timestamp) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case TimestampType:
		return t
	case StringType:
		return String(t.String())
	case IntType:
		return Int(t.Unix())
	case TypeType:
		return TimestampType
	}
	return NewErr("type conversion error from '%s' to '%s'", TimestampType.TypeName(), typeVal.TypeName())
}

// Getters used by the time/date extension functions.
func (t Timestamp) Year() int { return t.UTC().Year() }
func (t Timestamp) Month() int { return int(t.UTC().Month()) - 1 }
func (t Timestamp) Day() int { return t.UTC().Day() }
func (t Timestamp) Hours() int { return t.UTC().Hour() }
func (t Timestamp) Minutes() int { return t.UTC().Minute() }
func (t Timestamp) Seconds() int { return t.UTC().Second() }
func (t Timestamp) DayOfWeek() int { return int(t.UTC().Weekday()) }
func (t Timestamp) DayOfYear() int { return t.UTC().YearDay() - 1 }
