package types

import (
	"time"

	"github.com/celexpr/celc/common/types/ref"
)

// Duration is the CEL duration variant: a signed span of time represented
// as nanoseconds.
type Duration struct {
	time.Duration
}

// DurationType is the singleton type tag for Duration.
var DurationType = NewTypeValue("google.protobuf.Duration")

func durationFromString(s string) ref.Val {
	d, err := time.ParseDuration(s)
	if err != nil {
		return NewErr("invalid duration literal '%s': %v", s, err)
	}
	return Duration{d}
}

func (d Duration) Type() ref.Type { return DurationType }
func (d Duration) Value() interface{} { return d.Duration }
func (d Duration) String() string { return d.Duration.String() }

func (d Duration) Add(other ref.Val) ref.Val {
	switch o := other.(type) {
	case Duration:
		v, ok := addDurationChecked(d.Duration, o.Duration)
		if !ok {
			return NewErr("duration overflow")
		}
		return Duration{v}
	case Timestamp:
		v, ok := addTimeDurationChecked(o.Time, d.Duration)
		if !ok {
			return NewErr("timestamp overflow")
		}
		return Timestamp{v}
	}
	return ValOrErr(op_Add, other)
}

func (d Duration) Subtract(other ref.Val) ref.Val {
	o, ok := other.(Duration)
	if !ok {
		return ValOrErr(op_Subtract, other)
	}
	v, ok := subtractDurationChecked(d.Duration, o.Duration)
	if !ok {
		return NewErr("duration overflow")
	}
	return Duration{v}
}

func (d Duration) Negate() ref.Val {
	v, ok := negateDurationChecked(d.Duration)
	if !ok {
		return NewErr("duration overflow")
	}
	return Duration{v}
}

func (d Duration) Compare(other ref.Val) ref.Val {
	o, ok := other.(Duration)
	if !ok {
		return ValOrErr(op_Compare, other)
	}
	switch {
	case d.Duration < o.Duration:
		return IntNegOne
	case d.Duration > o.Duration:
		return IntOne
	default:
		return IntZero
	}
}

func (d Duration) Equal(other ref.Val) ref.Val {
	o, ok := other.(Duration)
	if !ok {
		return False
	}
	return Bool(d.Duration == o.Duration)
}

func (d Duration) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case DurationType:
		return d
	case StringType:
		return String(d.String())
	case IntType:
		return Int(d.Nanoseconds())
	case TypeType:
		return DurationType
	}
	return NewErr("type conversion error from '%s' to '%s'", DurationType.TypeName(), typeVal.TypeName())
}

// Getters used by the duration extension functions.
func (d Duration) Hours() int { return int(d.Duration / time.Hour) }
func (d Duration) Minutes() int { return int(d.Duration/time.Minute) % 60 }
func (d Duration) Seconds() int { return int(d.Duration/time.Second) % 60 }
func (d Duration) Millis() int { return int(d.Duration/time.Millisecond) % 1000 }
