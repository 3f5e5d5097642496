package ext

import (
	"strconv"
	"time"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/common/types/ref"
	"github.com/celexpr/celc/interpreter"
)

// resolveLocation accepts either an IANA zone name ("America/New_York") or
// a fixed "+HH:MM"/"-HH:MM" offset, per the timestamp accessor functions'
// optional timezone argument.
func resolveLocation(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return time.UTC, nil
	}
	if len(tz) == 6 && (tz[0] == '+' || tz[0] == '-') {
		hh, err1 := strconv.Atoi(tz[1:3])
		mm, err2 := strconv.Atoi(tz[4:6])
		if err1 != nil || err2 != nil || tz[3] != ':' {
			return nil, err1
		}
		offset := hh*3600 + mm*60
		if tz[0] == '-' {
			offset = -offset
		}
		return time.FixedZone(tz, offset), nil
	}
	return time.LoadLocation(tz)
}

func tzArg(args []ref.Val) (string, bool) {
	if len(args) == 0 {
		return "", true
	}
	s, ok := args[0].(types.String)
	return string(s), ok
}

// Time registers the timestamp/duration accessor methods, each with an
// optional trailing timezone argument for the timestamp variants.
func Time(d *interpreter.Dispatcher) {
	tsField := func(fn func(time.Time) int) interpreter.Function {
		return func(target ref.Val, args []ref.Val) ref.Val {
			ts, ok := target.(types.Timestamp)
			if !ok {
				return types.NewErr("timestamp accessor unsupported on type '%s'", target.Type().TypeName())
			}
			tz, ok := tzArg(args)
			if !ok {
				return types.NewErr("timezone argument must be a string")
			}
			loc, err := resolveLocation(tz)
			if err != nil {
				return types.NewErr("invalid timezone '%s': %v", tz, err)
			}
			return types.Int(fn(ts.Time.In(loc)))
		}
	}
	register := func(name string, fn func(time.Time) int) {
		d.Register(name, true, 0, tsField(fn))
		d.Register(name, true, 1, tsField(fn))
	}
	register("getFullYear", func(t time.Time) int { return t.Year() })
	register("getMonth", func(t time.Time) int { return int(t.Month()) - 1 })
	register("getDate", func(t time.Time) int { return t.Day() })
	register("getDayOfMonth", func(t time.Time) int { return t.Day() - 1 })
	register("getDayOfWeek", func(t time.Time) int { return int(t.Weekday()) })
	register("getDayOfYear", func(t time.Time) int { return t.YearDay() - 1 })

	// getHours/Minutes/Seconds/Milliseconds are shared between timestamp
	// (with an optional timezone, via tsField above) and duration (no
	// timezone); the zero-arity overload must type-switch on target since
	// the dispatcher key carries no type information of its own.
	shared := func(tsFn func(time.Time) int, durFn func(types.Duration) int) interpreter.Function {
		return func(target ref.Val, _ []ref.Val) ref.Val {
			switch v := target.(type) {
			case types.Timestamp:
				return types.Int(tsFn(v.Time.In(time.UTC)))
			case types.Duration:
				return types.Int(durFn(v))
			default:
				return types.NewErr("accessor unsupported on type '%s'", target.Type().TypeName())
			}
		}
	}
	d.Register("getHours", true, 0, shared(func(t time.Time) int { return t.Hour() }, types.Duration.Hours))
	d.Register("getMinutes", true, 0, shared(func(t time.Time) int { return t.Minute() }, types.Duration.Minutes))
	d.Register("getSeconds", true, 0, shared(func(t time.Time) int { return t.Second() }, types.Duration.Seconds))
	d.Register("getMilliseconds", true, 0, shared(func(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }, types.Duration.Millis))

	// The timezone-qualified arity-1 overloads only make sense for
	// timestamps, so they are registered with tsField alone.
	d.Register("getHours", true, 1, tsField(func(t time.Time) int { return t.Hour() }))
	d.Register("getMinutes", true, 1, tsField(func(t time.Time) int { return t.Minute() }))
	d.Register("getSeconds", true, 1, tsField(func(t time.Time) int { return t.Second() }))
	d.Register("getMilliseconds", true, 1, tsField(func(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }))
}
