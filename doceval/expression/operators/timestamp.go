package operators

import (
	"math"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// Unit strings are lowercase and case-sensitive.
const (
	unitSecond      = "second"
	unitMinute      = "minute"
	unitHour        = "hour"
	unitDay         = "day"
	unitMillisecond = "millisecond"
	unitMicrosecond = "microsecond"
)

// timestampAdd applies a delta in seconds plus sub-second nanos so that
// deltas too large for a single int64 of nanoseconds are still exact. The
// unit operand is checked before the mirroring rules: a null unit is an
// error even when the timestamp or amount is null.
func timestampAdd(op Operator, negate bool) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 3 {
			return wrongArity(op, len(args), 3)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		unitArg := args[1]
		if unitArg.IsNullish() {
			return result.Err(result.InvalidArgument("%s unit must not be null", op))
		}
		if unitArg.Value().Kind() != value.KindString {
			return result.Err(result.TypeMismatch("%s expects a string unit, got %s", op, unitArg.Value().Kind()))
		}
		unit := unitArg.Value().Str()
		if !validUnit(unit) {
			return result.Err(result.InvalidArgument("%s: unknown unit %q", op, unit))
		}
		if !args[0].IsNullish() && args[0].Value().Kind() != value.KindTimestamp {
			return result.Err(result.TypeMismatch("%s expects a timestamp, got %s", op, args[0].Value().Kind()))
		}
		if !args[2].IsNullish() && args[2].Value().Kind() != value.KindInteger {
			return result.Err(result.TypeMismatch("%s expects an integer amount, got %s", op, args[2].Value().Kind()))
		}
		if args[0].IsNullish() || args[2].IsNullish() {
			return result.Null()
		}
		ts := args[0].Value()
		amount := args[2].Value().Integer()
		if negate {
			if amount == math.MinInt64 {
				return result.Err(result.OutOfRange("%s amount overflow", op))
			}
			amount = -amount
		}
		deltaSeconds, deltaNanos, ok := unitDelta(unit, amount)
		if !ok {
			return result.Err(result.OutOfRange("timestamp out of range"))
		}
		seconds, ok := addInt64(ts.Seconds(), deltaSeconds)
		if !ok {
			return result.Err(result.OutOfRange("timestamp out of range"))
		}
		nanos := int64(ts.Nanos()) + deltaNanos
		if nanos >= 1_000_000_000 {
			seconds, ok = addInt64(seconds, 1)
			if !ok {
				return result.Err(result.OutOfRange("timestamp out of range"))
			}
			nanos -= 1_000_000_000
		} else if nanos < 0 {
			seconds, ok = addInt64(seconds, -1)
			if !ok {
				return result.Err(result.OutOfRange("timestamp out of range"))
			}
			nanos += 1_000_000_000
		}
		out := value.Timestamp(seconds, int32(nanos))
		if !out.InTimestampRange() {
			return result.Err(result.OutOfRange("timestamp out of range"))
		}
		return result.Of(out)
	}
}

func validUnit(unit string) bool {
	switch unit {
	case unitSecond, unitMinute, unitHour, unitDay, unitMillisecond, unitMicrosecond:
		return true
	}
	return false
}

// unitDelta splits amount*unit into whole seconds and sub-second nanos.
// Multiplication overflow only happens for deltas far beyond the valid
// timestamp span, so overflow reports as out of range.
func unitDelta(unit string, amount int64) (seconds, nanos int64, ok bool) {
	switch unit {
	case unitSecond:
		return amount, 0, true
	case unitMinute:
		seconds, ok = mulInt64(amount, 60)
		return seconds, 0, ok
	case unitHour:
		seconds, ok = mulInt64(amount, 3600)
		return seconds, 0, ok
	case unitDay:
		seconds, ok = mulInt64(amount, 86400)
		return seconds, 0, ok
	case unitMillisecond:
		return floorDiv(amount, 1000), floorMod(amount, 1000) * 1_000_000, true
	case unitMicrosecond:
		return floorDiv(amount, 1_000_000), floorMod(amount, 1_000_000) * 1000, true
	}
	return 0, 0, false
}

// timestampToUnix builds the timestamp_to_unix_* family. Sub-unit nanos
// truncate toward negative infinity, which the seconds-major, nanos-minor
// representation gives for free.
func timestampToUnix(op Operator, perSecond int64, nanosPer int64) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 1 {
			return wrongArity(op, len(args), 1)
		}
		a := args[0]
		switch {
		case a.IsError():
			return result.Err(a.Err())
		case a.IsNullish():
			return result.Null()
		}
		ts := a.Value()
		if ts.Kind() != value.KindTimestamp {
			return result.Err(result.TypeMismatch("%s expects a timestamp, got %s", op, ts.Kind()))
		}
		whole, ok := mulInt64(ts.Seconds(), perSecond)
		if !ok {
			return result.Err(result.OutOfRange("%s overflow", op))
		}
		var sub int64
		if nanosPer > 0 {
			sub = int64(ts.Nanos()) / nanosPer
		}
		out, ok := addInt64(whole, sub)
		if !ok {
			return result.Err(result.OutOfRange("%s overflow", op))
		}
		return result.Of(value.Integer(out))
	}
}

func unixToTimestamp(op Operator, perSecond int64, nanosPer int64) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 1 {
			return wrongArity(op, len(args), 1)
		}
		a := args[0]
		switch {
		case a.IsError():
			return result.Err(a.Err())
		case a.IsNullish():
			return result.Null()
		}
		if a.Value().Kind() != value.KindInteger {
			return result.Err(result.TypeMismatch("%s expects an integer, got %s", op, a.Value().Kind()))
		}
		n := a.Value().Integer()
		ts := value.Timestamp(floorDiv(n, perSecond), int32(floorMod(n, perSecond)*nanosPer))
		if !ts.InTimestampRange() {
			return result.Err(result.OutOfRange("timestamp out of range"))
		}
		return result.Of(ts)
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
