// File: delta.go
// Title: Duration Casts
// Description: Implements DeltaToUnit, which casts a time.Duration into a
//              fractional count of a named calendar-agnostic unit. Unit codes
//              follow the common frequency-string convention: lowercase for
//              sub-day units, uppercase from days upward.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	"time"

	dxerror "github.com/msto63/datex/core/error"
)

// ============================================================================
// Units
// ============================================================================

// Duration unit codes accepted by DeltaToUnit. Codes are case-sensitive:
// "m" is minutes, "M" is not a unit.
const (
	UnitMillisecond = "ms"
	UnitSecond      = "s"
	UnitMinute      = "m"
	UnitHour        = "h"
	UnitDay         = "D"
	UnitWeek        = "W"
	UnitYear        = "Y"
)

// unitNanos maps each unit code to its length in nanoseconds. A year is the
// mean Gregorian year of 365.2425 days (31,556,952 seconds).
var unitNanos = map[string]float64{
	UnitMillisecond: float64(time.Millisecond),
	UnitSecond:      float64(time.Second),
	UnitMinute:      float64(time.Minute),
	UnitHour:        float64(time.Hour),
	UnitDay:         24 * float64(time.Hour),
	UnitWeek:        7 * 24 * float64(time.Hour),
	UnitYear:        365.2425 * 24 * float64(time.Hour),
}

// ============================================================================
// Casting
// ============================================================================

// DeltaToUnit returns delta as a fractional count of the given unit, minutes
// when omitted. Negative durations yield negative counts. An unknown unit
// code fails with CodeInvalidUnit.
func DeltaToUnit(delta time.Duration, unit ...string) (float64, error) {
	u := UnitMinute
	if len(unit) > 0 && unit[0] != "" {
		u = unit[0]
	}
	nanos, ok := unitNanos[u]
	if !ok {
		return 0, dxerror.Newf("unknown duration unit %q (valid: ms, s, m, h, D, W, Y)", u).
			WithCode(dxerror.CodeInvalidUnit).
			WithOperation("datex.DeltaToUnit")
	}
	return float64(delta) / nanos, nil
}
