// File: zones.go
// Title: Timezone Operations
// Description: Implements the public timezone operations: SetZone as the
//              general attach-then-convert primitive, plus the ConvertZone,
//              OverwriteZone, ClearZone, and SetZoneLocal conveniences built
//              on top of it. Every operation accepts frames, series, and
//              scalars through the shared time-axis dispatch.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	"github.com/msto63/datex/utils/framex"
	"github.com/msto63/datex/utils/timex"
)

// defaultWhenMissing is attached to naive timestamps before conversion when
// the caller gives no explicit fallback. LoadSettings may override it.
var defaultWhenMissing = timex.ZoneUTC

// SetZone moves every timestamp along the time axis of d into the target
// zone, preserving the instant in time. Naive timestamps are first tagged
// with whenMissing (UTC when omitted), so their wall-clock fields are read in
// that zone. A target of timex.ZoneNone converts to UTC and drops the tag,
// leaving UTC-naive timestamps. timex.ZoneLocal resolves to the host zone.
//
// The result has the same shape as d: a frame in, a frame out.
func SetZone(d interface{}, target timex.Zone, whenMissing ...timex.Zone) (interface{}, error) {
	missing := defaultWhenMissing
	if len(whenMissing) > 0 && !whenMissing[0].IsNone() {
		missing = whenMissing[0]
	}
	return applyToTimeAxis(d, setZoneOp(target, missing), "datex.SetZone")
}

// ConvertZone is SetZone with a fixed UTC fallback for naive inputs: the
// usual call for data that is known to be stored in UTC.
func ConvertZone(d interface{}, target timex.Zone) (interface{}, error) {
	return applyToTimeAxis(d, setZoneOp(target, timex.ZoneUTC), "datex.ConvertZone")
}

// OverwriteZone replaces the timezone tag without touching the wall-clock
// fields, so the instant in time changes. A target of timex.ZoneNone drops
// the tag and keeps the wall clock as-is. Use this to repair data whose tag
// is known to be wrong; for ordinary conversion use SetZone or ConvertZone.
func OverwriteZone(d interface{}, target timex.Zone) (interface{}, error) {
	op := func(ts timex.Timestamp) (timex.Timestamp, error) {
		if target.IsNone() {
			return ts.Detach(), nil
		}
		loc, err := timex.ResolveZone(target)
		if err != nil {
			return timex.Timestamp{}, err
		}
		return ts.Attach(loc), nil
	}
	return applyToTimeAxis(d, op, "datex.OverwriteZone")
}

// ClearZone converts every timestamp to UTC and drops the timezone tag,
// yielding UTC-naive timestamps. Naive inputs are assumed to already be UTC.
func ClearZone(d interface{}) (interface{}, error) {
	return applyToTimeAxis(d, setZoneOp(timex.ZoneNone, timex.ZoneUTC), "datex.ClearZone")
}

// SetZoneLocal converts every timestamp to the host timezone, assuming UTC
// where no tag is present.
func SetZoneLocal(d interface{}) (interface{}, error) {
	return applyToTimeAxis(d, setZoneOp(timex.ZoneLocal, timex.ZoneUTC), "datex.SetZoneLocal")
}

// setZoneOp builds the elementwise attach-then-convert operation all zone
// setters share. Zone resolution happens per element so that alias changes
// registered mid-run are honored; the location cache keeps this cheap.
func setZoneOp(target, whenMissing timex.Zone) framex.Op {
	return func(ts timex.Timestamp) (timex.Timestamp, error) {
		if !ts.IsAware() {
			loc, err := timex.ResolveZone(whenMissing)
			if err != nil {
				return timex.Timestamp{}, err
			}
			ts = ts.Attach(loc)
		}
		if target.IsNone() {
			return ts.Strip(), nil
		}
		loc, err := timex.ResolveZone(target)
		if err != nil {
			return timex.Timestamp{}, err
		}
		return ts.Convert(loc), nil
	}
}
