// File: now.go
// Title: Current-Time Access
// Description: Implements Now, the configurable current-time accessor, and
//              NowIsWithin, the interval membership check. The host clock is
//              read through timex.NowFunc so tests can pin the instant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	"github.com/msto63/datex/utils/timex"
)

// ============================================================================
// Configuration
// ============================================================================

// NowConfig controls how the raw host instant is tagged and converted. The
// steps run in a fixed order: ForceZone attaches first, ConvertTo converts
// second, Clear strips last.
type NowConfig struct {
	// ForceZone is attached to the host's naive wall-clock reading without
	// conversion. The default timex.ZoneLocal tags it with the host zone,
	// which is the honest interpretation of a local clock reading.
	// timex.ZoneNone leaves the reading naive.
	ForceZone timex.Zone

	// ConvertTo, when set, converts the tagged result into that zone,
	// preserving the instant.
	ConvertTo timex.Zone

	// Clear converts the final result to UTC and strips the tag. Combined
	// with the default ForceZone this yields the UTC-naive instant.
	Clear bool
}

// DefaultNowConfig returns the configuration Now uses when called without
// one: the host wall clock tagged with the host zone.
func DefaultNowConfig() *NowConfig {
	return &NowConfig{ForceZone: timex.ZoneLocal}
}

// ============================================================================
// Operations
// ============================================================================

// Now reads the host clock and returns it per config. With the default
// config the result is the local wall clock tagged with the host zone;
// Now(&NowConfig{Clear: true}) yields the UTC-naive instant instead.
func Now(config ...*NowConfig) (timex.Timestamp, error) {
	cfg := DefaultNowConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}

	ts := timex.NaiveNow()
	if !cfg.ForceZone.IsNone() {
		loc, err := timex.ResolveZone(cfg.ForceZone)
		if err != nil {
			return timex.Timestamp{}, err
		}
		ts = ts.Attach(loc)
	}
	if !cfg.ConvertTo.IsNone() {
		op := setZoneOp(cfg.ConvertTo, timex.ZoneUTC)
		out, err := op(ts)
		if err != nil {
			return timex.Timestamp{}, err
		}
		ts = out
	}
	if cfg.Clear {
		op := setZoneOp(timex.ZoneNone, timex.ZoneUTC)
		out, err := op(ts)
		if err != nil {
			return timex.Timestamp{}, err
		}
		ts = out
	}
	return ts, nil
}

// NowIsWithin reports whether the current local time lies strictly between
// lo and hi. The bounds must be in the same zone state as the default Now
// result (aware, host zone); mixing naive bounds with the aware current time
// gives meaningless instants.
func NowIsWithin(lo, hi timex.Timestamp) (bool, error) {
	now, err := Now()
	if err != nil {
		return false, err
	}
	return lo.Before(now) && now.Before(hi), nil
}
