// File: format.go
// Title: Compact String Formatting
// Description: Implements Format, which renders a scalar Timestamp as the
//              shortest faithful string: date-only at midnight, seconds
//              precision by default, subsecond digits and ISO-8601 separators
//              on request. Output is always rendered naive after converting
//              into the requested zone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	dxerror "github.com/msto63/datex/core/error"
	"github.com/msto63/datex/utils/timex"
)

// ============================================================================
// Configuration
// ============================================================================

// FormatConfig controls Format's rendering.
type FormatConfig struct {
	// Zone is the zone whose wall clock the output shows. Both the default
	// timex.ZoneUTC and timex.ZoneNone render the naive UTC wall clock
	// without an offset or a "Z", so the two are indistinguishable and are
	// treated alike. Any other zone renders aware, with its offset.
	Zone timex.Zone

	// KeepMillis keeps subsecond digits instead of truncating to whole
	// seconds.
	KeepMillis bool

	// ISO uses the ISO-8601 "T" separator and suppresses the date-only
	// shortening at midnight.
	ISO bool
}

// DefaultFormatConfig returns the configuration Format uses when called
// without one: UTC wall clock, whole seconds, space separator.
func DefaultFormatConfig() *FormatConfig {
	return &FormatConfig{Zone: timex.ZoneUTC}
}

// ============================================================================
// Formatting
// ============================================================================

// Format renders ts as a compact string. The timestamp is first moved into
// the configured zone, naive inputs assumed UTC. A UTC (or none) zone is
// rendered naive with no offset; any other zone is rendered aware, so its
// offset appears. Outside ISO mode a timestamp at exactly midnight,
// subseconds aside, shortens to its date "2006-01-02"; otherwise the output
// is "2006-01-02 15:04:05", with a "T" separator and preserved subsecond
// digits when ISO and KeepMillis ask for them. Callers that need a full
// RFC-3339 UTC string append the "Z" themselves.
//
// Format takes scalars only; render sequences element by element.
func Format(d interface{}, config ...*FormatConfig) (string, error) {
	cfg := DefaultFormatConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}

	ts, ok := d.(timex.Timestamp)
	if !ok {
		return "", dxerror.Newf("Format takes a scalar timex.Timestamp, got %T", d).
			WithCode(dxerror.CodeInvalidType).
			WithOperation("datex.Format")
	}

	zone := cfg.Zone
	if zone == timex.ZoneUTC {
		zone = timex.ZoneNone
	}
	// setZoneOp already strips for a none target; other zones stay aware so
	// the offset shows up in the rendering.
	out, err := setZoneOp(zone, timex.ZoneUTC)(ts)
	if err != nil {
		return "", err
	}
	ts = out

	if !cfg.ISO && ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 {
		return ts.DateString(), nil
	}
	if !cfg.KeepMillis {
		ts = ts.TruncateSecond()
	}
	if cfg.ISO {
		return ts.ISOString(), nil
	}
	return ts.String(), nil
}
