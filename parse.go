// File: parse.go
// Title: Free-Form Parsing
// Description: Implements Parse, which turns strings, string slices, raw
//              frame indices, time.Time values, and already-parsed timestamps
//              into the library's internal Timestamp representation, plus the
//              DateOnly reduction to midnight. Parsed values pass through the
//              same zone normalization as SetZone.
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
	"github.com/msto63/datex/utils/framex"
	"github.com/msto63/datex/utils/timex"
	"time"
)

// ============================================================================
// Configuration
// ============================================================================

// ParseConfig controls post-parse zone normalization.
type ParseConfig struct {
	// Zone is the target zone after parsing. The zero value (timex.ZoneNone)
	// converts to UTC and drops the tag, producing UTC-naive timestamps.
	Zone timex.Zone

	// WhenMissing is attached to parsed values that carried no explicit
	// offset before converting. Defaults to UTC.
	WhenMissing timex.Zone
}

// DefaultParseConfig returns the configuration Parse uses when called without
// one: normalize everything to UTC-naive, assuming UTC where unmarked.
func DefaultParseConfig() *ParseConfig {
	return &ParseConfig{
		Zone:        timex.ZoneNone,
		WhenMissing: timex.ZoneUTC,
	}
}

// ============================================================================
// Parsing
// ============================================================================

// Parse converts d into the internal timestamp representation and normalizes
// its zone state. Accepted shapes:
//   - *framex.Frame: a raw (string-labeled) index is parsed elementwise into
//     a timestamp index; an already-timestamp index passes through
//   - []string: parsed elementwise into a framex.Series
//   - string: parsed into a scalar timex.Timestamp
//   - framex.Series, []timex.Timestamp, timex.Timestamp: passed through
//   - time.Time, []time.Time: adopted as aware timestamps
//
// After parsing, the zone normalization of SetZone runs with the config's
// Zone and WhenMissing, so a default Parse yields UTC-naive timestamps
// regardless of the offsets present in the input. Time-only strings such as
// "11:33:22" are given the host's current date.
func Parse(d interface{}, config ...*ParseConfig) (interface{}, error) {
	cfg := DefaultParseConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}
	missing := cfg.WhenMissing
	if missing.IsNone() {
		missing = timex.ZoneUTC
	}

	parsed, err := parseValue(d)
	if err != nil {
		return nil, err
	}
	return applyToTimeAxis(parsed, setZoneOp(cfg.Zone, missing), "datex.Parse")
}

// parseValue handles the shape dispatch and raw-to-timestamp conversion;
// zone normalization happens afterwards in Parse.
func parseValue(d interface{}) (interface{}, error) {
	switch v := d.(type) {
	case *framex.Frame:
		index := v.Index()
		if index.IsTime() {
			return v, nil
		}
		times := make([]timex.Timestamp, index.Len())
		for i, label := range index.Labels() {
			ts, err := timex.ParseString(label)
			if err != nil {
				return nil, err
			}
			times[i] = ts
		}
		return v.WithIndex(framex.NewTimeIndex(times))
	case framex.Series:
		return v, nil
	case []timex.Timestamp:
		return v, nil
	case []string:
		out := make(framex.Series, len(v))
		for i, s := range v {
			ts, err := timex.ParseString(s)
			if err != nil {
				return nil, err
			}
			out[i] = ts
		}
		return out, nil
	case string:
		return timex.ParseString(v)
	case []time.Time:
		out := make(framex.Series, len(v))
		for i, t := range v {
			out[i] = timex.FromTime(t)
		}
		return out, nil
	case time.Time:
		return timex.FromTime(v), nil
	case timex.Timestamp:
		return v, nil
	default:
		warnUnsupportedShape("datex.Parse", d)
		return nil, dxerror.Newf("unparseable value type %T; expected *framex.Frame, []string, string, or timestamp values", d).
			WithCode(dxerror.CodeInvalidType).
			WithOperation("datex.Parse")
	}
}

// DateOnly reduces ts to midnight of its calendar date, dropping the time of
// day and any timezone tag. The calendar date is read from the timestamp's
// own zone, so an aware value keeps the date it shows, not the UTC date.
func DateOnly(ts timex.Timestamp) timex.Timestamp {
	year, month, day := ts.Date()
	return timex.NewDate(year, month, day)
}
