// Package datex provides headache-free timestamp normalization: parsing
// heterogeneous inputs into one internal Timestamp representation, attaching,
// converting, and clearing timezone information uniformly across tables,
// sequences, and scalars, and formatting timestamps back into compact strings.
//
// Package: datex
// Title: Timestamp Normalization Library
// Description: This package implements the public surface of the datex
//              library: the shape-dispatching timezone operations (SetZone,
//              ConvertZone, OverwriteZone, ClearZone), free-form parsing,
//              current-time access, date-only reduction, compact string
//              formatting, and duration casts. All operations accept a frame,
//              a series of timestamps, or a scalar Timestamp and apply the
//              same transformation along the time axis, preserving shape and
//              ordering exactly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// A Timestamp is either naive (no timezone attached) or aware (timezone
// attached). Arithmetic and comparison require both operands in the same
// state; this library exists to push everything toward one consistent state.
// Avoid mixing in raw time.Time values: parse everything first.
//
// Example:
//
//	// Parse a frame's index; no timezone added by default
//	f, _ := framex.New(framex.NewIndex([]string{"2022-07-22 11:33:22.872903-0400"}),
//		framex.Column{Name: "price", Values: []interface{}{42.0}})
//	out, err := datex.Parse(f)
//
//	// Current time in RFC-3339 form (append the Z yourself)
//	now, _ := datex.Now()
//	iso, _ := datex.Format(now, &datex.FormatConfig{KeepMillis: true, ISO: true})
//	rfc3339 := iso + "Z"
//
//	// Convert a frame to the New York timezone, assuming UTC where unmarked
//	out, err = datex.ConvertZone(out, timex.ZoneNYC)
//
//	// Remove timezone info, converting back to UTC
//	out, err = datex.ClearZone(out)
//
// The host clock and host timezone are read only through timex.NowFunc and
// timex.LocalZoneFunc, so tests can inject fixed values.
package datex
