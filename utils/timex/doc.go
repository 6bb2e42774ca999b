// Package timex provides the Timestamp value type and timezone primitives
// for the datex library.
//
// Package: timex
// Title: Timestamp and Timezone Primitives
// Description: This package defines the internal timestamp representation —
//              an instant that is either naive (no timezone attached) or
//              aware (timezone attached) — along with the symbolic timezone
//              registry, the host local-timezone resolver, cached timezone
//              lookup, and free-form string parsing. The datex package builds
//              its shape-dispatching operations on these primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// Terminology:
//
//   - Attach: tag a naive Timestamp with a timezone without changing its
//     displayed wall-clock fields.
//   - Convert: re-express an aware Timestamp's wall-clock fields under a
//     different timezone, preserving the absolute instant.
//   - Strip: convert to UTC, then drop the tag.
//
// The host clock and host timezone are read only through the NowFunc and
// LocalZoneFunc package variables, so tests can inject fixed values:
//
//	timex.NowFunc = func() time.Time {
//		return time.Date(2022, 7, 22, 11, 33, 0, 0, time.Local)
//	}
//	timex.LocalZoneFunc = func() string { return "America/New_York" }
package timex
