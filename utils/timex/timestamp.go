// File: timestamp.go
// Title: Timestamp Value Type
// Description: Implements the Timestamp type used across the datex library,
//              an instant in time that is either naive (no timezone attached)
//              or aware (timezone attached), with the attach, detach, convert,
//              and strip primitives the timezone operations build on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with naive/aware timestamps

package timex

import (
	"time"
)

// Timestamp is an instant in time with optional timezone attachment.
//
// A naive Timestamp carries wall-clock fields but no timezone; internally
// the fields are held in UTC. An aware Timestamp carries a timezone that
// fixes its offset interpretation. Arithmetic and comparison between two
// Timestamps require both to be in the same state (both naive or both
// aware); mixing the two states gives meaningless results, and the datex
// operations exist to push every value toward one consistent state.
type Timestamp struct {
	t     time.Time
	aware bool
}

// Display layouts. Sub-second digits and the offset appear only when present.
const (
	layoutNaive    = "2006-01-02 15:04:05.999999999"
	layoutAware    = "2006-01-02 15:04:05.999999999-0700"
	layoutISONaive = "2006-01-02T15:04:05.999999999"
	layoutISOAware = "2006-01-02T15:04:05.999999999-07:00"
	layoutDate     = "2006-01-02"
)

// New creates a naive Timestamp from calendar and clock fields
func New(year int, month time.Month, day, hour, min, sec, nsec int) Timestamp {
	return Timestamp{
		t: time.Date(year, month, day, hour, min, sec, nsec, time.UTC),
	}
}

// NewDate creates a naive Timestamp at midnight of the given calendar date
func NewDate(year int, month time.Month, day int) Timestamp {
	return New(year, month, day, 0, 0, 0, 0)
}

// FromTime creates an aware Timestamp from a time.Time, keeping its location.
// Go's time.Time always carries a location, so raw time values enter the
// library as aware; use NaiveOf for values whose location is meaningless.
func FromTime(t time.Time) Timestamp {
	return Timestamp{t: t, aware: true}
}

// NaiveOf creates a naive Timestamp from the wall-clock fields of t,
// discarding its location
func NaiveOf(t time.Time) Timestamp {
	return Timestamp{
		t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
			t.Second(), t.Nanosecond(), time.UTC),
	}
}

// NaiveNow returns the host's current wall-clock instant as a naive Timestamp
func NaiveNow() Timestamp {
	return NaiveOf(NowFunc())
}

// Time returns the underlying time.Time
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsAware returns true if a timezone is attached
func (ts Timestamp) IsAware() bool {
	return ts.aware
}

// IsZero returns true for the zero Timestamp
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero() && !ts.aware
}

// Year returns the calendar year
func (ts Timestamp) Year() int { return ts.t.Year() }

// Month returns the calendar month
func (ts Timestamp) Month() time.Month { return ts.t.Month() }

// Day returns the day of the month
func (ts Timestamp) Day() int { return ts.t.Day() }

// Hour returns the hour within the day
func (ts Timestamp) Hour() int { return ts.t.Hour() }

// Minute returns the minute within the hour
func (ts Timestamp) Minute() int { return ts.t.Minute() }

// Second returns the second within the minute
func (ts Timestamp) Second() int { return ts.t.Second() }

// Nanosecond returns the sub-second offset in nanoseconds
func (ts Timestamp) Nanosecond() int { return ts.t.Nanosecond() }

// Date returns the calendar date fields
func (ts Timestamp) Date() (year int, month time.Month, day int) {
	return ts.t.Date()
}

// ZoneName returns the attached timezone name, or "" for naive timestamps
func (ts Timestamp) ZoneName() string {
	if !ts.aware {
		return ""
	}
	return ts.t.Location().String()
}

// Attach tags the Timestamp with a timezone without changing its wall-clock
// fields. On an aware Timestamp this overwrites the existing tag; that is the
// force-overwrite primitive and discards the prior offset interpretation.
func (ts Timestamp) Attach(loc *time.Location) Timestamp {
	return Timestamp{
		t: time.Date(ts.t.Year(), ts.t.Month(), ts.t.Day(), ts.t.Hour(),
			ts.t.Minute(), ts.t.Second(), ts.t.Nanosecond(), loc),
		aware: true,
	}
}

// Detach removes the timezone tag keeping the displayed wall-clock fields
func (ts Timestamp) Detach() Timestamp {
	return NaiveOf(ts.t)
}

// Convert re-expresses the Timestamp in another timezone, preserving the
// absolute instant. A naive Timestamp is read as UTC wall-clock.
func (ts Timestamp) Convert(loc *time.Location) Timestamp {
	return Timestamp{t: ts.t.In(loc), aware: true}
}

// Strip converts to UTC and removes the timezone tag, leaving a naive
// UTC-equivalent Timestamp
func (ts Timestamp) Strip() Timestamp {
	return Timestamp{t: ts.t.In(time.UTC)}
}

// TruncateSecond zeroes the sub-second part, keeping state and zone
func (ts Timestamp) TruncateSecond() Timestamp {
	return Timestamp{
		t: time.Date(ts.t.Year(), ts.t.Month(), ts.t.Day(), ts.t.Hour(),
			ts.t.Minute(), ts.t.Second(), 0, ts.t.Location()),
		aware: ts.aware,
	}
}

// Add returns the Timestamp shifted by a duration, keeping state and zone
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{t: ts.t.Add(d), aware: ts.aware}
}

// Sub returns the duration ts-other. Both operands must be in the same
// state (both naive or both aware).
func (ts Timestamp) Sub(other Timestamp) time.Duration {
	return ts.t.Sub(other.t)
}

// Equal reports whether two Timestamps denote the same instant
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// Before reports whether ts is before other
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.t.Before(other.t)
}

// After reports whether ts is after other
func (ts Timestamp) After(other Timestamp) bool {
	return ts.t.After(other.t)
}

// String renders the default human-readable form, with sub-second digits
// when present and the offset when a timezone is attached
func (ts Timestamp) String() string {
	if ts.aware {
		return ts.t.Format(layoutAware)
	}
	return ts.t.Format(layoutNaive)
}

// ISOString renders the ISO-8601 form. No "Z" suffix is appended for UTC;
// callers wanting RFC-3339-with-Z must append it themselves.
func (ts Timestamp) ISOString() string {
	if ts.aware {
		return ts.t.Format(layoutISOAware)
	}
	return ts.t.Format(layoutISONaive)
}

// DateString renders the calendar date only
func (ts Timestamp) DateString() string {
	return ts.t.Format(layoutDate)
}
