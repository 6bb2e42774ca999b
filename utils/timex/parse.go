// File: parse.go
// Title: Free-Form Timestamp Parsing
// Description: Implements best-effort parsing of date/time strings using a
//              list of common layouts. Each layout knows whether it carries
//              an explicit timezone offset and whether it is a time-of-day
//              only form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with layout table

package timex

import (
	"strings"
	"time"

	dxerror "github.com/msto63/datex/core/error"
)

// parseLayout describes one candidate layout for free-form parsing
type parseLayout struct {
	layout   string
	aware    bool // layout carries an explicit offset or zone
	timeOnly bool // layout has no date component
}

// Candidate layouts, tried in order. Offset-bearing layouts come first so an
// explicit offset always wins; time-of-day forms come last so they cannot
// shadow full dates.
var parseLayouts = []parseLayout{
	{time.RFC3339Nano, true, false},
	{time.RFC3339, true, false},
	{"2006-01-02T15:04:05.999999999-0700", true, false},
	{"2006-01-02 15:04:05.999999999Z07:00", true, false},
	{"2006-01-02 15:04:05.999999999-0700", true, false},
	{time.RFC1123Z, true, false},
	{time.RFC822Z, true, false},
	{"2006-01-02T15:04:05.999999999", false, false},
	{"2006-01-02 15:04:05.999999999", false, false},
	{"2006-01-02 15:04", false, false},
	{"2006-01-02", false, false},
	{"01/02/2006 15:04:05", false, false},
	{"01/02/2006", false, false},
	{"20060102150405", false, false},
	{"20060102", false, false},
	{"15:04:05.999999999Z07:00", true, true},
	{"15:04Z07:00", true, true},
	{"15:04:05.999999999", false, true},
	{"15:04", false, true},
}

// ParseString parses a free-form date/time string into a Timestamp. Strings
// with an explicit offset produce an aware Timestamp; strings without one
// produce a naive Timestamp. A time-of-day with no date component gets the
// current host-local date attached.
func ParseString(value string) (Timestamp, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Timestamp{}, dxerror.New("empty time string").
			WithCode(dxerror.CodeParseFailed).
			WithOperation("timex.ParseString")
	}

	for _, l := range parseLayouts {
		t, err := time.Parse(l.layout, v)
		if err != nil {
			continue
		}

		if l.timeOnly {
			today := NowFunc()
			t = time.Date(today.Year(), today.Month(), today.Day(),
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}

		if l.aware {
			return Timestamp{t: t, aware: true}, nil
		}
		return NaiveOf(t), nil
	}

	return Timestamp{}, dxerror.Newf("unable to parse time string: %s", value).
		WithCode(dxerror.CodeParseFailed).
		WithOperation("timex.ParseString").
		WithDetail("value", value)
}
