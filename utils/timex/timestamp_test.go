// File: timestamp_test.go
// Title: Timestamp Type Tests
// Description: Tests for the Timestamp value type covering the naive/aware
//              state machine, the attach/detach/convert/strip primitives,
//              arithmetic, and string rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial test implementation

package timex

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("time.LoadLocation(%s) failed: %v", name, err)
	}
	return loc
}

func TestNewIsNaive(t *testing.T) {
	ts := New(2022, time.July, 22, 11, 33, 22, 0)

	if ts.IsAware() {
		t.Error("New should produce a naive timestamp")
	}
	if ts.ZoneName() != "" {
		t.Errorf("ZoneName() = %q, want empty", ts.ZoneName())
	}
	if ts.Hour() != 11 || ts.Minute() != 33 || ts.Second() != 22 {
		t.Errorf("clock fields = %d:%d:%d, want 11:33:22", ts.Hour(), ts.Minute(), ts.Second())
	}
}

func TestFromTimeIsAware(t *testing.T) {
	raw := time.Date(2022, time.July, 22, 11, 33, 0, 0, time.UTC)
	ts := FromTime(raw)

	if !ts.IsAware() {
		t.Error("FromTime should produce an aware timestamp")
	}
	if ts.ZoneName() != "UTC" {
		t.Errorf("ZoneName() = %q, want UTC", ts.ZoneName())
	}
}

func TestAttachKeepsWallClock(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")
	ts := New(2022, time.July, 22, 11, 33, 0, 0)

	attached := ts.Attach(nyc)

	if !attached.IsAware() {
		t.Fatal("Attach should produce an aware timestamp")
	}
	if attached.Hour() != 11 || attached.Minute() != 33 {
		t.Errorf("wall clock changed: %d:%d, want 11:33", attached.Hour(), attached.Minute())
	}
	if attached.ZoneName() != "America/New_York" {
		t.Errorf("ZoneName() = %q", attached.ZoneName())
	}
}

func TestAttachOverwritesExistingZone(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")
	lon := mustLoad(t, "Europe/London")

	ts := New(2022, time.July, 22, 11, 33, 0, 0).Attach(nyc)
	overwritten := ts.Attach(lon)

	// Wall clock unchanged, tag replaced
	if overwritten.Hour() != 11 || overwritten.Minute() != 33 {
		t.Errorf("wall clock changed: %d:%d", overwritten.Hour(), overwritten.Minute())
	}
	if overwritten.ZoneName() != "Europe/London" {
		t.Errorf("ZoneName() = %q, want Europe/London", overwritten.ZoneName())
	}
	// The absolute instant must differ since the offset interpretation changed
	if overwritten.Equal(ts) {
		t.Error("overwriting the zone should change the absolute instant")
	}
}

func TestConvertPreservesInstant(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")
	lon := mustLoad(t, "Europe/London")

	ts := New(2022, time.July, 22, 11, 33, 0, 0).Attach(nyc)
	converted := ts.Convert(lon)

	if !converted.Equal(ts) {
		t.Error("Convert must preserve the absolute instant")
	}
	// NYC is EDT (-4), London is BST (+1) in July: 11:33 -> 16:33
	if converted.Hour() != 16 || converted.Minute() != 33 {
		t.Errorf("converted wall clock = %d:%d, want 16:33", converted.Hour(), converted.Minute())
	}
}

func TestStripYieldsNaiveUTC(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")
	ts := New(2022, time.July, 22, 11, 33, 0, 0).Attach(nyc)

	stripped := ts.Strip()

	if stripped.IsAware() {
		t.Error("Strip should produce a naive timestamp")
	}
	// 11:33 EDT == 15:33 UTC
	if stripped.Hour() != 15 || stripped.Minute() != 33 {
		t.Errorf("stripped wall clock = %d:%d, want 15:33", stripped.Hour(), stripped.Minute())
	}
}

func TestDetachKeepsWallClock(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")
	ts := New(2022, time.July, 22, 11, 33, 0, 0).Attach(nyc)

	detached := ts.Detach()

	if detached.IsAware() {
		t.Error("Detach should produce a naive timestamp")
	}
	if detached.Hour() != 11 || detached.Minute() != 33 {
		t.Errorf("detached wall clock = %d:%d, want 11:33", detached.Hour(), detached.Minute())
	}
}

func TestArithmeticAndComparison(t *testing.T) {
	ts := New(2022, time.July, 22, 10, 0, 0, 0)
	later := ts.Add(90 * time.Minute)

	if !later.After(ts) || !ts.Before(later) {
		t.Error("ordering broken after Add")
	}
	if d := later.Sub(ts); d != 90*time.Minute {
		t.Errorf("Sub = %v, want 90m", d)
	}
	if !ts.Add(0).Equal(ts) {
		t.Error("Add(0) should be equal")
	}
}

func TestTruncateSecond(t *testing.T) {
	ts := New(2022, time.July, 22, 11, 33, 22, 872903000)
	truncated := ts.TruncateSecond()

	if truncated.Nanosecond() != 0 {
		t.Errorf("Nanosecond() = %d, want 0", truncated.Nanosecond())
	}
	if truncated.Second() != 22 {
		t.Errorf("Second() = %d, want 22", truncated.Second())
	}
	if truncated.IsAware() {
		t.Error("TruncateSecond must not change the naive state")
	}
}

func TestStringRendering(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")

	testCases := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{"naive with fraction", New(2022, time.July, 22, 11, 33, 22, 872903000), "2022-07-22 11:33:22.872903"},
		{"naive without fraction", New(2022, time.July, 22, 11, 33, 22, 0), "2022-07-22 11:33:22"},
		{"aware", New(2022, time.July, 22, 11, 33, 22, 0).Attach(nyc), "2022-07-22 11:33:22-0400"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ts.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestISOStringRendering(t *testing.T) {
	nyc := mustLoad(t, "America/New_York")

	testCases := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{"naive", New(2022, time.July, 22, 11, 33, 22, 0), "2022-07-22T11:33:22"},
		{"aware offset", New(2022, time.July, 22, 11, 33, 22, 0).Attach(nyc), "2022-07-22T11:33:22-04:00"},
		{"aware UTC has no Z", New(2022, time.July, 22, 11, 33, 22, 0).Attach(time.UTC), "2022-07-22T11:33:22+00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ts.ISOString(); got != tc.want {
				t.Errorf("ISOString() = %q, want %q", got, tc.want)
			}
		})
	}
}
