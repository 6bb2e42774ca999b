// File: zones_test.go
// Title: Timezone Registry and Resolution Tests
// Description: Tests for the symbolic zone registry, the sentinels, alias
//              registration, the local-timezone resolver, and cached zone
//              resolution.
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

	dxerror "github.com/msto63/datex/core/error"
)

func TestZoneConstants(t *testing.T) {
	testCases := []struct {
		name string
		zone Zone
		want string
	}{
		{"UTC", ZoneUTC, "utc"},
		{"NYC", ZoneNYC, "America/New_York"},
		{"USEast", ZoneUSEast, "US/Eastern"},
		{"London", ZoneLondon, "Europe/London"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.zone.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestZoneSentinels(t *testing.T) {
	if !ZoneNone.IsNone() || ZoneUTC.IsNone() {
		t.Error("IsNone misclassifies")
	}
	if !ZoneLocal.IsLocal() || ZoneUTC.IsLocal() {
		t.Error("IsLocal misclassifies")
	}
}

func TestResolveZone(t *testing.T) {
	testCases := []struct {
		name     string
		zone     Zone
		wantName string
		wantErr  bool
		wantCode dxerror.Code
	}{
		{"lowercase utc", ZoneUTC, "UTC", false, ""},
		{"uppercase UTC", Zone("UTC"), "UTC", false, ""},
		{"gmt maps to UTC", Zone("gmt"), "UTC", false, ""},
		{"registry NYC", ZoneNYC, "America/New_York", false, ""},
		{"registry US Eastern", ZoneUSEast, "US/Eastern", false, ""},
		{"registry London", ZoneLondon, "Europe/London", false, ""},
		{"unknown zone", Zone("Mars/Olympus"), "", true, dxerror.CodeZoneNotFound},
		{"empty zone", ZoneNone, "", true, dxerror.CodeInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ResolveZone(tc.zone)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ResolveZone(%q) expected error, got %v", tc.zone, loc)
				}
				if !dxerror.HasCode(err, tc.wantCode) {
					t.Errorf("error code = %v, want %v", dxerror.GetCode(err), tc.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveZone(%q) unexpected error: %v", tc.zone, err)
			}
			if loc.String() != tc.wantName {
				t.Errorf("location = %q, want %q", loc.String(), tc.wantName)
			}
		})
	}
}

func TestResolveZoneIsCached(t *testing.T) {
	first, err := ResolveZone(ZoneNYC)
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	second, err := ResolveZone(ZoneNYC)
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}
	if first != second {
		t.Error("cached resolution should return the same *time.Location")
	}
}

func TestResolveZoneLocalSentinel(t *testing.T) {
	restore := LocalZoneFunc
	defer func() { LocalZoneFunc = restore }()

	LocalZoneFunc = func() string { return "Europe/London" }

	loc, err := ResolveZone(ZoneLocal)
	if err != nil {
		t.Fatalf("ResolveZone(localtz) failed: %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("location = %q, want Europe/London", loc.String())
	}
}

func TestRegisterAlias(t *testing.T) {
	defer ResetAliases()

	RegisterAlias("nyse", "America/New_York")

	loc, err := ResolveZone(Zone("nyse"))
	if err != nil {
		t.Fatalf("aliased resolution failed: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("location = %q, want America/New_York", loc.String())
	}
}

func TestLocalZoneFromTZEnv(t *testing.T) {
	testCases := []struct {
		name string
		tz   string
		want string
	}{
		{"IANA name", "America/New_York", "America/New_York"},
		{"colon prefix", ":Europe/London", "Europe/London"},
		{"empty means UTC", "", "UTC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TZ", tc.tz)
			if got := detectLocalZone(); got != tc.want {
				t.Errorf("detectLocalZone() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocalZoneResolves(t *testing.T) {
	// Whatever the host reports must resolve to a usable location
	if _, err := ResolveZone(Zone(LocalZone())); err != nil {
		t.Errorf("host local zone %q does not resolve: %v", LocalZone(), err)
	}
}

func TestNowFuncInjectable(t *testing.T) {
	restore := NowFunc
	defer func() { NowFunc = restore }()

	fixed := time.Date(2022, time.July, 22, 11, 33, 0, 0, time.Local)
	NowFunc = func() time.Time { return fixed }

	ts := NaiveNow()
	if ts.IsAware() {
		t.Error("NaiveNow should be naive")
	}
	if ts.Year() != 2022 || ts.Hour() != 11 || ts.Minute() != 33 {
		t.Errorf("NaiveNow = %v, want fields of %v", ts, fixed)
	}
}
