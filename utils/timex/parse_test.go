// File: parse_test.go
// Title: Free-Form Parsing Tests
// Description: Tests for best-effort timestamp string parsing, covering
//              offset-bearing and naive layouts, fractional seconds, and
//              the time-only quirk that attaches the current date.
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

func TestParseString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantAware bool
		wantISO   string // ISOString of the result
		wantErr   bool
	}{
		{"RFC3339", "2022-07-22T11:33:22Z", true, "2022-07-22T11:33:22+00:00", false},
		{"RFC3339 with offset", "2022-07-22T11:33:22-04:00", true, "2022-07-22T11:33:22-04:00", false},
		{"fraction and compact offset", "2022-07-22 11:33:22.872903-0400", true, "2022-07-22T11:33:22.872903-04:00", false},
		{"space separated naive", "2022-07-22 11:33:22", false, "2022-07-22T11:33:22", false},
		{"naive with fraction", "2022-07-22 11:33:22.5", false, "2022-07-22T11:33:22.5", false},
		{"minute precision", "2022-07-22 11:33", false, "2022-07-22T11:33:00", false},
		{"date only", "2022-07-22", false, "2022-07-22T00:00:00", false},
		{"short date", "07/22/2022", false, "2022-07-22T00:00:00", false},
		{"compact date", "20220722", false, "2022-07-22T00:00:00", false},
		{"empty", "", false, "", true},
		{"garbage", "not a date", false, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseString(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseString(%q) expected error, got %v", tc.input, ts)
				}
				if !dxerror.HasCode(err, dxerror.CodeParseFailed) {
					t.Errorf("error code = %v, want PARSE_FAILED", dxerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseString(%q) unexpected error: %v", tc.input, err)
			}
			if ts.IsAware() != tc.wantAware {
				t.Errorf("IsAware() = %v, want %v", ts.IsAware(), tc.wantAware)
			}
			if got := ts.ISOString(); got != tc.wantISO {
				t.Errorf("ISOString() = %q, want %q", got, tc.wantISO)
			}
		})
	}
}

func TestParseStringTimeOnlyAttachesToday(t *testing.T) {
	restore := NowFunc
	defer func() { NowFunc = restore }()

	NowFunc = func() time.Time {
		return time.Date(2022, time.June, 19, 8, 0, 0, 0, time.Local)
	}

	testCases := []struct {
		name      string
		input     string
		wantAware bool
		wantISO   string
	}{
		{"minute precision naive", "23:55", false, "2022-06-19T23:55:00"},
		{"minute precision UTC", "23:55Z", true, "2022-06-19T23:55:00+00:00"},
		{"second precision", "23:55:07", false, "2022-06-19T23:55:07"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseString(tc.input)
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tc.input, err)
			}
			if ts.IsAware() != tc.wantAware {
				t.Errorf("IsAware() = %v, want %v", ts.IsAware(), tc.wantAware)
			}
			if got := ts.ISOString(); got != tc.wantISO {
				t.Errorf("ISOString() = %q, want %q", got, tc.wantISO)
			}
		})
	}
}
