// File: settings_test.go
// Title: Settings Tests
// Description: Tests the file-based configuration bridge: loading TOML and
//              YAML settings files, applying aliases, the fallback zone, and
//              the log level, and rejecting broken entries atomically.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial tests

package datex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dxerror "github.com/msto63/datex/core/error"
	dxlog "github.com/msto63/datex/core/log"
	"github.com/msto63/datex/utils/timex"
)

// writeSettingsFile writes content to a temp file with the given name
func writeSettingsFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

// resetSettings restores the process-wide settings state after a test
func resetSettings(t *testing.T) {
	t.Helper()

	originalDefault := defaultWhenMissing
	originalLevel := dxlog.GetDefault().GetLevel()
	t.Cleanup(func() {
		timex.ResetAliases()
		defaultWhenMissing = originalDefault
		dxlog.GetDefault().SetLevel(originalLevel)
	})
}

func TestLoadSettingsTOML(t *testing.T) {
	resetSettings(t)

	path := writeSettingsFile(t, "datex.toml", `
[zones]
when_missing = "America/New_York"

[zones.aliases]
nyse = "America/New_York"
lse = "Europe/London"

[log]
level = "warn"
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.WhenMissing != timex.ZoneNYC {
		t.Errorf("expected when_missing %s, got %s", timex.ZoneNYC, settings.WhenMissing)
	}
	if len(settings.Aliases) != 2 {
		t.Errorf("expected 2 aliases, got %d", len(settings.Aliases))
	}
	if settings.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", settings.LogLevel)
	}

	if err := settings.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// aliases resolve after Apply
	loc, err := timex.ResolveZone(timex.Zone("nyse"))
	if err != nil {
		t.Fatalf("registered alias did not resolve: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("alias resolved to %s", loc)
	}

	// the fallback zone is in effect for SetZone without an explicit one
	out, err := SetZone(timex.New(2022, time.July, 22, 11, 33, 22, 0), timex.ZoneUTC)
	if err != nil {
		t.Fatalf("SetZone failed: %v", err)
	}
	if out.(timex.Timestamp).Hour() != 15 {
		t.Errorf("expected fallback to New York (hour 15), got hour %d", out.(timex.Timestamp).Hour())
	}

	if dxlog.GetDefault().GetLevel() != dxlog.LevelWarn {
		t.Errorf("expected log level %v, got %v", dxlog.LevelWarn, dxlog.GetDefault().GetLevel())
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	resetSettings(t)

	path := writeSettingsFile(t, "datex.yaml", `
zones:
  when_missing: utc
  aliases:
    tokyo: Asia/Tokyo
log:
  level: debug
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if err := settings.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if _, err := timex.ResolveZone(timex.Zone("tokyo")); err != nil {
		t.Errorf("registered alias did not resolve: %v", err)
	}
	if dxlog.GetDefault().GetLevel() != dxlog.LevelDebug {
		t.Errorf("expected log level %v, got %v", dxlog.LevelDebug, dxlog.GetDefault().GetLevel())
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetSettings(t)

	path := writeSettingsFile(t, "empty.toml", "")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.WhenMissing != timex.ZoneUTC {
		t.Errorf("expected default when_missing %s, got %s", timex.ZoneUTC, settings.WhenMissing)
	}
	if settings.LogLevel != "" {
		t.Errorf("expected empty log level, got %s", settings.LogLevel)
	}
	if err := settings.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
}

func TestApplyRejectsBrokenEntries(t *testing.T) {
	resetSettings(t)

	testCases := []struct {
		name     string
		settings *Settings
	}{
		{
			name: "alias points at an unknown zone",
			settings: &Settings{
				WhenMissing: timex.ZoneUTC,
				Aliases:     map[string]string{"bad": "Nowhere/Special"},
			},
		},
		{
			name:     "unknown when_missing",
			settings: &Settings{WhenMissing: timex.Zone("Nowhere/Special")},
		},
		{
			name:     "unknown log level",
			settings: &Settings{WhenMissing: timex.ZoneUTC, LogLevel: "loud"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Apply()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !dxerror.HasCode(err, dxerror.CodeInvalidConfig) {
				t.Errorf("expected code %s, got %s", dxerror.CodeInvalidConfig, dxerror.GetCode(err))
			}
		})
	}

	// nothing from the broken calls was installed
	if _, err := timex.ResolveZone(timex.Zone("bad")); err == nil {
		t.Error("broken alias was registered despite the validation error")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
