// File: settings.go
// Title: Library Settings
// Description: Implements the optional file-based configuration bridge: a
//              TOML or YAML settings file can register zone aliases, change
//              the default fallback zone for naive inputs, and adjust the
//              diagnostic log level. Everything in the file is optional; an
//              absent file is simply not loaded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	dxconfig "github.com/msto63/datex/core/config"
	dxerror "github.com/msto63/datex/core/error"
	dxlog "github.com/msto63/datex/core/log"
	"github.com/msto63/datex/utils/timex"
)

// ============================================================================
// Settings
// ============================================================================

// Settings is the library configuration read from a settings file.
//
// File layout (TOML shown; YAML works the same):
//
//	[zones]
//	when_missing = "utc"
//	[zones.aliases]
//	nyse = "America/New_York"
//	lse = "Europe/London"
//
//	[log]
//	level = "warn"
type Settings struct {
	// WhenMissing replaces the package default fallback zone attached to
	// naive timestamps by SetZone when the caller omits one.
	WhenMissing timex.Zone

	// Aliases maps short zone names to IANA names; each entry is registered
	// with timex.RegisterAlias.
	Aliases map[string]string

	// LogLevel, when non-empty, is applied to the default diagnostic
	// logger.
	LogLevel string
}

// LoadSettings reads a TOML or YAML settings file, detected by extension.
// The returned Settings carry the file's values; nothing takes effect until
// Apply is called.
func LoadSettings(filePath string) (*Settings, error) {
	cfg, err := dxconfig.Load(filePath)
	if err != nil {
		return nil, err
	}
	return &Settings{
		WhenMissing: timex.Zone(cfg.GetString("zones.when_missing", string(timex.ZoneUTC))),
		Aliases:     cfg.GetStringMap("zones.aliases"),
		LogLevel:    cfg.GetString("log.level", ""),
	}, nil
}

// Apply validates the settings and installs them process-wide: aliases are
// registered, the fallback zone replaces the package default, and the log
// level is set on the default logger. A broken entry fails with
// CodeInvalidConfig before anything else from the same call is installed.
func (s *Settings) Apply() error {
	for name, iana := range s.Aliases {
		if _, err := timex.ResolveZone(timex.Zone(iana)); err != nil {
			return dxerror.Wrap(err, "zone alias points at an unknown zone").
				WithCode(dxerror.CodeInvalidConfig).
				WithOperation("datex.Settings.Apply").
				WithDetail("alias", name).
				WithDetail("target", iana)
		}
	}
	if !s.WhenMissing.IsNone() {
		if _, err := timex.ResolveZone(s.WhenMissing); err != nil {
			return dxerror.Wrap(err, "when_missing is not a known zone").
				WithCode(dxerror.CodeInvalidConfig).
				WithOperation("datex.Settings.Apply")
		}
	}
	if s.LogLevel != "" {
		level, err := dxlog.ParseLevel(s.LogLevel)
		if err != nil {
			return dxerror.Wrap(err, "invalid log level").
				WithCode(dxerror.CodeInvalidConfig).
				WithOperation("datex.Settings.Apply")
		}
		dxlog.GetDefault().SetLevel(level)
	}

	for name, iana := range s.Aliases {
		timex.RegisterAlias(name, iana)
	}
	if !s.WhenMissing.IsNone() {
		defaultWhenMissing = s.WhenMissing
	}
	return nil
}
