// File: zones.go
// Title: Timezone Registry and Resolution
// Description: Defines the symbolic timezone registry, the local-timezone
//              resolver, and cached resolution of timezone identifiers to
//              time.Location values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with registry and cache

package timex

import (
	"os"
	"strings"
	"sync"
	"time"

	dxerror "github.com/msto63/datex/core/error"
)

// Zone is a timezone identifier: an IANA database name, one of the symbolic
// constants below, or one of the two sentinels ZoneLocal and ZoneNone.
type Zone string

// Standard timezone names.
//
// EST and EDT are deliberately excluded: seasonal abbreviations do not track
// daylight-saving transitions. Use ZoneUSEast instead.
const (
	ZoneUTC    Zone = "utc"
	ZoneNYC    Zone = "America/New_York"
	ZoneUSEast Zone = "US/Eastern"
	ZoneLondon Zone = "Europe/London"
)

// Sentinels.
const (
	// ZoneLocal means "the host machine's configured timezone"
	ZoneLocal Zone = "localtz"

	// ZoneNone means "no timezone"
	ZoneNone Zone = ""
)

// String returns the identifier string for the zone
func (z Zone) String() string {
	return string(z)
}

// IsNone returns true for the "no timezone" sentinel
func (z Zone) IsNone() bool {
	return z == ZoneNone
}

// IsLocal returns true for the "host local timezone" sentinel
func (z Zone) IsLocal() bool {
	return z == ZoneLocal
}

// Host queries, replaceable in tests (see package doc). The library reads the
// host clock and timezone only through these two variables.
var (
	// NowFunc returns the host's current time
	NowFunc = time.Now

	// LocalZoneFunc returns the host's configured timezone identifier
	LocalZoneFunc = detectLocalZone
)

// LocalZone returns the identifier string of the host's configured timezone
func LocalZone() string {
	return LocalZoneFunc()
}

// detectLocalZone resolves the host timezone from the TZ environment
// variable, then the /etc/localtime symlink, falling back to Go's "Local"
func detectLocalZone() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		// TZ set but empty means UTC
		if tz == "" {
			return "UTC"
		}
		tz = strings.TrimPrefix(tz, ":")
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if idx := strings.Index(link, "zoneinfo/"); idx != -1 {
			return link[idx+len("zoneinfo/"):]
		}
	}

	return "Local"
}

// Alias table for additional name→IANA mappings, fed from configuration
var (
	aliases = make(map[string]string)
	aliasMu sync.RWMutex
)

// RegisterAlias maps an additional zone name to an IANA identifier. The
// resolver consults aliases before the IANA database, so an alias can be
// any spelling convenient to the caller.
func RegisterAlias(name, iana string) {
	aliasMu.Lock()
	defer aliasMu.Unlock()

	aliases[name] = iana
}

// ResetAliases removes all registered aliases
func ResetAliases() {
	aliasMu.Lock()
	defer aliasMu.Unlock()

	aliases = make(map[string]string)
}

// Timezone cache for commonly used locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// ResolveZone resolves a zone identifier to a time.Location. The ZoneLocal
// sentinel resolves to the host timezone first. Unknown identifiers return a
// ZONE_NOT_FOUND error wrapping the loader error.
func ResolveZone(z Zone) (*time.Location, error) {
	if z.IsLocal() {
		z = Zone(LocalZone())
	}

	name := strings.TrimSpace(string(z))
	if name == "" {
		return nil, dxerror.New("cannot resolve an empty timezone identifier").
			WithCode(dxerror.CodeInvalidInput).
			WithOperation("timex.ResolveZone")
	}

	switch strings.ToLower(name) {
	case "utc", "gmt":
		return time.UTC, nil
	case "local":
		return time.Local, nil
	}

	aliasMu.RLock()
	if target, ok := aliases[name]; ok {
		name = target
	}
	aliasMu.RUnlock()

	return cachedLocation(name)
}

// cachedLocation returns a cached timezone location or loads and caches it
func cachedLocation(name string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[name]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, dxerror.Wrap(err, "unknown timezone identifier: "+name).
			WithCode(dxerror.CodeZoneNotFound).
			WithOperation("timex.ResolveZone").
			WithDetail("zone", name)
	}

	timezoneMu.Lock()
	timezoneCache[name] = loc
	timezoneMu.Unlock()

	return loc, nil
}
