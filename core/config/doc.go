// Package config provides configuration loading for programs embedding the
// datex library.
//
// Package: config
// Title: TOML/YAML Configuration Loading
// Description: This package implements loading configuration data from TOML
//              and YAML files, with format auto-detection from the file
//              extension, defaults for absent keys, and dot-notation access
//              to nested tables. The datex library itself reads no files or
//              environment implicitly; configuration is opt-in at the
//              program boundary (see datex.LoadSettings).
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.Load("datex.toml")
//	if err != nil {
//		return err
//	}
//	level := cfg.GetString("log.level", "info")
//	aliases := cfg.GetStringMap("zones.aliases")
package config
