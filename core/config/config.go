// File: config.go
// Title: Configuration Loading
// Description: Implements loading and accessing configuration data from TOML
//              and YAML files with format auto-detection and dot-notation
//              key access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	dxerror "github.com/msto63/datex/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with dot-notation access
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	// Format of the file (default: auto-detect from extension)
	Format Format

	// Defaults are applied for keys absent from the file
	Defaults map[string]interface{}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, dxerror.New("config file path cannot be empty").
			WithCode(dxerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dxerror.Newf("config file not found: %s", filePath).
				WithCode(dxerror.CodeMissingConfig).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, dxerror.Wrap(err, "reading config file failed").
			WithCode(dxerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, dxerror.Wrap(err, "parsing TOML config failed").
				WithCode(dxerror.CodeInvalidConfig).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, dxerror.Wrap(err, "parsing YAML config failed").
				WithCode(dxerror.CodeInvalidConfig).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
	default:
		return nil, dxerror.Newf("unsupported config format for %s", filePath).
			WithCode(dxerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	for key, value := range options.Defaults {
		if _, exists := lookup(data, key); !exists {
			data[key] = value
		}
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Has checks whether the given dot-notation key exists
func (c *Config) Has(key string) bool {
	_, exists := lookup(c.data, key)
	return exists
}

// Get returns the raw value for a dot-notation key
func (c *Config) Get(key string) (interface{}, bool) {
	return lookup(c.data, key)
}

// GetString returns the string value for a key, or the fallback
func (c *Config) GetString(key, fallback string) string {
	if value, exists := lookup(c.data, key); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return fallback
}

// GetBool returns the boolean value for a key, or the fallback
func (c *Config) GetBool(key string, fallback bool) bool {
	if value, exists := lookup(c.data, key); exists {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return fallback
}

// GetInt returns the integer value for a key, or the fallback
func (c *Config) GetInt(key string, fallback int) int {
	if value, exists := lookup(c.data, key); exists {
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return fallback
}

// GetStringMap returns a nested table as a map of strings. Non-string
// values are skipped.
func (c *Config) GetStringMap(key string) map[string]string {
	out := make(map[string]string)

	value, exists := lookup(c.data, key)
	if !exists {
		return out
	}

	switch table := value.(type) {
	case map[string]interface{}:
		for k, v := range table {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
	case map[interface{}]interface{}: // yaml.v3 nested tables
		for k, v := range table {
			ks, kok := k.(string)
			vs, vok := v.(string)
			if kok && vok {
				out[ks] = vs
			}
		}
	}

	return out
}

// lookup walks nested tables following dot notation
func lookup(data map[string]interface{}, key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	current := interface{}(data)

	for _, part := range parts {
		switch table := current.(type) {
		case map[string]interface{}:
			value, exists := table[part]
			if !exists {
				return nil, false
			}
			current = value
		case map[interface{}]interface{}:
			value, exists := table[part]
			if !exists {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}

	return current, true
}
