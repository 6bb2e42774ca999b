// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the datex library. These codes enable structured error handling
//              and let callers distinguish precondition violations from lookup
//              failures without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with datex error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the datex library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Shape and type preconditions
	CodeInvalidType Code = "INVALID_TYPE"

	// Timezone resolution
	CodeZoneNotFound Code = "ZONE_NOT_FOUND"

	// Parsing and units
	CodeParseFailed Code = "PARSE_FAILED"
	CodeInvalidUnit Code = "INVALID_UNIT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidType, CodeZoneNotFound, CodeParseFailed, CodeInvalidUnit,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidType:
		return "precondition"
	case CodeZoneNotFound:
		return "lookup"
	case CodeParseFailed, CodeInvalidUnit:
		return "parsing"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
