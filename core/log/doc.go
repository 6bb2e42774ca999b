// Package log provides structured logging capabilities for the datex library.
//
// Package: log
// Title: datex Structured Logging
// Description: This package implements a small structured logging system with
//              contextual fields, text and JSON output formats, log levels,
//              and integration with the datex error handling system. The
//              shape-dispatch layer of the library uses it for its non-fatal
//              diagnostic warnings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// Output goes to stderr by default so that programs using the library keep
// stdout for their own data.
//
// Usage:
//
//	import dxlog "github.com/msto63/datex/core/log"
//
//	logger := dxlog.New().WithName("datex").WithLevel(dxlog.LevelDebug)
//	logger.Warn("zone operation on unsupported type", dxlog.Fields{"type": "int"})
package log
