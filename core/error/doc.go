// Package error provides structured error handling for the datex library.
//
// Package: error
// Title: datex Structured Error Handling
// Description: This package implements a structured error type carrying error
//              codes, severity levels, operation context, and arbitrary
//              key-value details. Errors remain fully compatible with the
//              standard library's errors.Is/errors.As machinery, so callers
//              can branch on codes without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// The datex library distinguishes two main error classes:
//
//   - Precondition violations (CodeInvalidType): a value has the wrong shape
//     for the operation, for example a frame whose index has not been parsed
//     to timestamps, or a non-scalar handed to Format. These fail fast.
//   - Lookup failures (CodeZoneNotFound): a timezone identifier that the
//     IANA database does not know. The underlying loader error is wrapped,
//     not translated.
//
// Usage:
//
//	import dxerror "github.com/msto63/datex/core/error"
//
//	err := dxerror.New("frame index is not timestamp-typed").
//		WithCode(dxerror.CodeInvalidType).
//		WithOperation("datex.SetZone")
//
//	if dxerror.HasCode(err, dxerror.CodeInvalidType) {
//		// handle precondition violation
//	}
package error
