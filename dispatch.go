// File: dispatch.go
// Title: Time-Axis Dispatch
// Description: Implements the internal shape dispatch shared by all public
//              operations: a single elementwise operation is applied along the
//              time axis of a frame, across a series of timestamps, or to a
//              scalar, preserving the input's shape and element order. Values
//              outside the documented shapes are logged and given a best-effort
//              scalar attempt before failing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package datex

import (
	"fmt"
	"time"

	dxerror "github.com/msto63/datex/core/error"
	dxlog "github.com/msto63/datex/core/log"
	"github.com/msto63/datex/utils/framex"
	"github.com/msto63/datex/utils/timex"
)

// ============================================================================
// Dispatch
// ============================================================================

// applyToTimeAxis applies op along the time axis of d and returns a value of
// the same shape:
//   - *framex.Frame: op runs over every index timestamp; columns are untouched
//   - framex.Series and []timex.Timestamp: op runs elementwise
//   - timex.Timestamp: op runs directly on the scalar
//   - time.Time: converted to an aware Timestamp, then treated as a scalar
//
// Any other type is logged as a warning and still gets a scalar attempt,
// which fails with CodeInvalidType. The permissive path keeps pipelines alive
// when a caller hands over a wrapped or aliased timestamp type by mistake,
// while the log line makes the slip visible.
func applyToTimeAxis(d interface{}, op framex.Op, operation string) (interface{}, error) {
	switch v := d.(type) {
	case *framex.Frame:
		index, err := v.Index().Apply(op)
		if err != nil {
			return nil, err
		}
		return v.WithIndex(index)
	case framex.Series:
		return v.Apply(op)
	case []timex.Timestamp:
		out, err := framex.Series(v).Apply(op)
		if err != nil {
			return nil, err
		}
		return []timex.Timestamp(out), nil
	case timex.Timestamp:
		return op(v)
	case time.Time:
		warnUnsupportedShape(operation, d)
		return op(timex.FromTime(v))
	default:
		warnUnsupportedShape(operation, d)
		return nil, dxerror.Newf("unsupported value type %T; expected *framex.Frame, framex.Series, []timex.Timestamp, or timex.Timestamp", d).
			WithCode(dxerror.CodeInvalidType).
			WithOperation(operation)
	}
}

// warnUnsupportedShape reports an input outside the documented shapes on the
// diagnostic logger before the scalar fallback runs.
func warnUnsupportedShape(operation string, d interface{}) {
	dxlog.Warn("applying a time-axis operation to a type other than designed for",
		dxlog.Fields{
			"operation": operation,
			"type":      fmt.Sprintf("%T", d),
		})
}
