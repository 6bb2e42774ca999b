// Package framex provides a minimal tabular container for the datex library.
//
// Package: framex
// Title: Tabular Container with a Timestamp Axis
// Description: This package defines the Frame, Series, and Index types the
//              datex shape dispatch operates on. A Frame is a table of named
//              columns over a row index; the index is the addressable time
//              axis, and timezone operations transform it while leaving the
//              column data untouched. A Series is a plain ordered sequence
//              of timestamps transformed elementwise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// An Index starts out as raw string labels (as loaded from some external
// source) and becomes timestamp-typed through datex.Parse. Timezone
// operations on a frame whose index is still raw fail with an INVALID_TYPE
// error naming the required prior conversion.
package framex
