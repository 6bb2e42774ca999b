// File: frame.go
// Title: Tabular Container
// Description: Implements a minimal tabular container whose row index is the
//              addressable timestamp axis: an Index that is either raw string
//              labels or timestamp-typed, a Series of timestamps, and a Frame
//              of named columns over an index.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with Index, Series, and Frame

package framex

import (
	"fmt"
	"strings"

	dxerror "github.com/msto63/datex/core/error"
	"github.com/msto63/datex/utils/timex"
)

// Op is an elementwise timestamp transformation applied along the time axis
type Op func(timex.Timestamp) (timex.Timestamp, error)

// Index is a frame's row index. It starts out as raw string labels and
// becomes timestamp-typed once parsed; timezone operations require the
// timestamp-typed state.
type Index struct {
	labels []string
	times  []timex.Timestamp
	isTime bool
}

// NewIndex creates a raw string-label index
func NewIndex(labels []string) Index {
	copied := make([]string, len(labels))
	copy(copied, labels)
	return Index{labels: copied}
}

// NewTimeIndex creates a timestamp-typed index
func NewTimeIndex(times []timex.Timestamp) Index {
	copied := make([]timex.Timestamp, len(times))
	copy(copied, times)
	return Index{times: copied, isTime: true}
}

// IsTime returns true if the index is timestamp-typed
func (ix Index) IsTime() bool {
	return ix.isTime
}

// Len returns the number of index entries
func (ix Index) Len() int {
	if ix.isTime {
		return len(ix.times)
	}
	return len(ix.labels)
}

// Labels returns the raw string labels of an unparsed index
func (ix Index) Labels() []string {
	return ix.labels
}

// Times returns the timestamps of a timestamp-typed index
func (ix Index) Times() []timex.Timestamp {
	return ix.times
}

// Apply transforms every index timestamp with op, preserving length and
// order. The index must be timestamp-typed.
func (ix Index) Apply(op Op) (Index, error) {
	if !ix.isTime {
		return Index{}, dxerror.New("index is not timestamp-typed; use Parse to convert it first").
			WithCode(dxerror.CodeInvalidType).
			WithOperation("framex.Index.Apply")
	}

	out := make([]timex.Timestamp, len(ix.times))
	for i, ts := range ix.times {
		transformed, err := op(ts)
		if err != nil {
			return Index{}, err
		}
		out[i] = transformed
	}
	return Index{times: out, isTime: true}, nil
}

// Series is an ordered sequence of timestamps
type Series []timex.Timestamp

// Apply transforms every element with op, preserving length and order
func (s Series) Apply(op Op) (Series, error) {
	out := make(Series, len(s))
	for i, ts := range s {
		transformed, err := op(ts)
		if err != nil {
			return nil, err
		}
		out[i] = transformed
	}
	return out, nil
}

// Column is a named column of opaque values
type Column struct {
	Name   string
	Values []interface{}
}

// Frame is a table of named columns over a row index. The index is the
// addressable timestamp axis; column data passes through timezone
// operations untouched.
type Frame struct {
	index   Index
	columns []Column
}

// New creates a frame over the given index. Every column must have exactly
// one value per index entry.
func New(index Index, columns ...Column) (*Frame, error) {
	for _, col := range columns {
		if len(col.Values) != index.Len() {
			return nil, dxerror.Newf("column %q has %d values for %d index entries",
				col.Name, len(col.Values), index.Len()).
				WithCode(dxerror.CodeValidationFailed).
				WithOperation("framex.New")
		}
	}

	copied := make([]Column, len(columns))
	copy(copied, columns)
	return &Frame{index: index, columns: copied}, nil
}

// Index returns the frame's row index
func (f *Frame) Index() Index {
	return f.index
}

// Columns returns the frame's columns in order
func (f *Frame) Columns() []Column {
	return f.columns
}

// Column returns the named column
func (f *Frame) Column(name string) (Column, bool) {
	for _, col := range f.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return f.index.Len()
}

// WithIndex returns a copy of the frame with a replaced index of equal
// length; the columns are carried over unchanged
func (f *Frame) WithIndex(index Index) (*Frame, error) {
	if index.Len() != f.index.Len() {
		return nil, dxerror.Newf("replacement index has %d entries for %d rows",
			index.Len(), f.index.Len()).
			WithCode(dxerror.CodeValidationFailed).
			WithOperation("framex.Frame.WithIndex")
	}

	columns := make([]Column, len(f.columns))
	copy(columns, f.columns)
	return &Frame{index: index, columns: columns}, nil
}

// String renders a compact tabular view, for logging and debugging
func (f *Frame) String() string {
	var sb strings.Builder

	sb.WriteString("index")
	for _, col := range f.columns {
		sb.WriteString("\t")
		sb.WriteString(col.Name)
	}
	sb.WriteString("\n")

	for i := 0; i < f.index.Len(); i++ {
		if f.index.isTime {
			sb.WriteString(f.index.times[i].String())
		} else {
			sb.WriteString(f.index.labels[i])
		}
		for _, col := range f.columns {
			sb.WriteString(fmt.Sprintf("\t%v", col.Values[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
