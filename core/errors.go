package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the report pipeline.
var (
	// ErrInputNotFound means the input path does not exist or cannot be inspected.
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrEmptyDataset means the input produced no usable records.
	ErrEmptyDataset = errors.New("no valid data found")

	// ErrEmptySeries means statistics were requested for an empty sequence.
	ErrEmptySeries = errors.New("series is empty")

	// ErrMissingColumn means the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNotFinite means a numeric cell parsed to NaN or an infinity.
	ErrNotFinite = errors.New("value is not a finite number")
)

// ParseError describes a header or row the parser could not use.
// Line is 1-based and counts physical lines, so quoted newlines shift it.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
