package array

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is reported when an index falls outside an operation's
// valid bounds. Match it with errors.Is; the concrete error is always a
// *RangeError carrying the diagnostic detail.
var ErrOutOfRange = errors.New("array: index out of range")

// RangeError describes an index that violated an operation's valid range.
type RangeError struct {
	Op    string // "get", "insert", or "delete"
	Index int    // offending index
	Size  int    // size at the time of the call
}

// Error renders the valid range the way the operation defines it:
// insert accepts index == size, so its upper bound is inclusive.
func (e *RangeError) Error() string {
	if e.Op == "insert" {
		return fmt.Sprintf("array: %s index %d out of range [0, %d]", e.Op, e.Index, e.Size)
	}
	return fmt.Sprintf("array: %s index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// Unwrap returns ErrOutOfRange so callers can match with errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
