package internal

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when resolution, including the direct fallback
// scan, matches nothing.
var ErrNotFound = errors.New("chat not found")

// StorageError represents errors accessing the workspace storage tree.
type StorageError struct {
	Path string
	Op   string // "open", "read", "query"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents a stored value that could not be decoded into a
// chat. It never escapes ParseChat; callers only ever see nil.
type ParseError struct {
	ChatID string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.ChatID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError reports a numeric identifier outside the 1-based
// bounds of the current chat list. Distinct from ErrNotFound.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (list has %d chat(s))", e.Index, e.Count)
}
