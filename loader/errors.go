// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: loader sentinel errors and the line-scoped FormatError.

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates a malformed edge line. Concrete failures are *FormatError.
	ErrFormat = errors.New("loader: malformed edge line")

	// ErrNotFound indicates the edge file does not exist.
	// Errors carrying it also match fs.ErrNotExist.
	ErrNotFound = errors.New("loader: edge file not found")
)

// FormatError reports the first malformed line of an edge list.
// It matches ErrFormat via errors.Is and unwraps to the underlying cause.
type FormatError struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason string // short description of the violation
	Err    error  // underlying parse or store error, may be nil
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loader: line %d %q: %s: %v", e.Line, e.Text, e.Reason, e.Err)
	}

	return fmt.Sprintf("loader: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Is lets errors.Is(err, ErrFormat) succeed for any *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }

// notFoundError joins ErrNotFound with the filesystem error so both
// loader.ErrNotFound and fs.ErrNotExist match.
type notFoundError struct {
	path string
	err  error
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.path)
}

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *notFoundError) Unwrap() error { return e.err }
