// SPDX-License-Identifier: MIT
// Package: covercheck/codec
//
// errors.go - sentinel errors and the ParseError type.

package codec

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates structurally invalid interchange content: a bad
// header, non-integer tokens, wrong line counts, or out-of-range vertex
// ids. Every *ParseError wraps it.
var ErrMalformed = errors.New("codec: malformed interchange file")

// ErrUnreadable indicates the interchange file could not be opened or
// read. The sweep-level policy is to skip the file and continue.
var ErrUnreadable = errors.New("codec: file unreadable")

// ParseError reports malformed content with file and line context.
// Line is 1-based; 0 means the error concerns the file as a whole.
type ParseError struct {
	File string
	Line int
	Msg  string
}

// Error renders "file:line: msg" (or "file: msg" for whole-file errors).
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("codec: %s:%d: %s", e.File, e.Line, e.Msg)
	}

	return fmt.Sprintf("codec: %s: %s", e.File, e.Msg)
}

// Unwrap lets errors.Is(err, ErrMalformed) see through the context.
func (e *ParseError) Unwrap() error { return ErrMalformed }

// parseErrorf builds a *ParseError with formatted context.
func parseErrorf(file string, line int, format string, args ...interface{}) error {
	return &ParseError{File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
}
