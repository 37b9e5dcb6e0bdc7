// SPDX-License-Identifier: MIT
// Package: covercheck/codec
//
// decode.go - structured decoder for the interchange format.
//
// Contract:
//   - Exactly 1+m+k non-blank lines (trailing blank lines tolerated).
//   - Header: three non-negative integers n, m, k.
//   - Edge and cover lines: two integers each, both in [0, n), u != v.
//   - Cover edges normalize and deduplicate; |cover| <= k is legal.
//   - Returns (*core.Graph, cover.Set, declared k, error); never panics.

package codec

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
)

const (
	headerFields = 3
	edgeFields   = 2
)

// Decode parses one interchange document from r. The name appears in
// error context only (use the file name or any document identity).
// Complexity: O(bytes + m + k).
func Decode(r io.Reader, name string) (*core.Graph, cover.Set, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("codec: read %s: %w", name, wrapUnreadable(err))
	}

	lines := strings.Split(string(data), "\n")
	// Drop trailing blank lines; they are not content.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, nil, 0, parseErrorf(name, 0, "empty file")
	}

	// Header: n m k.
	header := strings.Fields(lines[0])
	if len(header) != headerFields {
		return nil, nil, 0, parseErrorf(name, 1, "header needs %d integers, got %d tokens", headerFields, len(header))
	}
	n, err := parseCount(header[0])
	if err != nil {
		return nil, nil, 0, parseErrorf(name, 1, "vertex count: %v", err)
	}
	m, err := parseCount(header[1])
	if err != nil {
		return nil, nil, 0, parseErrorf(name, 1, "edge count: %v", err)
	}
	k, err := parseCount(header[2])
	if err != nil {
		return nil, nil, 0, parseErrorf(name, 1, "cover size: %v", err)
	}

	// Validate declared counts against actual content length before
	// indexing anywhere.
	want := 1 + m + k
	if len(lines) != want {
		return nil, nil, 0, parseErrorf(name, 0, "declared %d lines (1+%d+%d), found %d", want, m, k, len(lines))
	}

	// Graph edges: lines 2..m+1.
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		lineNo := 2 + i
		e, perr := parseEdge(name, lineNo, lines[lineNo-1], n)
		if perr != nil {
			return nil, nil, 0, perr
		}
		edges = append(edges, e)
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, nil, 0, parseErrorf(name, 0, "invalid graph: %v", err)
	}

	// Cover edges: lines m+2..m+1+k, normalized and deduplicated.
	set := cover.NewSet()
	for i := 0; i < k; i++ {
		lineNo := 2 + m + i
		e, perr := parseEdge(name, lineNo, lines[lineNo-1], n)
		if perr != nil {
			return nil, nil, 0, perr
		}
		set.Add(e)
	}

	return g, set, k, nil
}

// DecodeFile opens, fully reads, and parses path. The file handle is
// released before parsing begins. A missing or unreadable file wraps
// ErrUnreadable so sweep drivers can skip it and continue.
func DecodeFile(path string) (*core.Graph, cover.Set, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("codec: %s: %v: %w", path, err, ErrUnreadable)
	}

	return Decode(strings.NewReader(string(data)), path)
}

// parseCount parses a non-negative integer token.
func parseCount(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", tok)
	}
	if v < 0 {
		return 0, fmt.Errorf("%d is negative", v)
	}

	return v, nil
}

// parseEdge parses one "u v" line and range-checks both endpoints.
func parseEdge(file string, lineNo int, line string, n int) (core.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != edgeFields {
		return core.Edge{}, parseErrorf(file, lineNo, "edge line needs %d integers, got %d tokens", edgeFields, len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, parseErrorf(file, lineNo, "%q is not an integer", fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, parseErrorf(file, lineNo, "%q is not an integer", fields[1])
	}
	if u < 0 || u >= n || v < 0 || v >= n {
		return core.Edge{}, parseErrorf(file, lineNo, "edge (%d,%d) outside [0,%d)", u, v, n)
	}

	return core.Edge{U: u, V: v}, nil
}

// wrapUnreadable maps low-level read failures onto the resource sentinel.
func wrapUnreadable(err error) error {
	return fmt.Errorf("%v: %w", err, ErrUnreadable)
}
