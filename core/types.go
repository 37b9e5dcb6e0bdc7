// SPDX-License-Identifier: MIT
// Package: covercheck/core
//
// types.go - Edge and Graph declarations, sentinel errors, constructor.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates a negative vertex count was supplied.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexRange indicates an edge endpoint outside [0, VertexCount).
	ErrVertexRange = errors.New("core: vertex index out of range")
)

// Edge is an undirected connection between two vertices.
// The zero orientation is whatever the producer emitted; use Normalize
// before treating edges as set members.
type Edge struct {
	U, V int
}

// Normalize returns the canonical (min,max) orientation of e.
// Complexity: O(1).
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Graph is an immutable undirected graph over vertices 0..n-1.
// Construct via New; the zero value is a valid empty graph.
type Graph struct {
	vertexCount int
	edges       []Edge
}

// New builds a Graph from a vertex count and an edge sequence.
// The edge slice is copied; callers keep ownership of their slice.
// Duplicate edges are preserved (see EdgeSet for the deduplicated view).
//
// Errors: ErrBadVertexCount, ErrSelfLoop, ErrVertexRange.
// Complexity: O(m) time and space.
func New(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("core: New(n=%d): %w", vertexCount, ErrBadVertexCount)
	}
	for i, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("core: New: edge %d (%d,%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, fmt.Errorf("core: New: edge %d (%d,%d) with n=%d: %w", i, e.U, e.V, vertexCount, ErrVertexRange)
		}
	}

	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return &Graph{vertexCount: vertexCount, edges: cp}, nil
}

// MustNew is New but panics on error. Intended for fixtures and examples
// where the input is a literal known to be well-formed.
func MustNew(vertexCount int, edges []Edge) *Graph {
	g, err := New(vertexCount, edges)
	if err != nil {
		panic(err)
	}

	return g
}
