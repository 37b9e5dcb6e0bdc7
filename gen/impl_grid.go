// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// impl_grid.go - Grid(rows, cols) generator.
//
// Row-major 2D lattice: vertex (i,j) has index i*cols+j; each vertex links
// to its right and bottom neighbor when in range. Deterministic, no
// options. Every cell of a grid with at least two cells has a neighbor,
// so there are no isolated vertices.
//
// Contract: rows, cols >= 1 and rows*cols >= 2.
// Complexity: O(rows*cols) time and space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/covercheck/core"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	minGridSize = 2
)

// Grid builds the rows x cols lattice graph.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < minGridDim || cols < minGridDim || rows*cols < minGridSize {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
	}

	n := rows * cols
	edges := make([]core.Edge, 0, 2*n)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			node := i*cols + j
			if j < cols-1 { // right neighbor
				edges = append(edges, core.Edge{U: node, V: node + 1})
			}
			if i < rows-1 { // bottom neighbor
				edges = append(edges, core.Edge{U: node, V: node + cols})
			}
		}
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrid, err)
	}

	return g, nil
}
