// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// impl_complete.go - Complete(n) generator.
//
// K_n: every unordered pair {i,j}, i<j, in ascending order. No randomness,
// no options. Minimum degree n-1 >= 1 for n >= 2, so no isolated vertices.
//
// Complexity: O(n^2) time, O(n^2) space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/covercheck/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 2
)

// Complete builds the complete simple graph K_n.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{U: i, V: j})
		}
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	return g, nil
}
