// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// impl_random_connected.go - RandomConnected(n, edgeProb) generator.
//
// Canonical model:
//   - Spanning tree first: vertex i (1..n-1) attaches to a uniformly random
//     earlier vertex in 0..i-1, guaranteeing connectivity and therefore
//     zero isolated vertices before any probabilistic edge is considered.
//   - Erdős–Rényi overlay: each unordered pair {i,j}, i<j, is then added
//     independently with probability edgeProb.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices); edgeProb in [0,1] (else
//     ErrInvalidProbability).
//   - A tree edge may be duplicated by the overlay; the raw sequence keeps
//     both (core.Graph permits duplicates, EdgeSet collapses them).
//
// Determinism:
//   - Stable draw order: tree attachments i asc, then pairs i asc, j asc.
//     Fixed seed therefore yields a byte-identical edge sequence.
//
// Complexity: O(n^2) Bernoulli trials, O(m) space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/covercheck/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 2
	probMin               = 0.0
	probMax               = 1.0
)

// RandomConnected samples a connected random graph over n vertices with
// overlay edge probability edgeProb.
func RandomConnected(n int, edgeProb float64, opts ...Option) (*core.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomVertices, ErrTooFewVertices)
	}
	if edgeProb < probMin || edgeProb > probMax {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomConnected, edgeProb, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng

	edges := make([]core.Edge, 0, n-1)

	// Spanning tree: attach each new vertex to a random earlier one.
	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		edges = append(edges, core.Edge{U: parent, V: i})
	}

	// Probabilistic overlay over all unordered pairs, stable order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < edgeProb {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		}
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}

	return g, nil
}
