// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// impl_bipartite.go - Bipartite(n1, n2, prob) generator.
//
// Canonical model:
//   - Guarantee step: every left vertex i gets one random right partner and
//     every right vertex gets one random left partner, so minimum degree is
//     1 on both sides before any probabilistic edge.
//   - Overlay: each remaining cross pair is added independently with
//     probability prob.
//   - The right part is numbered n1..n1+n2-1.
//
// Output is deduplicated: edge identity is order-independent and the
// guarantee step can collide with the overlay. First occurrence wins, so
// the emitted order stays deterministic for a fixed seed.
//
// Contract: n1, n2 >= 1; prob in [0,1].
// Complexity: O(n1*n2) trials, O(m) space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/covercheck/core"
)

const (
	methodBipartite      = "Bipartite"
	minPartitionVertices = 1
)

// Bipartite samples a random bipartite graph with guaranteed minimum
// degree 1 on both sides.
func Bipartite(n1, n2 int, prob float64, opts ...Option) (*core.Graph, error) {
	if n1 < minPartitionVertices || n2 < minPartitionVertices {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w", methodBipartite, n1, n2, minPartitionVertices, ErrTooFewVertices)
	}
	if prob < probMin || prob > probMax {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodBipartite, prob, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng

	n := n1 + n2
	seen := make(map[core.Edge]struct{}, n)
	edges := make([]core.Edge, 0, n)

	// appendUnique keeps the first occurrence of each normalized edge.
	appendUnique := func(e core.Edge) {
		key := e.Normalize()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, e)
	}

	// Guarantee step, left side: one random right partner each.
	for i := 0; i < n1; i++ {
		appendUnique(core.Edge{U: i, V: n1 + rng.Intn(n2)})
	}

	// Guarantee step, right side: one random left partner each.
	for i := 0; i < n2; i++ {
		appendUnique(core.Edge{U: rng.Intn(n1), V: n1 + i})
	}

	// Probabilistic overlay over all cross pairs, stable order.
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			if rng.Float64() < prob {
				appendUnique(core.Edge{U: i, V: n1 + j})
			}
		}
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, err)
	}

	return g, nil
}
