// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// impl_cycle_chords.go - CycleWithChords(n, numChords) generator.
//
// Canonical model:
//   - Base cycle (i, (i+1) mod n): 2-regular and connected, so no isolated
//     vertices regardless of how many chords land.
//   - Chord overlay: up to numChords extra edges (i,j) drawn uniformly,
//     rejecting endpoints that coincide, are cycle-adjacent (including the
//     n-1/0 wrap pair, which the duplicate check catches), or duplicate an
//     existing edge.
//
// Bounded retry: sampling stops after 10*numChords failed attempts and the
// graph is returned with however many chords landed. This is a deliberate
// policy, not a loop hazard: dense parameter choices may admit fewer
// chords than requested.
//
// Contract: n >= 3; numChords >= 0.
// Complexity: O(n + numChords) expected, O(n + numChords) space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/covercheck/core"
)

const (
	methodCycleChords = "CycleWithChords"
	minCycleVertices  = 3

	// chordAttemptFactor bounds total sampling attempts at
	// chordAttemptFactor * numChords.
	chordAttemptFactor = 10
)

// CycleWithChords builds an n-cycle and overlays up to numChords random
// chords.
func CycleWithChords(n, numChords int, opts ...Option) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycleChords, n, minCycleVertices, ErrTooFewVertices)
	}
	if numChords < 0 {
		return nil, fmt.Errorf("%s: numChords=%d: %w", methodCycleChords, numChords, ErrBadChordCount)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng

	edges := make([]core.Edge, 0, n+numChords)
	seen := make(map[core.Edge]struct{}, n+numChords)

	// Base cycle.
	for i := 0; i < n; i++ {
		e := core.Edge{U: i, V: (i + 1) % n}
		edges = append(edges, e)
		seen[e.Normalize()] = struct{}{}
	}

	// Chord overlay with bounded retries.
	added, attempts := 0, 0
	for added < numChords && attempts < numChords*chordAttemptFactor {
		attempts++
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j || i-j == 1 || j-i == 1 {
			continue // loop or cycle-adjacent
		}
		key := core.Edge{U: i, V: j}.Normalize()
		if _, dup := seen[key]; dup {
			continue // already present (covers the n-1/0 wrap pair)
		}
		seen[key] = struct{}{}
		edges = append(edges, core.Edge{U: i, V: j})
		added++
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycleChords, err)
	}

	return g, nil
}
