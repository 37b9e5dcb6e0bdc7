// SPDX-License-Identifier: MIT

// Package gen constructs the five structurally guaranteed graph families
// the harness benchmarks against: random-connected, complete, bipartite,
// grid, and cycle-with-chords.
//
// Every generator is a pure function (parameters, options) -> *core.Graph.
// Stochastic families draw from a seeded math/rand stream resolved via
// functional options (WithSeed / WithRand), so the same seed and
// parameters always reproduce the identical edge sequence.
//
// Structural guarantee: for valid parameters every produced graph has
// zero isolated vertices, which is the precondition for edge-cover
// computation downstream. Invalid parameters fail fast with sentinel
// errors; generators never silently degrade.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the family minimum.
//	ErrInvalidProbability - edge probability outside [0,1].
//	ErrBadChordCount      - negative chord count.
package gen
