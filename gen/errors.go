// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// errors.go - sentinel errors for the generator package.
//
// Error policy (teacher-grade strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping; they never panic.

package gen

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2, rows, cols)
// is smaller than the minimum the requested family supports.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* reject configuration */ }.
var ErrTooFewVertices = errors.New("gen: size parameter too small")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrBadChordCount indicates a negative chord count for CycleWithChords.
var ErrBadChordCount = errors.New("gen: chord count must be non-negative")
