// SPDX-License-Identifier: MIT
// Package: covercheck/cover
//
// set.go - the normalized edge set underlying every cover.

package cover

import (
	"sort"

	"github.com/katalvlaran/covercheck/core"
)

// Set is a set of normalized edges. The zero value is not usable;
// construct via NewSet.
type Set map[core.Edge]struct{}

// NewSet builds a Set from raw edges, normalizing each to (min,max)
// orientation. Duplicates collapse silently.
// Complexity: O(len(edges)).
func NewSet(edges ...core.Edge) Set {
	s := make(Set, len(edges))
	for _, e := range edges {
		s[e.Normalize()] = struct{}{}
	}

	return s
}

// Add inserts e (normalized) into the set.
func (s Set) Add(e core.Edge) { s[e.Normalize()] = struct{}{} }

// Has reports membership of e under normalization.
func (s Set) Has(e core.Edge) bool {
	_, ok := s[e.Normalize()]

	return ok
}

// Len returns the number of distinct edges.
func (s Set) Len() int { return len(s) }

// Equal reports whether s and other contain exactly the same edges.
// Complexity: O(len(s)).
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}

	return true
}

// Edges returns the members sorted by (U,V) for deterministic output.
// Complexity: O(k log k).
func (s Set) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
