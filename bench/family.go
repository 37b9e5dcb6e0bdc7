// SPDX-License-Identifier: MIT
// Package: covercheck/bench
//
// family.go - graph family enum and the trial Spec.

package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/gen"
)

// ErrUnknownFamily indicates a family name with no generator behind it.
var ErrUnknownFamily = errors.New("bench: unknown graph family")

// Family identifies one of the five generator families.
type Family int

const (
	// FamilyRandom is the random-connected family (spanning tree plus
	// Erdős–Rényi overlay).
	FamilyRandom Family = iota

	// FamilyComplete is K_n.
	FamilyComplete

	// FamilyBipartite is the two-sided random bipartite family.
	FamilyBipartite

	// FamilyGrid is the rows x cols lattice.
	FamilyGrid

	// FamilyCycleChords is the n-cycle with random chords.
	FamilyCycleChords
)

// familyNames are the canonical string forms, used by String and the
// YAML plan decoder.
var familyNames = map[Family]string{
	FamilyRandom:      "random",
	FamilyComplete:    "complete",
	FamilyBipartite:   "bipartite",
	FamilyGrid:        "grid",
	FamilyCycleChords: "cycle-chords",
}

// String returns the canonical family name.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily resolves a canonical name back to its Family.
func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("bench: %q: %w", name, ErrUnknownFamily)
}

// Spec describes one trial: which family to generate and with which
// parameters. Unused fields for a family are ignored by Build.
type Spec struct {
	Label  string  `yaml:"label"`
	Family Family  `yaml:"-"`
	N      int     `yaml:"n"`      // vertices (random, complete, cycle-chords); left part for bipartite
	N2     int     `yaml:"n2"`     // bipartite right part
	Rows   int     `yaml:"rows"`   // grid
	Cols   int     `yaml:"cols"`   // grid
	Prob   float64 `yaml:"prob"`   // random, bipartite
	Chords int     `yaml:"chords"` // cycle-chords
	Seed   int64   `yaml:"seed"`
}

// Build dispatches to the family's generator.
// Generator sentinel errors pass through for errors.Is branching.
func (s Spec) Build() (*core.Graph, error) {
	switch s.Family {
	case FamilyRandom:
		return gen.RandomConnected(s.N, s.Prob, gen.WithSeed(s.Seed))
	case FamilyComplete:
		return gen.Complete(s.N)
	case FamilyBipartite:
		return gen.Bipartite(s.N, s.N2, s.Prob, gen.WithSeed(s.Seed))
	case FamilyGrid:
		return gen.Grid(s.Rows, s.Cols)
	case FamilyCycleChords:
		return gen.CycleWithChords(s.N, s.Chords, gen.WithSeed(s.Seed))
	default:
		return nil, fmt.Errorf("bench: family %d: %w", int(s.Family), ErrUnknownFamily)
	}
}

// Record is one completed (or failed) trial, immutable after creation
// and plain enough to serialize for external reporting. A non-empty Err
// marks a failed trial; its numeric fields hold whatever was known when
// the trial stopped.
type Record struct {
	Label       string  `json:"label" yaml:"label"`
	Family      string  `json:"family" yaml:"family"`
	VertexCount int     `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount   int     `json:"edge_count" yaml:"edge_count"`
	CoverSize   int     `json:"cover_size" yaml:"cover_size"`
	ElapsedMS   float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
	Err         string  `json:"err,omitempty" yaml:"err,omitempty"`
}

// Failed reports whether the trial ended in an error.
func (r Record) Failed() bool { return r.Err != "" }
