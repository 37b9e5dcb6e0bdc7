// SPDX-License-Identifier: MIT
// Package: covercheck/bench
//
// plan.go - built-in sweep plans and the YAML plan loader.
//
// The built-in plans reproduce the reference sweeps: fixed seed 42,
// increasing vertex counts per family, smaller ceilings for dense and
// complete families (quadratic edge growth), and a fixed set of large
// stress cases run once each.

package bench

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultSeed keeps the built-in sweeps reproducible run over run.
const defaultSeed int64 = 42

// Default sweep parameters, mirroring the reference harness.
var (
	sparseSizes    = []int{10, 20, 50, 100, 200, 500, 1000}
	denseSizes     = []int{10, 20, 50, 100, 200, 500}
	completeSizes  = []int{10, 15, 20, 30, 40, 50}
	bipartiteSizes = []int{20, 40, 60, 100, 150, 200}
)

const (
	sparseProb    = 0.2
	denseProb     = 0.6
	bipartiteProb = 0.4
)

// ScalabilityPlan builds a fixed-family sweep over increasing vertex
// counts with a shared seed.
func ScalabilityPlan(family Family, sizes []int, prob float64, seed int64) []Spec {
	specs := make([]Spec, 0, len(sizes))
	for _, n := range sizes {
		spec := Spec{
			Label:  fmt.Sprintf("%s-n%d", family, n),
			Family: family,
			Prob:   prob,
			Seed:   seed,
		}
		switch family {
		case FamilyBipartite:
			spec.N, spec.N2 = n/2, n/2
		case FamilyGrid:
			spec.Rows, spec.Cols = n, n
		default:
			spec.N = n
		}
		specs = append(specs, spec)
	}

	return specs
}

// DefaultScalabilityPlan is the full reference sweep: sparse and dense
// random graphs, complete graphs, and bipartite graphs.
func DefaultScalabilityPlan() []Spec {
	var specs []Spec
	specs = append(specs, ScalabilityPlan(FamilyRandom, sparseSizes, sparseProb, defaultSeed)...)
	specs = append(specs, ScalabilityPlan(FamilyRandom, denseSizes, denseProb, defaultSeed)...)
	specs = append(specs, ScalabilityPlan(FamilyComplete, completeSizes, 0, defaultSeed)...)
	specs = append(specs, ScalabilityPlan(FamilyBipartite, bipartiteSizes, bipartiteProb, defaultSeed)...)

	return specs
}

// StressPlan is the fixed set of large single cases.
func StressPlan() []Spec {
	return []Spec{
		{Label: "large-sparse", Family: FamilyRandom, N: 2000, Prob: 0.05, Seed: defaultSeed},
		{Label: "complete-k100", Family: FamilyComplete, N: 100},
		{Label: "grid-40x40", Family: FamilyGrid, Rows: 40, Cols: 40},
		{Label: "bipartite-500x500", Family: FamilyBipartite, N: 500, N2: 500, Prob: 0.1, Seed: defaultSeed},
		{Label: "cycle-500-chords", Family: FamilyCycleChords, N: 1000, Chords: 500, Seed: defaultSeed},
	}
}

// planDoc is the YAML representation of a custom sweep.
type planDoc struct {
	Trials []planTrial `yaml:"trials"`
}

// planTrial embeds Spec and adds the textual family name.
type planTrial struct {
	Spec   `yaml:",inline"`
	Family string `yaml:"family"`
}

// LoadPlan decodes a YAML sweep plan:
//
//	trials:
//	  - label: sparse-100
//	    family: random
//	    n: 100
//	    prob: 0.2
//	    seed: 42
//
// Unknown family names fail with ErrUnknownFamily; an empty trial list
// is an error (a plan that runs nothing is a mistake, not a sweep).
func LoadPlan(r io.Reader) ([]Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bench: read plan: %w", err)
	}

	var doc planDoc
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("bench: parse plan: %w", err)
	}
	if len(doc.Trials) == 0 {
		return nil, fmt.Errorf("bench: plan has no trials")
	}

	specs := make([]Spec, 0, len(doc.Trials))
	for i, trial := range doc.Trials {
		family, err := ParseFamily(trial.Family)
		if err != nil {
			return nil, fmt.Errorf("bench: trial %d: %w", i, err)
		}
		spec := trial.Spec
		spec.Family = family
		if spec.Label == "" {
			spec.Label = fmt.Sprintf("%s-%d", family, i)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// LoadPlanFile reads a YAML sweep plan from disk.
func LoadPlanFile(path string) ([]Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench: open plan %s: %w", path, err)
	}
	defer f.Close()

	return LoadPlan(f)
}
