// SPDX-License-Identifier: MIT
// Package: covercheck/compare
//
// compare.go - the comparison engine and its Result record.

package compare

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/covercheck/codec"
	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
	"github.com/katalvlaran/covercheck/oracle"
)

// Result is one comparison run, immutable after creation.
//
// DeclaredSize is the cover size the producer wrote in the interchange
// header; ProducerSize counts the unique normalized edges actually
// decoded. A gap between the two is informational, not an error: the
// codec collapses duplicate cover lines on purpose.
type Result struct {
	Name        string  `json:"name" yaml:"name"`
	VertexCount int     `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount   int     `json:"edge_count" yaml:"edge_count"`
	Density     float64 `json:"density" yaml:"density"`

	ProducerSize int `json:"producer_size" yaml:"producer_size"`
	DeclaredSize int `json:"declared_size" yaml:"declared_size"`
	OracleSize   int `json:"oracle_size" yaml:"oracle_size"`

	ProducerValid     bool `json:"producer_valid" yaml:"producer_valid"`
	ProducerFromGraph bool `json:"producer_from_graph" yaml:"producer_from_graph"`
	OracleValid       bool `json:"oracle_valid" yaml:"oracle_valid"`
	SizesMatch        bool `json:"sizes_match" yaml:"sizes_match"`
	EdgeSetsIdentical bool `json:"edge_sets_identical" yaml:"edge_sets_identical"`

	OracleElapsedMS float64 `json:"oracle_elapsed_ms" yaml:"oracle_elapsed_ms"`
}

// Compare validates producerCover against g, obtains the reference cover
// through ad, and reports both side by side.
//
// The producer cover is additionally held to the provenance check
// (its edges must come from the graph); the oracle computes over the
// same graph by contract and is exempt. Invalid covers are a reportable
// result field, not an error. An oracle failure (domain error, timeout,
// backend fault) is returned as an error: the trial cannot complete
// without the reference.
// Complexity: O(n + m + k) plus the oracle call.
func Compare(ctx context.Context, ad *oracle.Adapter, g *core.Graph, producerCover cover.Set, declaredSize int, name string) (Result, error) {
	res := Result{
		Name:         name,
		VertexCount:  g.VertexCount(),
		EdgeCount:    g.EdgeCount(),
		Density:      g.Density(),
		ProducerSize: producerCover.Len(),
		DeclaredSize: declaredSize,
	}

	res.ProducerValid = cover.Valid(g, producerCover)
	res.ProducerFromGraph = cover.SubsetOfGraph(g, producerCover)

	ref, err := ad.Compute(ctx, g)
	if err != nil {
		return Result{}, fmt.Errorf("compare: %s: %w", name, err)
	}

	res.OracleSize = ref.Cover.Len()
	res.OracleValid = cover.Valid(g, ref.Cover)
	res.OracleElapsedMS = ref.ElapsedMS()
	res.SizesMatch = res.ProducerSize == res.OracleSize
	res.EdgeSetsIdentical = producerCover.Equal(ref.Cover)

	return res, nil
}

// CompareFile decodes one interchange file and compares its cover.
// Decode failures (parse or resource errors) pass through so callers can
// skip the file and continue.
func CompareFile(ctx context.Context, ad *oracle.Adapter, path string) (Result, error) {
	g, c, declared, err := codec.DecodeFile(path)
	if err != nil {
		return Result{}, err
	}

	return Compare(ctx, ad, g, c, declared, filepath.Base(path))
}
