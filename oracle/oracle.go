// SPDX-License-Identifier: MIT
// Package: covercheck/oracle
//
// oracle.go - Solver contract, timing Adapter, sentinel errors.

package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
)

// Sentinel errors for oracle preconditions and failures.
var (
	// ErrNoSolver indicates the Adapter was built without a backend.
	ErrNoSolver = errors.New("oracle: no solver configured")

	// ErrTooFewVertices indicates n < 2; cover computation is undefined.
	ErrTooFewVertices = errors.New("oracle: graph too small for cover computation")

	// ErrIsolatedVertex indicates the graph has a degree-zero vertex,
	// so no finite edge cover exists. The domain-error class.
	ErrIsolatedVertex = errors.New("oracle: graph contains isolated vertices")

	// ErrSolverFailed wraps any error returned by the backend itself.
	ErrSolverFailed = errors.New("oracle: solver failed")
)

// minCoverableVertices is the smallest graph a cover is defined for.
const minCoverableVertices = 2

// Solver computes a minimum edge cover for a graph. Implementations are
// external to the harness and assumed optimal: the returned cover has
// size |V| - |maximum matching|. They must honor ctx cancellation on
// long computations.
type Solver interface {
	MinEdgeCover(ctx context.Context, g *core.Graph) (cover.Set, error)
}

// Func adapts a plain function to the Solver interface.
type Func func(ctx context.Context, g *core.Graph) (cover.Set, error)

// MinEdgeCover calls f.
func (f Func) MinEdgeCover(ctx context.Context, g *core.Graph) (cover.Set, error) {
	return f(ctx, g)
}

// Result carries one oracle computation: the reference cover and how
// long the backend took. Elapsed is measured on the monotonic clock
// immediately around the backend call, so sub-millisecond runs resolve.
type Result struct {
	Cover   cover.Set
	Elapsed time.Duration
}

// ElapsedMS returns the elapsed time in milliseconds, the unit the
// benchmark records use.
func (r Result) ElapsedMS() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTimeout imposes a per-call wall-clock budget. Zero or negative
// means no budget (the reference behavior).
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

// Adapter wraps a Solver with precondition checks and timing. It holds
// no mutable state and is safe for concurrent use if the backend is.
type Adapter struct {
	solver  Solver
	timeout time.Duration
}

// New builds an Adapter around s.
func New(s Solver, opts ...Option) *Adapter {
	a := &Adapter{solver: s}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Compute runs the backend on g after enforcing the domain
// preconditions.
//
// Errors: ErrNoSolver, ErrTooFewVertices, ErrIsolatedVertex (domain),
// ErrSolverFailed wrapping the backend error (including timeout and
// cancellation, which surface as context errors inside the chain).
// Complexity: O(n+m) precondition scan plus the backend's own cost.
func (a *Adapter) Compute(ctx context.Context, g *core.Graph) (Result, error) {
	if a.solver == nil {
		return Result{}, ErrNoSolver
	}
	if g.VertexCount() < minCoverableVertices {
		return Result{}, fmt.Errorf("oracle: n=%d: %w", g.VertexCount(), ErrTooFewVertices)
	}
	if isolated := g.IsolatedVertices(); len(isolated) > 0 {
		return Result{}, fmt.Errorf("oracle: vertex %d has degree 0: %w", isolated[0], ErrIsolatedVertex)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// Time only the external computation, nothing around it.
	start := time.Now()
	c, err := a.solver.MinEdgeCover(ctx, g)
	elapsed := time.Since(start)

	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	return Result{Cover: c, Elapsed: elapsed}, nil
}
