package oracle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
	"github.com/katalvlaran/covercheck/gen"
	"github.com/katalvlaran/covercheck/oracle"
)

// stubSolver is a test double for the external backend: it returns a
// valid (not necessarily minimum) cover by giving every vertex its first
// incident edge. Deterministic, no timing tricks.
func stubSolver() oracle.Solver {
	return oracle.Func(func(_ context.Context, g *core.Graph) (cover.Set, error) {
		first := make(map[int]core.Edge, g.VertexCount())
		for _, e := range g.Edges() {
			if _, ok := first[e.U]; !ok {
				first[e.U] = e
			}
			if _, ok := first[e.V]; !ok {
				first[e.V] = e
			}
		}
		c := cover.NewSet()
		for _, e := range first {
			c.Add(e)
		}

		return c, nil
	})
}

// TestCompute_CoversValidate: whatever the backend returns for a healthy
// graph must validate against it.
func TestCompute_CoversValidate(t *testing.T) {
	ad := oracle.New(stubSolver())

	graphs := map[string]*core.Graph{
		"triangle": core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}),
		"path5":    core.MustNew(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}),
	}
	g, err := gen.RandomConnected(40, 0.15, gen.WithSeed(42))
	require.NoError(t, err)
	graphs["random40"] = g

	for name, graph := range graphs {
		t.Run(name, func(t *testing.T) {
			res, err := ad.Compute(context.Background(), graph)
			require.NoError(t, err)
			assert.True(t, cover.Valid(graph, res.Cover))
			assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
		})
	}
}

// TestCompute_Preconditions rejects graphs with no finite cover before
// the backend runs.
func TestCompute_Preconditions(t *testing.T) {
	called := false
	ad := oracle.New(oracle.Func(func(context.Context, *core.Graph) (cover.Set, error) {
		called = true

		return cover.NewSet(), nil
	}))

	// n < 2.
	tiny, _ := core.New(1, nil)
	_, err := ad.Compute(context.Background(), tiny)
	assert.ErrorIs(t, err, oracle.ErrTooFewVertices)

	// Isolated vertex.
	isolated := core.MustNew(3, []core.Edge{{U: 0, V: 1}})
	_, err = ad.Compute(context.Background(), isolated)
	assert.ErrorIs(t, err, oracle.ErrIsolatedVertex)

	assert.False(t, called, "backend must not run on precondition failure")
}

// TestCompute_NoSolver covers the unconfigured adapter.
func TestCompute_NoSolver(t *testing.T) {
	ad := oracle.New(nil)
	_, err := ad.Compute(context.Background(), core.MustNew(2, []core.Edge{{U: 0, V: 1}}))
	assert.ErrorIs(t, err, oracle.ErrNoSolver)
}

// TestCompute_BackendError wraps backend failures in ErrSolverFailed.
func TestCompute_BackendError(t *testing.T) {
	boom := errors.New("backend exploded")
	ad := oracle.New(oracle.Func(func(context.Context, *core.Graph) (cover.Set, error) {
		return nil, boom
	}))

	_, err := ad.Compute(context.Background(), core.MustNew(2, []core.Edge{{U: 0, V: 1}}))
	assert.ErrorIs(t, err, oracle.ErrSolverFailed)
	assert.ErrorIs(t, err, boom)
}

// TestCompute_Timeout: a stalled backend is cut off by the per-call
// budget and surfaces as a solver failure with a deadline inside.
func TestCompute_Timeout(t *testing.T) {
	ad := oracle.New(oracle.Func(func(ctx context.Context, _ *core.Graph) (cover.Set, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	}), oracle.WithTimeout(10*time.Millisecond))

	_, err := ad.Compute(context.Background(), core.MustNew(2, []core.Edge{{U: 0, V: 1}}))
	assert.ErrorIs(t, err, oracle.ErrSolverFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestResult_ElapsedMS pins the unit conversion.
func TestResult_ElapsedMS(t *testing.T) {
	r := oracle.Result{Elapsed: 1500 * time.Microsecond}
	assert.InDelta(t, 1.5, r.ElapsedMS(), 1e-9)
}

// TestRegistry exercises Register/Lookup/Backends.
func TestRegistry(t *testing.T) {
	oracle.Register("stub-a", stubSolver())
	oracle.Register("stub-b", stubSolver())

	s, ok := oracle.Lookup("stub-a")
	assert.True(t, ok)
	assert.NotNil(t, s)

	_, ok = oracle.Lookup("nope")
	assert.False(t, ok)

	names := oracle.Backends()
	assert.Contains(t, names, "stub-a")
	assert.Contains(t, names, "stub-b")
	assert.IsIncreasing(t, names)

	assert.Panics(t, func() { oracle.Register("stub-a", stubSolver()) })
	assert.Panics(t, func() { oracle.Register("nil-solver", nil) })
}
