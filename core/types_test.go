package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covercheck/core"
)

// TestNew_Errors verifies constructor validation of vertex counts and edges.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		err   error
	}{
		{"NegativeVertexCount", -1, nil, core.ErrBadVertexCount},
		{"SelfLoop", 3, []core.Edge{{U: 1, V: 1}}, core.ErrSelfLoop},
		{"EndpointTooLarge", 3, []core.Edge{{U: 0, V: 3}}, core.ErrVertexRange},
		{"EndpointNegative", 3, []core.Edge{{U: -1, V: 2}}, core.ErrVertexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.New(tc.n, tc.edges)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesEdges ensures the caller's slice cannot mutate the graph.
func TestNew_CopiesEdges(t *testing.T) {
	in := []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := core.New(3, in)
	require.NoError(t, err)

	in[0] = core.Edge{U: 2, V: 0}
	assert.Equal(t, core.Edge{U: 0, V: 1}, g.Edges()[0])

	// Accessor copies too: mutating the returned slice must not leak back.
	out := g.Edges()
	out[1] = core.Edge{U: 0, V: 2}
	assert.Equal(t, core.Edge{U: 1, V: 2}, g.Edges()[1])
}

// TestNormalize checks the canonical (min,max) orientation.
func TestNormalize(t *testing.T) {
	assert.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 4, V: 1}.Normalize())
	assert.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 1, V: 4}.Normalize())
}

// TestMustNew_PanicsOnBadInput covers the fixture helper.
func TestMustNew_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { core.MustNew(1, []core.Edge{{U: 0, V: 0}}) })
	assert.NotPanics(t, func() { core.MustNew(2, []core.Edge{{U: 0, V: 1}}) })
}

// TestEmptyGraph verifies the degenerate n=0 graph is representable.
func TestEmptyGraph(t *testing.T) {
	g, err := core.New(0, nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Zero(t, g.Density())
}
