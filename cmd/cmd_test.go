package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covercheck/bench"
	"github.com/katalvlaran/covercheck/codec"
	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
	"github.com/katalvlaran/covercheck/oracle"
)

// writeTriangleFixture encodes the triangle graph with a valid 2-edge
// cover and returns the file path.
func writeTriangleFixture(t *testing.T) string {
	t.Helper()
	g := core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	c := cover.NewSet(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2})
	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, codec.EncodeFile(path, g, c))

	return path
}

func init() {
	// The CLI tests need a backend; register the trivial all-edges one.
	oracle.Register("cmd-test", oracle.Func(func(_ context.Context, g *core.Graph) (cover.Set, error) {
		return cover.NewSet(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}), nil
	}))
}

// TestVerifyCommand runs verify over one good and one missing file.
func TestVerifyCommand(t *testing.T) {
	path := writeTriangleFixture(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	cmd := newVerifyCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, missing})

	require.NoError(t, cmd.Execute(), "a bad file must not abort the run")

	s := out.String()
	assert.Contains(t, s, "triangle.txt")
	assert.Contains(t, s, "yes")
	assert.Contains(t, s, "ERROR")
	assert.Contains(t, s, "2 file(s), 1 failed")
}

// TestCompareCommand runs compare against the registered test backend.
func TestCompareCommand(t *testing.T) {
	path := writeTriangleFixture(t)

	solverName = "cmd-test"
	defer func() { solverName = "" }()

	cmd := newCompareCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "match")
	assert.Contains(t, out.String(), "1 file(s), 0 failed")
}

// TestNewAdapter_NoBackendSelected errors out cleanly when ambiguous.
func TestNewAdapter_NoBackendSelected(t *testing.T) {
	solverName = "unregistered"
	defer func() { solverName = "" }()

	_, err := newAdapter()
	assert.ErrorContains(t, err, "not registered")
}

// TestPrintRecords keeps failed trials visible in the table.
func TestPrintRecords(t *testing.T) {
	records := []bench.Record{
		{Label: "ok", Family: "grid", VertexCount: 4, EdgeCount: 4, CoverSize: 2, ElapsedMS: 0.12},
		{Label: "broken", Family: "complete", Err: "boom"},
	}

	var out bytes.Buffer
	require.NoError(t, printRecords(&out, records))

	s := out.String()
	assert.Contains(t, s, "ok")
	assert.Contains(t, s, "FAILED: boom")
	assert.Contains(t, s, "2 trial(s), 1 failed")
}
