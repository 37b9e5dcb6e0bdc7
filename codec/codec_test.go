package codec_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covercheck/codec"
	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
)

// triangleDoc is the canonical well-formed fixture: triangle graph with a
// 2-edge cover.
const triangleDoc = `3 3 2
0 1
1 2
2 0
0 1
1 2
`

// TestDecode_WellFormed parses the triangle fixture end to end.
func TestDecode_WellFormed(t *testing.T) {
	g, c, k, err := codec.Decode(strings.NewReader(triangleDoc), "triangle")
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, k)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has(core.Edge{U: 0, V: 1}))
	assert.True(t, c.Has(core.Edge{U: 1, V: 2}))
	assert.True(t, cover.Valid(g, c))
}

// TestDecode_CoverDeduplication: duplicate and reversed cover lines
// collapse, |cover| <= declared k, and that is not an error.
func TestDecode_CoverDeduplication(t *testing.T) {
	doc := `3 3 3
0 1
1 2
2 0
0 1
1 0
2 1
`
	_, c, k, err := codec.Decode(strings.NewReader(doc), "dups")
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, 2, c.Len(), "reversed duplicate must collapse")
}

// TestDecode_TrailingLines: trailing blanks are tolerated; trailing
// content is not.
func TestDecode_TrailingLines(t *testing.T) {
	_, _, _, err := codec.Decode(strings.NewReader(triangleDoc+"\n\n"), "blank")
	assert.NoError(t, err)

	_, _, _, err = codec.Decode(strings.NewReader(triangleDoc+"9 9\n"), "extra")
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

// TestDecode_Malformed is the parse-error table: every corruption class
// must yield *ParseError wrapping ErrMalformed, never a panic.
func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"Empty", ""},
		{"HeaderTooShort", "3 3\n0 1\n1 2\n2 0\n"},
		{"HeaderNotInteger", "x 3 2\n0 1\n1 2\n2 0\n0 1\n1 2\n"},
		{"HeaderNegative", "-1 0 0\n"},
		{"Truncated", "3 3 2\n0 1\n1 2\n"},
		{"EdgeNotInteger", "3 3 1\n0 1\n1 z\n2 0\n0 1\n"},
		{"EdgeTooManyTokens", "3 3 1\n0 1 5\n1 2\n2 0\n0 1\n"},
		{"VertexOutOfRange", "3 3 1\n0 1\n1 2\n2 3\n0 1\n"},
		{"NegativeVertex", "3 3 1\n0 1\n-1 2\n2 0\n0 1\n"},
		{"SelfLoop", "3 3 1\n0 1\n1 1\n2 0\n0 1\n"},
		{"CoverOutOfRange", "3 3 1\n0 1\n1 2\n2 0\n0 9\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _, _, err := codec.Decode(strings.NewReader(tc.doc), tc.name)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

// TestDecode_ParseErrorContext checks the file/line reporting contract.
func TestDecode_ParseErrorContext(t *testing.T) {
	doc := "3 3 1\n0 1\n1 z\n2 0\n0 1\n"
	_, _, _, err := codec.Decode(strings.NewReader(doc), "bad.txt")

	var perr *codec.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.txt", perr.File)
	assert.Equal(t, 3, perr.Line)
	assert.Contains(t, perr.Error(), "bad.txt:3:")
}

// TestRoundTrip: encode then decode preserves vertex count, the edge
// multiset, and the cover set.
func TestRoundTrip(t *testing.T) {
	g := core.MustNew(5, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 1, V: 2}, // duplicate stays in the multiset
	})
	c := cover.NewSet(core.Edge{U: 1, V: 0}, core.Edge{U: 2, V: 3}, core.Edge{U: 3, V: 4})

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, g, c))

	g2, c2, k, err := codec.Decode(&buf, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), g2.VertexCount())
	assert.Equal(t, g.Edges(), g2.Edges())
	assert.True(t, c.Equal(c2))
	assert.Equal(t, c.Len(), k)
}

// TestDecodeFile covers the filesystem path, including the
// missing-file resource error.
func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")

	g := core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	c := cover.NewSet(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2})
	require.NoError(t, codec.EncodeFile(path, g, c))

	g2, c2, _, err := codec.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.VertexCount())
	assert.True(t, c.Equal(c2))

	_, _, _, err = codec.DecodeFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, codec.ErrUnreadable)
	assert.False(t, errors.Is(err, codec.ErrMalformed), "missing file is a resource error, not a parse error")
}
