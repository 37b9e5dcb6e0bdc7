// SPDX-License-Identifier: MIT
// Package: covercheck/codec
//
// encode.go - writer side of the interchange format.
//
// The producer normally writes these files; the encoder exists for
// round-trip tests and for regenerating fixtures. Edges are emitted in
// the graph's raw order; cover edges in the Set's sorted order, so the
// output is deterministic for equal inputs.

package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/covercheck/core"
	"github.com/katalvlaran/covercheck/cover"
)

// Encode writes g and c to w in the interchange format.
// Complexity: O(m + k log k).
func Encode(w io.Writer, g *core.Graph, c cover.Set) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d %d\n", g.VertexCount(), g.EdgeCount(), c.Len()); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("codec: write edge: %w", err)
		}
	}
	for _, e := range c.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("codec: write cover edge: %w", err)
		}
	}

	return bw.Flush()
}

// EncodeFile writes g and c to path, truncating any existing file.
func EncodeFile(path string, g *core.Graph, c cover.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %v: %w", path, err, ErrUnreadable)
	}
	if err = Encode(f, g, c); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
