// SPDX-License-Identifier: MIT
// Package: covercheck/cover
//
// validate.go - edge-cover validity and provenance checks.

package cover

import "github.com/katalvlaran/covercheck/core"

// Valid reports whether s is an edge cover of g: the set of vertices
// touched by cover edges equals {0..n-1}. An empty cover is valid only
// for the empty graph. Membership of the edges in g is NOT checked here;
// see SubsetOfGraph.
// Complexity: O(n + k).
func Valid(g *core.Graph, s Set) bool {
	n := g.VertexCount()
	covered := make([]bool, n)
	count := 0
	for e := range s {
		// Cover edges may reference vertices outside the graph (bad
		// producer output); such a cover is simply not valid.
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return false
		}
		if !covered[e.U] {
			covered[e.U] = true
			count++
		}
		if !covered[e.V] {
			covered[e.V] = true
			count++
		}
	}

	return count == n
}

// SubsetOfGraph reports whether every edge of s appears in g's normalized
// edge set. This is the stricter provenance check for producer covers.
// Complexity: O(m + k).
func SubsetOfGraph(g *core.Graph, s Set) bool {
	edges := g.EdgeSet()
	for e := range s {
		if _, ok := edges[e]; !ok {
			return false
		}
	}

	return true
}
