// SPDX-License-Identifier: MIT
// Package: covercheck/core
//
// methods.go - read-only accessors and derived views of a Graph.

package core

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns m, the length of the raw edge sequence
// (duplicates counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the raw edge sequence in insertion order.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	cp := make([]Edge, len(g.edges))
	copy(cp, g.edges)

	return cp
}

// EdgeSet returns the normalized, deduplicated edge set.
// Complexity: O(m) time, O(m) space.
func (g *Graph) EdgeSet() map[Edge]struct{} {
	set := make(map[Edge]struct{}, len(g.edges))
	for _, e := range g.edges {
		set[e.Normalize()] = struct{}{}
	}

	return set
}

// Degrees returns the per-vertex degree over the raw edge sequence.
// Duplicate edges count twice; that is fine for the isolated-vertex
// checks this view exists for.
// Complexity: O(n+m).
func (g *Graph) Degrees() []int {
	deg := make([]int, g.vertexCount)
	for _, e := range g.edges {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// IsolatedVertices returns the vertices with no incident edge, ascending.
// Complexity: O(n+m).
func (g *Graph) IsolatedVertices() []int {
	var isolated []int
	for v, d := range g.Degrees() {
		if d == 0 {
			isolated = append(isolated, v)
		}
	}

	return isolated
}

// HasIsolatedVertex reports whether any vertex has degree zero.
// A graph with an isolated vertex admits no finite edge cover.
// Complexity: O(n+m).
func (g *Graph) HasIsolatedVertex() bool {
	deg := g.Degrees()
	for _, d := range deg {
		if d == 0 {
			return true
		}
	}

	return false
}

// Density returns 2m / (n(n-1)), with duplicates counted in m,
// and 0 for n <= 1 (the formula divides by zero there).
// Complexity: O(1).
func (g *Graph) Density() float64 {
	if g.vertexCount <= 1 {
		return 0
	}

	return 2 * float64(len(g.edges)) / (float64(g.vertexCount) * float64(g.vertexCount-1))
}
