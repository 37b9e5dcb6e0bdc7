// Package cover represents candidate edge covers and checks their
// validity against a graph.
//
// A Set holds normalized (min,max) edges, so membership and equality are
// order-independent regardless of how a producer oriented its output.
//
// Two checks exist on purpose:
//
//   - Valid reports whether the set touches every vertex - the defining
//     edge-cover property. It does not care where the edges came from.
//   - SubsetOfGraph is the stricter provenance check: every cover edge
//     must appear in the graph's own edge set. Callers apply it when
//     provenance matters (a producer's cover must be drawn from the
//     graph; an oracle computing over the same graph is exempt by
//     contract).
package cover
