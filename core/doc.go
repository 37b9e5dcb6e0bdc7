// Package core defines the immutable Graph and Edge types shared by every
// stage of the covercheck harness: generators produce Graphs, the codec
// reads and writes them, and the validator, oracle adapter, and comparison
// engine consume them.
//
// A Graph is a vertex count plus an ordered sequence of undirected edges
// over vertices 0..VertexCount-1. Self-loops are rejected at construction;
// duplicate edges are permitted in the raw sequence and collapse only in
// the normalized EdgeSet view. Once constructed a Graph never changes:
// every accessor returns a copy or a derived value, so instances may be
// passed freely between pipeline stages.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count.
//	ErrSelfLoop       - edge with identical endpoints.
//	ErrVertexRange    - edge endpoint outside [0, VertexCount).
package core
