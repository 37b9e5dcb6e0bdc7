// Package compare cross-validates a producer's edge cover against the
// oracle's reference cover for the same graph.
//
// The engine checks four independent signals: validity of each cover,
// provenance of the producer's edges, size agreement, and exact edge-set
// agreement. Two different minimum covers of equal size are expected and
// are not a defect; only a size mismatch or an invalid cover indicates a
// problem in the producer. Results are plain serializable records with
// no graph handles, ready for an external reporting layer.
package compare
