// Package bench drives reproducible scalability and stress sweeps over
// the generator families and the oracle.
//
// A sweep is a list of trial Specs. Each trial is self-contained:
// generate the graph, hand it to the oracle adapter, record vertex
// count, edge count, cover size, and elapsed time. A failing trial
// (domain error, timeout, bad parameters) yields an error Record and the
// sweep continues; no single bad case aborts the run, and failed trials
// are marked rather than omitted. Records keep the plan order, so output
// is deterministic.
//
// Plans come from three sources: the built-in scalability sweeps
// (fixed seed, increasing sizes - dense and complete families use
// smaller ceilings because their edge counts grow quadratically), the
// built-in stress set of large single cases, and declarative YAML
// documents for custom sweeps.
package bench
