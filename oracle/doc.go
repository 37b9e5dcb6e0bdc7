// Package oracle defines the capability contract for the external
// minimum-edge-cover computation and wraps it with precondition checks
// and wall-clock timing.
//
// The harness never implements the covering algorithm itself: it depends
// on the Solver interface, assumed optimal and deterministic in cover
// size (not necessarily in the specific edges chosen). Any conforming
// backend can be substituted, test doubles included. Backends link into
// binaries through the Register/Lookup registry, the same pattern
// database/sql uses for drivers.
//
// The Adapter is the single permitted external call site: it rejects
// graphs that admit no finite cover (isolated vertex, n < 2) before the
// backend ever runs, brackets the call with a monotonic-clock timer, and
// optionally imposes a per-call timeout so one pathological case cannot
// stall a whole sweep.
package oracle
