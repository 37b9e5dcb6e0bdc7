// SPDX-License-Identifier: MIT
// Package: covercheck/oracle
//
// registry.go - named solver backends, database/sql driver style.
//
// An algorithm package registers itself from init():
//
//	func init() { oracle.Register("hungarian", mySolver{}) }
//
// and a binary selects it by name. The harness itself registers nothing;
// the covering algorithm is an external collaborator.

package oracle

import (
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Solver)
)

// Register makes a Solver available under the given name. It panics if
// the solver is nil or the name is already taken; both are programmer
// errors at process start, not runtime conditions.
func Register(name string, s Solver) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if s == nil {
		panic("oracle: Register solver is nil")
	}
	if _, dup := backends[name]; dup {
		panic("oracle: Register called twice for backend " + name)
	}
	backends[name] = s
}

// Lookup returns the Solver registered under name.
func Lookup(name string) (Solver, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	s, ok := backends[name]

	return s, ok
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
