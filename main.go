// SPDX-License-Identifier: MIT

// covercheck is a correctness-and-performance verification harness for
// minimum-edge-cover solutions: it reconstructs graphs from producer
// files, cross-checks their covers against an oracle backend, and runs
// reproducible scalability and stress sweeps over five graph families.
package main

import (
	"context"

	"github.com/katalvlaran/covercheck/cmd"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cmd.Execute(context.Background(), version)
}
