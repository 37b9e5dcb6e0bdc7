// SPDX-License-Identifier: MIT
// Package: covercheck/cmd
//
// root.go - cobra command tree for the covercheck binary.

// Package cmd implements the covercheck command line: verify producer
// files, cross-check them against a registered oracle backend, and run
// the scalability and stress sweeps.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/covercheck/oracle"
)

var (
	verbose    bool
	solverName string
	timeout    time.Duration
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "covercheck",
		Short:        "Verify and benchmark minimum-edge-cover solutions",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&solverName, "solver", "s", "", "registered oracle backend to use")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-trial wall-clock budget (0 = none)")

	rootCmd.AddCommand(newVerifyCmd(), newCompareCmd(), newBenchCmd(), newStressCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newAdapter resolves the --solver flag against the backend registry.
// With no flag and exactly one registered backend, that backend is used.
func newAdapter() (*oracle.Adapter, error) {
	name := solverName
	if name == "" {
		registered := oracle.Backends()
		if len(registered) == 1 {
			name = registered[0]
		} else {
			return nil, fmt.Errorf("no oracle backend selected; registered: %v (link one and pass --solver)", registered)
		}
	}

	s, ok := oracle.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("oracle backend %q not registered; available: %v", name, oracle.Backends())
	}

	var opts []oracle.Option
	if timeout > 0 {
		opts = append(opts, oracle.WithTimeout(timeout))
	}

	return oracle.New(s, opts...), nil
}
