// SPDX-License-Identifier: MIT
// Package: covercheck/cmd
//
// bench.go - "covercheck bench" and "covercheck stress" sweep commands.

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/covercheck/bench"
)

func newBenchCmd() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the scalability sweep (default plan or --plan YAML)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ad, err := newAdapter()
			if err != nil {
				return err
			}

			specs := bench.DefaultScalabilityPlan()
			if planPath != "" {
				if specs, err = bench.LoadPlanFile(planPath); err != nil {
					return err
				}
			}

			runner := bench.NewRunner(ad)
			records := runner.Run(cmd.Context(), specs)

			return printRecords(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML sweep plan file")

	return cmd
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run the fixed set of large stress cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ad, err := newAdapter()
			if err != nil {
				return err
			}

			runner := bench.NewRunner(ad)
			records := runner.Run(cmd.Context(), bench.StressPlan())

			return printRecords(cmd.OutOrStdout(), records)
		},
	}
}

// printRecords renders sweep records as an aligned text table. Failed
// trials stay in the table, explicitly marked.
func printRecords(out io.Writer, records []bench.Record) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tFAMILY\tN\tM\tCOVER\tTIME-MS\tSTATUS")

	failed := 0
	for _, rec := range records {
		status := "ok"
		if rec.Failed() {
			status = "FAILED: " + rec.Err
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.4f\t%s\n",
			rec.Label, rec.Family, rec.VertexCount, rec.EdgeCount,
			rec.CoverSize, rec.ElapsedMS, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%d trial(s), %d failed\n", len(records), failed)

	return err
}
