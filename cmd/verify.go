// SPDX-License-Identifier: MIT
// Package: covercheck/cmd
//
// verify.go - "covercheck verify FILE..." validates producer files
// without touching the oracle.

package cmd

import (
	"fmt"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/covercheck/codec"
	"github.com/katalvlaran/covercheck/cover"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Parse interchange files and validate their covers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tN\tM\tDENSITY\tDECLARED\tUNIQUE\tVALID\tFROM-GRAPH")

			failed := 0
			for _, path := range args {
				g, c, declared, err := codec.DecodeFile(path)
				if err != nil {
					// Bad file: report, skip, keep going (never abort the run).
					log.WithError(err).Errorf("skipping %s", path)
					fmt.Fprintf(w, "%s\tERROR: %v\n", path, err)
					failed++

					continue
				}

				fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%d\t%d\t%s\t%s\n",
					path, g.VertexCount(), g.EdgeCount(), g.Density(),
					declared, c.Len(),
					yesNo(cover.Valid(g, c)), yesNo(cover.SubsetOfGraph(g, c)))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d file(s), %d failed\n", len(args), failed)

			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
