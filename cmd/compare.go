// SPDX-License-Identifier: MIT
// Package: covercheck/cmd
//
// compare.go - "covercheck compare FILE..." cross-validates producer
// covers against the oracle backend.

package cmd

import (
	"fmt"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/covercheck/compare"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE...",
		Short: "Cross-validate producer covers against the oracle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ad, err := newAdapter()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tN\tM\tDENSITY\tPRODUCER\tORACLE\tP-VALID\tO-VALID\tSIZES\tEDGES\tORACLE-MS")

			failed := 0
			for _, path := range args {
				res, err := compare.CompareFile(cmd.Context(), ad, path)
				if err != nil {
					log.WithError(err).Errorf("skipping %s", path)
					fmt.Fprintf(w, "%s\tERROR: %v\n", path, err)
					failed++

					continue
				}

				fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%d\t%d\t%s\t%s\t%s\t%s\t%.4f\n",
					res.Name, res.VertexCount, res.EdgeCount, res.Density,
					res.ProducerSize, res.OracleSize,
					yesNo(res.ProducerValid), yesNo(res.OracleValid),
					matchWord(res.SizesMatch), matchWord(res.EdgeSetsIdentical),
					res.OracleElapsedMS)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d file(s), %d failed\n", len(args), failed)

			return nil
		},
	}
}

func matchWord(b bool) string {
	if b {
		return "match"
	}

	return "differ"
}
