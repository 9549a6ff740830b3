// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// verify.go — the verify subcommand: audits hand-supplied bets.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/cover"
	"github.com/katalvlaran/lotwheel/internal/logger"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		pool, bets  string
		g           int
		showMissing int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Audit how many G-subsets of a pool a set of bets covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parseNumbers(pool)
			if err != nil {
				return err
			}
			b, err := parseBets(bets)
			if err != nil {
				return err
			}

			opts := a.cfg.Engine.Options()
			cov, err := cover.Verify(b, p, g, opts...)
			if err != nil {
				return err
			}
			logger.Debug("verified", "bets", len(b), "covered", cov.CoveredCount, "targets", cov.TotalTargets)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "covered %d of %d (%.2f%%)\n", cov.CoveredCount, cov.TotalTargets, 100*cov.CoverageFraction)
			if showMissing > 0 && !cov.Full() {
				missing, err := cover.Uncovered(b, p, g, showMissing, opts...)
				if err != nil {
					return err
				}
				for _, m := range missing {
					fmt.Fprintf(out, "missing: %s\n", joinInts(m))
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&pool, "pool", "", "comma-separated pool numbers")
	cmd.Flags().StringVar(&bets, "bets", "", `bets as "1,2,3;4,5,6"`)
	cmd.Flags().IntVar(&g, "g", 3, "guarantee size")
	cmd.Flags().IntVar(&showMissing, "show-missing", 0, "list up to N uncovered subsets")
	_ = cmd.MarkFlagRequired("pool")
	_ = cmd.MarkFlagRequired("bets")

	return cmd
}
