// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// generate.go — the generate subcommand and its text rendering.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/cover"
	"github.com/katalvlaran/lotwheel/internal/logger"
)

type generateFlags struct {
	pool   string
	k, g   int
	seed   int64
	asJSON bool
	save   bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a covering system for a number pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := parseNumbers(f.pool)
			if err != nil {
				return err
			}

			opts := append(a.cfg.Engine.Options(), a.observer(), cover.WithSeed(a.seed(cmd, f.seed)))
			sys, err := cover.Generate(pool, f.k, f.g, opts...)
			if err != nil {
				return err
			}
			for _, w := range sys.Warnings {
				logger.Warn("generation warning", "err", w)
			}

			out := cmd.OutOrStdout()
			if f.asJSON {
				err = writeJSON(out, sys.Payload())
			} else {
				printSystem(out, sys)
			}
			if err != nil {
				return err
			}

			if f.save {
				store, err := a.openFavorites()
				if err != nil {
					return err
				}
				defer store.Close()

				id, err := store.Save(cmd.Context(), sys)
				if err != nil {
					return err
				}
				logger.Info("system saved", "id", id)
				if !f.asJSON {
					fmt.Fprintf(out, "saved: %s\n", id)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&f.pool, "pool", "", "comma-separated pool numbers")
	cmd.Flags().IntVar(&f.k, "k", 6, "numbers per bet")
	cmd.Flags().IntVar(&f.g, "g", 3, "guaranteed match size")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for the random filler pass (default: config, then clock)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the export payload as JSON")
	cmd.Flags().BoolVar(&f.save, "save", false, "store the result in favorites")
	_ = cmd.MarkFlagRequired("pool")

	return cmd
}

// seed prefers the flag, then the config, then the clock.
func (a *app) seed(cmd *cobra.Command, flagSeed int64) int64 {
	switch {
	case cmd.Flags().Changed("seed"):
		return flagSeed
	case a.cfg.Engine.Seed != 0:
		return a.cfg.Engine.Seed
	default:
		return time.Now().UnixNano()
	}
}

func printSystem(w io.Writer, sys cover.System) {
	fmt.Fprintf(w, "pool:      %s\n", joinInts(sys.Pool))
	fmt.Fprintf(w, "bets:      %d x %d numbers, guarantee %d\n", sys.TotalBets(), sys.K, sys.G)
	fmt.Fprintf(w, "coverage:  %.2f%%\n", 100*sys.CoverageFraction)
	fmt.Fprintf(w, "minimum:   %d (counting bound)\n", sys.TheoreticalMinimum)
	fmt.Fprintf(w, "method:    %s\n", sys.Diagnostics.Method)
	if sys.IsOptimal {
		fmt.Fprintln(w, "optimal:   yes")
	}
	for i, bet := range sys.Bets {
		fmt.Fprintf(w, "%4d: %s\n", i+1, joinInts(bet))
	}
}
