// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// designs.go — the designs subcommand: lists the known-design catalogue.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/cover"
)

func newDesignsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "designs",
		Short: "List the precomputed full-coverage designs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-7s %5s %9s %5s\n", "family", "pool", "guarantee", "bets")
			for _, d := range cover.Designs() {
				fmt.Fprintf(out, "%-7s %5d %9d %5d\n", d.Family, d.PoolSize, d.Guarantee, d.Bets)
			}
			return nil
		},
	}
}
