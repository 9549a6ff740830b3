// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// fav.go — the fav subcommands over the favorites store.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/internal/logger"
)

func newFavCmd(a *app) *cobra.Command {
	fav := &cobra.Command{
		Use:   "fav",
		Short: "Manage saved systems",
	}

	fav.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved systems",
			RunE: func(cmd *cobra.Command, _ []string) error {
				store, err := a.openFavorites()
				if err != nil {
					return err
				}
				defer store.Close()

				recs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, r := range recs {
					fmt.Fprintf(out, "%s  %s  %d bets  k=%d g=%d  pool=%s\n",
						r.ID, r.SavedAt.Format("2006-01-02 15:04"), r.System.TotalBets,
						r.System.BetSize, r.System.Guarantee, joinInts(r.System.Numbers))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print a saved system as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openFavorites()
				if err != nil {
					return err
				}
				defer store.Close()

				rec, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), rec)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Remove a saved system",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openFavorites()
				if err != nil {
					return err
				}
				defer store.Close()

				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				logger.Info("system deleted", "id", args[0])
				return nil
			},
		},
	)

	return fav
}
