// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// batch.go — the batch subcommand: YAML requests in, JSON lines out.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/cover"
	"github.com/katalvlaran/lotwheel/internal/logger"
	"github.com/katalvlaran/lotwheel/internal/batch"
)

// batchLine is one JSON line of batch output.
type batchLine struct {
	Index  int            `json:"index"`
	ID     string         `json:"id"`
	Error  string         `json:"error,omitempty"`
	System *cover.Payload `json:"system,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		file        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate every request of a YAML batch file concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := batch.ParseFile(file)
			if err != nil {
				return err
			}
			if concurrency < 1 {
				concurrency = a.cfg.Batch.Concurrency
			}
			seed := f.Seed
			if seed == 0 {
				seed = a.cfg.Engine.Seed
			}

			runner := batch.Runner{
				Concurrency: concurrency,
				Seed:        seed,
				Options:     append(a.cfg.Engine.Options(), a.observer()),
			}
			logger.Info("batch started", "requests", len(f.Requests), "concurrency", concurrency)
			results, err := runner.Run(cmd.Context(), f.Requests)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			var failed int
			for _, r := range results {
				line := batchLine{Index: r.Index, ID: r.Request.ID}
				if r.Err != nil {
					failed++
					line.Error = r.Err.Error()
				} else {
					p := r.System.Payload()
					line.System = &p
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			logger.Info("batch finished", "requests", len(results), "failed", failed)

			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML batch file")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel requests (default: config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
