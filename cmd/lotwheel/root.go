// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// root.go — root command, config loading and logger setup.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lotwheel/cover"
	"github.com/katalvlaran/lotwheel/internal/config"
	"github.com/katalvlaran/lotwheel/internal/favorites"
	"github.com/katalvlaran/lotwheel/internal/logger"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lotwheel",
		Short:         "Generate and audit lottery covering systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		newGenerateCmd(a),
		newVerifyCmd(a),
		newDesignsCmd(a),
		newBatchCmd(a),
		newFavCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	logger.Init(&logger.Options{
		Level:      level,
		Writer:     cmd.ErrOrStderr(),
		TimeFormat: cfg.Log.TimeFormat,
	})
	logger.Debug("config loaded", "path", a.configPath, "use_library", cfg.Engine.UseLibrary)

	return nil
}

// observer logs every generation's diagnostics at debug level.
func (a *app) observer() cover.Option {
	return cover.WithObserver(func(d cover.Diagnostics) {
		logger.Debug("system generated",
			"method", d.Method,
			"iterations", d.IterationsUsed,
			"cap", d.IterationCap,
			"bet_space", d.BetSpace,
			"target_space", d.TargetSpace,
			"filler", d.FillerBets,
			"covered", d.CoveredCount,
			"targets", d.TotalTargets,
		)
	})
}

func (a *app) openFavorites() (*favorites.Store, error) {
	return favorites.Open(favorites.Options{
		Path:     a.cfg.Storage.Path,
		InMemory: a.cfg.Storage.InMemory,
		Prefix:   a.cfg.Storage.Prefix,
		Logger:   logger.With("component", "favorites"),
	})
}
