// SPDX-License-Identifier: MIT
// Package: lotwheel/internal/config
//
// config.go — YAML configuration with validation.

// Package config loads the lotwheel YAML configuration.
//
// Every field has a default (Default). A file only needs the keys it
// overrides; values it omits keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lotwheel/cover"
)

var validate = validator.New()

type Config struct {
	Engine  EngineCfg  `yaml:"engine"`
	Storage StorageCfg `yaml:"storage"`
	Batch   BatchCfg   `yaml:"batch"`
	Log     LogCfg     `yaml:"log"`
}

// EngineCfg mirrors cover.Options. Zero is never a valid override for the
// bounded fields, so validation rejects it instead of silently keeping it.
type EngineCfg struct {
	IterationCaps       map[int]int `yaml:"iteration_caps" validate:"dive,keys,min=1,endkeys,min=1"`
	DefaultIterationCap int         `yaml:"default_iteration_cap" validate:"min=1"`
	FillThreshold       float64     `yaml:"fill_threshold" validate:"min=0,max=1"`
	FillerBets          int         `yaml:"filler_bets" validate:"min=0"`
	OptimalThreshold    float64     `yaml:"optimal_threshold" validate:"gt=0,max=1"`
	MaxPoolSize         int         `yaml:"max_pool_size" validate:"min=1,max=64"`
	MaxCombinations     int         `yaml:"max_combinations" validate:"min=1"`
	MaxWork             int         `yaml:"max_work" validate:"min=1"`
	MaxAuditWork        int         `yaml:"max_audit_work" validate:"min=1"`
	Seed                int64       `yaml:"seed"`
	UseLibrary          bool        `yaml:"use_library"`
}

type StorageCfg struct {
	Path     string `yaml:"path" validate:"required_if=InMemory false"`
	InMemory bool   `yaml:"in_memory"`
	Prefix   string `yaml:"prefix" validate:"required"`
}

type BatchCfg struct {
	Concurrency int `yaml:"concurrency" validate:"min=1,max=256"`
}

type LogCfg struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	TimeFormat string `yaml:"time_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := cover.DefaultOptions()

	return Config{
		Engine: EngineCfg{
			IterationCaps:       o.IterationCaps,
			DefaultIterationCap: o.DefaultIterationCap,
			FillThreshold:       o.FillThreshold,
			FillerBets:          o.FillerBets,
			OptimalThreshold:    o.OptimalThreshold,
			MaxPoolSize:         o.MaxPoolSize,
			MaxCombinations:     o.MaxCombinations,
			MaxWork:             o.MaxWork,
			MaxAuditWork:        o.MaxAuditWork,
			UseLibrary:          o.UseLibrary,
		},
		Storage: StorageCfg{
			Path:   ".lotwheel/favorites",
			Prefix: "fav",
		},
		Batch: BatchCfg{Concurrency: 4},
		Log:   LogCfg{Level: "info", TimeFormat: "15:04:05"},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config: %s fails %q: %w", verrs[0].Namespace(), verrs[0].Tag(), err)
		}
		return fmt.Errorf("config: struct validation failed: %w", err)
	}

	return nil
}

// Options converts the engine section into cover options.
func (e EngineCfg) Options() []cover.Option {
	gs := make([]int, 0, len(e.IterationCaps))
	for g := range e.IterationCaps {
		gs = append(gs, g)
	}
	slices.Sort(gs)

	opts := make([]cover.Option, 0, len(gs)+10)
	for _, g := range gs {
		opts = append(opts, cover.WithIterationCap(g, e.IterationCaps[g]))
	}
	opts = append(opts,
		cover.WithDefaultIterationCap(e.DefaultIterationCap),
		cover.WithFillThreshold(e.FillThreshold),
		cover.WithFillerBets(e.FillerBets),
		cover.WithOptimalThreshold(e.OptimalThreshold),
		cover.WithMaxPoolSize(e.MaxPoolSize),
		cover.WithMaxCombinations(e.MaxCombinations),
		cover.WithMaxWork(e.MaxWork),
		cover.WithMaxAuditWork(e.MaxAuditWork),
		cover.WithSeed(e.Seed),
	)
	if !e.UseLibrary {
		opts = append(opts, cover.WithoutLibrary())
	}

	return opts
}
