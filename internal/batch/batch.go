// SPDX-License-Identifier: MIT
// Package: lotwheel/internal/batch
//
// batch.go — concurrent batch generation.

// Package batch generates many independent systems concurrently.
//
// Each request gets its own random stream, derived from the batch seed and
// the request's position, so a batch file replays identically regardless of
// concurrency or scheduling.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lotwheel/cover"
)

// ErrEmptyBatch is returned when a batch file holds no requests.
var ErrEmptyBatch = errors.New("batch: no requests")

// Request is one generation job.
type Request struct {
	ID   string `yaml:"id" json:"id"`
	Pool []int  `yaml:"pool" json:"pool"`
	K    int    `yaml:"k" json:"k"`
	G    int    `yaml:"g" json:"g"`
}

// File is the on-disk batch format.
type File struct {
	Seed     int64     `yaml:"seed"`
	Requests []Request `yaml:"requests"`
}

// Result pairs a request with its outcome. Err holds a per-request
// generation error; it never aborts the rest of the batch.
type Result struct {
	Index   int
	Request Request
	System  cover.System
	Err     error
}

// Runner runs batches.
type Runner struct {
	// Concurrency bounds in-flight requests; < 1 means 1.
	Concurrency int
	// Seed is the parent of every per-request stream.
	Seed int64
	// Options apply to every request; the runner appends the per-request seed.
	Options []cover.Option
}

// Parse decodes a YAML batch document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("batch: parse: %w", err)
	}
	if len(f.Requests) == 0 {
		return File{}, ErrEmptyBatch
	}
	for i := range f.Requests {
		if f.Requests[i].ID == "" {
			f.Requests[i].ID = fmt.Sprintf("req-%d", i+1)
		}
	}

	return f, nil
}

// ParseFile reads and decodes path.
func ParseFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("batch: %w", err)
	}

	return Parse(data)
}

// Run generates every request and returns results in request order.
// A canceled ctx stops scheduling and returns ctx's error.
func (r Runner) Run(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Concurrency, 1))

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		opts := append(slices.Clone(r.Options), cover.WithSeed(cover.DeriveSeed(r.Seed, uint64(i))))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sys, err := cover.Generate(req.Pool, req.K, req.G, opts...)
			results[i] = Result{Index: i, Request: req, System: sys, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
