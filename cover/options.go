// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// options.go — tuning knobs, resource ceilings and hooks.
//
// Contract:
//   • DefaultOptions() is the single source of defaults.
//   • Option constructors never panic; an invalid value is recorded and
//     surfaced as ErrOptionViolation by the entry point (Generate, Greedy,
//     Verify, Uncovered).
//   • Later options override earlier ones.
//   • Iteration caps, fill threshold and filler count are empirical tuning
//     parameters, not invariants of the algorithm.

package cover

import "fmt"

const (
	// DefaultIterationCap applies to guarantees without an explicit cap.
	DefaultIterationCap = 150

	// DefaultFillThreshold triggers the random filler post-pass below this coverage.
	DefaultFillThreshold = 0.98

	// DefaultFillerBets is the maximum number of random bets the post-pass appends.
	DefaultFillerBets = 30

	// DefaultOptimalThreshold is the efficiency at which a system is called optimal.
	DefaultOptimalThreshold = 0.8

	// DefaultMaxPoolSize rejects larger pools on the solver path.
	DefaultMaxPoolSize = 20

	// DefaultMaxCombinations bounds |B| + |T| on the solver path.
	DefaultMaxCombinations = 250_000

	// DefaultMaxWork bounds the solver's subset probes,
	// min(cap(G), |B|) · |B| · C(K,G).
	DefaultMaxWork = 100_000_000

	// DefaultMaxAuditWork bounds the verifier's containment tests,
	// C(N,G) · max(1, |bets|).
	DefaultMaxAuditWork = 2_000_000_000

	// maxRepresentable is the widest pool a uint64 target mask can hold.
	maxRepresentable = 64
)

// defaultIterationCaps maps guarantee → greedy iteration ceiling.
func defaultIterationCaps() map[int]int {
	return map[int]int{3: 50, 4: 100, 5: 200, 6: 300}
}

// Options configures generation.
type Options struct {
	// IterationCaps maps a guarantee G to the greedy iteration ceiling.
	IterationCaps map[int]int

	// DefaultIterationCap is used for guarantees missing from IterationCaps.
	DefaultIterationCap int

	// FillThreshold: post-pass runs when coverage < FillThreshold. 0 disables it.
	FillThreshold float64

	// FillerBets: maximum random bets appended by the post-pass.
	FillerBets int

	// OptimalThreshold: IsOptimal = Efficiency ≥ OptimalThreshold.
	OptimalThreshold float64

	// MaxPoolSize, MaxCombinations and MaxWork are the facade's resource
	// ceilings. They apply only when the solver would run.
	MaxPoolSize     int
	MaxCombinations int
	MaxWork         int

	// MaxAuditWork is the ceiling of Verify and Uncovered.
	MaxAuditWork int

	// Seed feeds the default RandSource when Rand is nil (0 ⇒ fixed default seed).
	Seed int64

	// Rand overrides the random source used by the filler post-pass.
	Rand RandSource

	// Observer receives the final Diagnostics of every successful Generate call.
	Observer func(Diagnostics)

	// UseLibrary enables the known-design lookup (default true).
	UseLibrary bool

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the production defaults:
//   - IterationCaps:       G=3→50, G=4→100, G=5→200, G=6→300
//   - DefaultIterationCap: 150
//   - FillThreshold:       0.98, FillerBets: 30
//   - OptimalThreshold:    0.8
//   - MaxPoolSize:         20, MaxCombinations: 250 000
//   - MaxWork:             100 000 000, MaxAuditWork: 2 000 000 000
//   - Seed:                0 (deterministic default stream), Rand: nil
//   - Observer:            no-op
//   - UseLibrary:          true
func DefaultOptions() Options {
	return Options{
		IterationCaps:       defaultIterationCaps(),
		DefaultIterationCap: DefaultIterationCap,
		FillThreshold:       DefaultFillThreshold,
		FillerBets:          DefaultFillerBets,
		OptimalThreshold:    DefaultOptimalThreshold,
		MaxPoolSize:         DefaultMaxPoolSize,
		MaxCombinations:     DefaultMaxCombinations,
		MaxWork:             DefaultMaxWork,
		MaxAuditWork:        DefaultMaxAuditWork,
		Observer:            func(Diagnostics) {},
		UseLibrary:          true,
	}
}

// resolveOptions applies opts over DefaultOptions and reports the first violation.
func resolveOptions(opts []Option) (Options, error) {
	var o = DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// fail records the first violation only.
func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// iterationCap returns the tuning cap for g.
func (o Options) iterationCap(g int) int {
	if c, ok := o.IterationCaps[g]; ok {
		return c
	}

	return o.DefaultIterationCap
}

// WithIterationCap sets the greedy iteration ceiling for guarantee g.
// g < 1 or limit < 1 → ErrOptionViolation.
func WithIterationCap(g, limit int) Option {
	return func(o *Options) {
		if g < 1 || limit < 1 {
			o.fail("iteration cap g=%d limit=%d", g, limit)

			return
		}
		caps := make(map[int]int, len(o.IterationCaps)+1)
		for k, v := range o.IterationCaps {
			caps[k] = v
		}
		caps[g] = limit
		o.IterationCaps = caps
	}
}

// WithDefaultIterationCap sets the fallback iteration ceiling (must be ≥ 1).
func WithDefaultIterationCap(limit int) Option {
	return func(o *Options) {
		if limit < 1 {
			o.fail("default iteration cap %d", limit)

			return
		}
		o.DefaultIterationCap = limit
	}
}

// WithFillThreshold sets the post-pass trigger; must lie in [0,1].
func WithFillThreshold(th float64) Option {
	return func(o *Options) {
		if th < 0 || th > 1 {
			o.fail("fill threshold %g", th)

			return
		}
		o.FillThreshold = th
	}
}

// WithFillerBets sets the post-pass size; 0 disables filler bets, negative is invalid.
func WithFillerBets(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("filler bets %d", n)

			return
		}
		o.FillerBets = n
	}
}

// WithOptimalThreshold sets the efficiency threshold; must lie in (0,1].
func WithOptimalThreshold(th float64) Option {
	return func(o *Options) {
		if th <= 0 || th > 1 {
			o.fail("optimal threshold %g", th)

			return
		}
		o.OptimalThreshold = th
	}
}

// WithMaxPoolSize sets the pool-size ceiling; must lie in [1,64].
func WithMaxPoolSize(n int) Option {
	return func(o *Options) {
		if n < 1 || n > maxRepresentable {
			o.fail("max pool size %d", n)

			return
		}
		o.MaxPoolSize = n
	}
}

// WithMaxCombinations sets the |B|+|T| ceiling; must be ≥ 1.
func WithMaxCombinations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("max combinations %d", n)

			return
		}
		o.MaxCombinations = n
	}
}

// WithMaxWork sets the solver work ceiling; must be ≥ 1.
func WithMaxWork(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("max work %d", n)

			return
		}
		o.MaxWork = n
	}
}

// WithMaxAuditWork sets the verifier work ceiling; must be ≥ 1.
func WithMaxAuditWork(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("max audit work %d", n)

			return
		}
		o.MaxAuditWork = n
	}
}

// WithSeed selects a deterministic default random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a random source (tests pass stubs; production a real RNG).
// nil → ErrOptionViolation.
func WithRand(r RandSource) Option {
	return func(o *Options) {
		if r == nil {
			o.fail("nil random source")

			return
		}
		o.Rand = r
	}
}

// WithObserver registers fn to receive Diagnostics; nil is ignored.
func WithObserver(fn func(Diagnostics)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithoutLibrary forces the solver path even when a known design exists.
func WithoutLibrary() Option {
	return func(o *Options) {
		o.UseLibrary = false
	}
}
