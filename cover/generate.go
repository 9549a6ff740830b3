// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// generate.go — the generation facade.
//
// Flow:
//  1. Options → pool shape → 1 ≤ G ≤ K → N ≥ G (fail fast, zero System).
//  2. N == K → single whole-pool bet (Trivial); N < K → single short bet (Short).
//     Both carry ErrDegenerateSystem as a warning.
//  3. Known design for (N, G, family(K)) → mapped bets, coverage 1.0.
//  4. Otherwise: ceilings (pool size, |B|+|T|, solver work) → greedy solver
//     → verifier → bound metrics.
//     Coverage < 1 carries ErrPartialCoverage as a warning.
//
// Generate is a pure function of its inputs: no I/O, no shared state. The
// only outward call is Options.Observer, invoked once with the Diagnostics.

package cover

import (
	"fmt"
	"slices"
)

// GenerateSystem runs Generate with DefaultOptions.
func GenerateSystem(pool []int, k, g int) (System, error) {
	return Generate(pool, k, g)
}

// Generate builds a shortened system of K-number bets over pool such that,
// where achievable, every G-subset of the pool sits inside some bet.
//
// Errors (fatal): ErrOptionViolation, ErrInvalidPool, ErrInvalidGuarantee,
// ErrInsufficientPool, ErrSearchSpaceTooLarge.
// Soft conditions are reported in System.Warnings, never as the error.
//
// Complexity: O(N log N) on the trivial and library paths; see greedy.go for
// the solver path.
func Generate(pool []int, k, g int, opts ...Option) (System, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return System{}, err
	}
	idx, err := newPoolIndex(pool)
	if err != nil {
		return System{}, err
	}
	var n = idx.size()
	if err = validateGuarantee(n, k, g); err != nil {
		return System{}, err
	}

	var sys System
	switch {
	case n <= k:
		sys = degenerateSystem(idx, k, g)
	default:
		if design, ok := Lookup(n, g, k); ok && o.UseLibrary {
			sys, err = knownDesignSystem(idx, k, g, design)
		} else {
			sys, err = solverSystem(idx, k, g, o)
		}
		if err != nil {
			return System{}, err
		}
	}

	sys.Efficiency = Efficiency(sys.TheoreticalMinimum, len(sys.Bets))
	sys.IsOptimal = !sys.Short && IsOptimal(sys.Efficiency, o.OptimalThreshold)
	o.Observer(sys.Diagnostics)

	return sys, nil
}

// degenerateSystem handles N ≤ K: one bet holding the whole pool.
func degenerateSystem(idx poolIndex, k, g int) System {
	var (
		n       = idx.size()
		targets = binomial(n, g)
		sys     = System{
			Pool:             slices.Clone(idx.values),
			K:                k,
			G:                g,
			Bets:             [][]int{slices.Clone(idx.values)},
			CoverageFraction: 1,
			Warnings:         []error{ErrDegenerateSystem},
		}
	)
	if n == k {
		sys.Trivial = true
		sys.TheoreticalMinimum = LowerBound(n, k, g)
		sys.Diagnostics.Method = MethodTrivial
	} else {
		sys.Short = true
		sys.Warnings[0] = fmt.Errorf("%w: pool of %d numbers cannot fill a %d-number bet", ErrDegenerateSystem, n, k)
		sys.Diagnostics.Method = MethodShort
	}
	sys.Diagnostics.TargetSpace = targets
	sys.Diagnostics.CoveredCount = targets
	sys.Diagnostics.TotalTargets = targets
	sys.Diagnostics.CoverageFraction = 1

	return sys
}

// knownDesignSystem maps a library hit. Coverage is 1 by construction and is
// not recomputed here.
func knownDesignSystem(idx poolIndex, k, g int, design [][]int) (System, error) {
	bets, err := MapDesign(idx.values, design)
	if err != nil {
		return System{}, err
	}
	var targets = binomial(idx.size(), g)

	return System{
		Pool:               slices.Clone(idx.values),
		K:                  k,
		G:                  g,
		Bets:               bets,
		CoverageFraction:   1,
		TheoreticalMinimum: LowerBound(idx.size(), k, g),
		UsedKnownDesign:    true,
		Diagnostics: Diagnostics{
			Method:           MethodKnownDesign,
			UsedKnownDesign:  true,
			TargetSpace:      targets,
			CoveredCount:     targets,
			TotalTargets:     targets,
			CoverageFraction: 1,
		},
	}, nil
}

// solverSystem runs the greedy solver and audits its output.
func solverSystem(idx poolIndex, k, g int, o Options) (System, error) {
	if err := idx.representable(); err != nil {
		return System{}, err
	}
	if err := checkCeilings(idx.size(), k, g, o); err != nil {
		return System{}, err
	}

	var (
		res   = solveGreedy(idx, k, g, o)
		masks = make([]uint64, len(res.Bets))
		err   error
	)
	for i, bet := range res.Bets {
		if masks[i], err = idx.maskOf(bet); err != nil {
			return System{}, fmt.Errorf("cover: auditing solver output: bet %d: %w", i, err)
		}
	}
	var cov = audit(idx, masks, g)

	var sys = System{
		Pool:               slices.Clone(idx.values),
		K:                  k,
		G:                  g,
		Bets:               res.Bets,
		CoverageFraction:   cov.CoverageFraction,
		TheoreticalMinimum: LowerBound(idx.size(), k, g),
		Diagnostics: Diagnostics{
			Method:           MethodGreedy,
			IterationsUsed:   res.IterationsUsed,
			IterationCap:     res.IterationCap,
			BetSpace:         res.BetSpace,
			TargetSpace:      res.TargetSpace,
			FillerBets:       res.FillerBets,
			CoveredCount:     cov.CoveredCount,
			TotalTargets:     cov.TotalTargets,
			CoverageFraction: cov.CoverageFraction,
		},
	}
	if !cov.Full() {
		sys.Warnings = []error{fmt.Errorf("%w: %d of %d %d-subsets covered",
			ErrPartialCoverage, cov.CoveredCount, cov.TotalTargets, g)}
	}

	return sys, nil
}
