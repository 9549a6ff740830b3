// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// types.go — result, diagnostics and family types.

package cover

import "slices"

// BetFamily names the two standard bet sizes served by the design library.
type BetFamily int

const (
	// NoFamily is reported for bet sizes the library does not serve.
	NoFamily BetFamily = iota

	// SixPick covers 6-number games (K = 6).
	SixPick

	// FivePick covers 5-number games (K = 5).
	FivePick
)

// String returns a stable lowercase label.
func (f BetFamily) String() string {
	switch f {
	case SixPick:
		return "6-pick"
	case FivePick:
		return "5-pick"
	default:
		return "none"
	}
}

// BetSize returns K for the family, 0 for NoFamily.
func (f BetFamily) BetSize() int {
	switch f {
	case SixPick:
		return 6
	case FivePick:
		return 5
	default:
		return 0
	}
}

// FamilyOf maps a bet size K to its library family.
func FamilyOf(k int) BetFamily {
	switch k {
	case 6:
		return SixPick
	case 5:
		return FivePick
	default:
		return NoFamily
	}
}

// Method records which path produced a System.
type Method string

const (
	// MethodTrivial: N == K, the single bet is the whole pool.
	MethodTrivial Method = "trivial"

	// MethodShort: N < K, the single bet cannot reach K numbers.
	MethodShort Method = "short"

	// MethodKnownDesign: the bets come from the precomputed design library.
	MethodKnownDesign Method = "known-design"

	// MethodGreedy: the bets come from the greedy covering solver.
	MethodGreedy Method = "greedy"
)

// Coverage is the CoverageVerifier outcome.
type Coverage struct {
	CoveredCount     int
	TotalTargets     int
	CoverageFraction float64
}

// Full reports whether every target subset is covered.
func (c Coverage) Full() bool {
	return c.TotalTargets > 0 && c.CoveredCount == c.TotalTargets
}

// Diagnostics is the structured record of one generation run.
// It replaces console tracing: observers log it, tests assert on it.
type Diagnostics struct {
	Method           Method
	UsedKnownDesign  bool
	IterationsUsed   int // greedy iterations that selected a bet
	IterationCap     int // effective cap (tuning cap bounded by |B|)
	BetSpace         int // |B| = C(N,K); 0 when the solver did not run
	TargetSpace      int // |T| = C(N,G)
	FillerBets       int // random bets appended by the post-pass
	CoveredCount     int
	TotalTargets     int
	CoverageFraction float64
}

// System is the result of one generation request. It is built fresh per
// call and must be treated as read-only; accessors return copies.
type System struct {
	// Pool is the sorted copy of the caller's numbers.
	Pool []int

	// K is the bet size; G is the guarantee.
	K, G int

	// Bets holds the generated bets, each sorted ascending.
	Bets [][]int

	// CoverageFraction is the share of G-subsets of Pool contained in some bet.
	CoverageFraction float64

	// TheoreticalMinimum is LowerBound(N,K,G): an approximation, not Schönheim.
	TheoreticalMinimum int

	// Efficiency is TheoreticalMinimum / len(Bets); IsOptimal is Efficiency ≥ threshold.
	Efficiency float64
	IsOptimal  bool

	// UsedKnownDesign marks a library hit (coverage guaranteed by construction).
	UsedKnownDesign bool

	// Trivial marks N == K; Short marks N < K (bet shorter than K).
	Trivial bool
	Short   bool

	Diagnostics Diagnostics

	// Warnings carries soft conditions: ErrDegenerateSystem, ErrPartialCoverage.
	Warnings []error
}

// TotalBets returns len(Bets).
func (s System) TotalBets() int { return len(s.Bets) }

// Guaranteed reports whether full coverage holds by construction: a library
// hit or the trivial whole-pool bet. Solver output that reached 1.0 was
// verified after the fact, which is reported by CoverageFraction instead.
func (s System) Guaranteed() bool {
	return s.UsedKnownDesign || s.Trivial
}

// Numbers returns a copy of the sorted pool.
func (s System) Numbers() []int { return slices.Clone(s.Pool) }

// BetList returns a deep copy of the bets.
func (s System) BetList() [][]int {
	out := make([][]int, len(s.Bets))
	for i, b := range s.Bets {
		out[i] = slices.Clone(b)
	}

	return out
}
