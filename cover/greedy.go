// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// greedy.go — heuristic set cover over the full bet space.
//
// Algorithm (classic greedy set cover):
//  1. B = all K-subsets of the pool, T = all G-subsets (as masks).
//  2. covered = ∅ (set of target masks), selected = ∅.
//  3. Repeat up to min(cap(G), |B|) times:
//     pick the unselected bet covering the most uncovered targets
//     (first encountered wins ties); stop if that count is 0;
//     select it, mark its targets; stop once |covered| == |T|.
//  4. If |covered|/|T| < FillThreshold, append up to FillerBets bets drawn
//     uniformly from the unselected remainder. They are not re-scored.
//
// Complexity (the scaling cliff):
//
//	One iteration scans every bet in B and probes each of its C(K,G) targets,
//	O(|B|·C(K,G)) ≤ O(|B|·|T|). With |B| = C(N,K) this is practical for
//	N ≲ 15–18 only. MaxWork bounds cap·|B|·C(K,G) directly; MaxPoolSize and
//	MaxCombinations bound the memory. Memory: O(|B| + |T|).

package cover

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lotwheel/combo"
)

// GreedyResult is the raw solver output plus its counters.
type GreedyResult struct {
	// Bets in selection order (greedy picks first, then filler), each sorted.
	Bets [][]int

	IterationsUsed int
	IterationCap   int
	FillerBets     int

	// CoveredCount counts targets covered by the greedy picks only.
	CoveredCount int
	TotalTargets int

	BetSpace    int
	TargetSpace int
}

// Greedy runs the covering solver directly, bypassing the design library and
// the trivial-case handling of Generate. It still validates inputs and
// enforces the resource ceilings.
//
// Errors: ErrOptionViolation, ErrInvalidPool, ErrInvalidGuarantee,
// ErrInsufficientPool (also for K > N), ErrSearchSpaceTooLarge.
func Greedy(pool []int, k, g int, opts ...Option) (GreedyResult, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return GreedyResult{}, err
	}
	idx, err := newPoolIndex(pool)
	if err != nil {
		return GreedyResult{}, err
	}
	if err = validateGuarantee(idx.size(), k, g); err != nil {
		return GreedyResult{}, err
	}
	if k > idx.size() {
		return GreedyResult{}, fmt.Errorf("%w: K=%d exceeds N=%d", ErrInsufficientPool, k, idx.size())
	}
	if err = idx.representable(); err != nil {
		return GreedyResult{}, err
	}
	if err = checkCeilings(idx.size(), k, g, o); err != nil {
		return GreedyResult{}, err
	}

	return solveGreedy(idx, k, g, o), nil
}

// greedyState holds the per-call working set. Nothing here outlives a call.
type greedyState struct {
	bets     []uint64 // B as masks, enumeration order
	sub      [][]int  // C(K,G) index tuples inside one bet
	covered  map[uint64]struct{}
	scratch  []int // positions of the bet under evaluation
	selected []bool
}

// expand writes the set bit positions of b into s.scratch.
func (s *greedyState) expand(b uint64) {
	var i int
	for b != 0 {
		s.scratch[i] = bits.TrailingZeros64(b)
		b &= b - 1
		i++
	}
}

// gain counts the uncovered targets inside bet b.
func (s *greedyState) gain(b uint64) int {
	s.expand(b)

	var n int
	for _, tuple := range s.sub {
		if _, ok := s.covered[s.targetMask(tuple)]; !ok {
			n++
		}
	}

	return n
}

// mark adds every target inside bet b to covered.
func (s *greedyState) mark(b uint64) {
	s.expand(b)
	for _, tuple := range s.sub {
		s.covered[s.targetMask(tuple)] = struct{}{}
	}
}

// targetMask maps a tuple of in-bet offsets to a pool mask.
func (s *greedyState) targetMask(tuple []int) uint64 {
	var m uint64
	for _, off := range tuple {
		m |= 1 << uint(s.scratch[off])
	}

	return m
}

// solveGreedy assumes validated inputs: 1 ≤ G ≤ K ≤ N ≤ 64.
func solveGreedy(idx poolIndex, k, g int, o Options) GreedyResult {
	var (
		n     = idx.size()
		total = binomial(n, g)
		st    = greedyState{
			bets:    make([]uint64, 0, binomial(n, k)),
			sub:     combo.Indices(k, g),
			covered: make(map[uint64]struct{}, total),
			scratch: make([]int, k),
		}
	)
	combo.Each(positions(n), k, func(c []int) bool {
		st.bets = append(st.bets, maskOfPositions(c))

		return true
	})
	st.selected = make([]bool, len(st.bets))

	var (
		limit    = min(o.iterationCap(g), len(st.bets))
		perBet   = len(st.sub) // no bet can cover more than this
		picks    = make([]int, 0, limit)
		iter     int
		i        int
		best     int
		bestGain int
		gn       int
	)
	for iter = 0; iter < limit; iter++ {
		best, bestGain = -1, 0
		for i = range st.bets {
			if st.selected[i] {
				continue
			}
			gn = st.gain(st.bets[i])
			if gn > bestGain {
				best, bestGain = i, gn
				if gn == perBet {
					break // unbeatable; later bets could only tie
				}
			}
		}
		if best < 0 {
			break
		}
		st.selected[best] = true
		picks = append(picks, best)
		st.mark(st.bets[best])
		if len(st.covered) == total {
			break
		}
	}

	var res = GreedyResult{
		IterationsUsed: len(picks),
		IterationCap:   limit,
		CoveredCount:   len(st.covered),
		TotalTargets:   total,
		BetSpace:       len(st.bets),
		TargetSpace:    total,
	}

	if float64(len(st.covered))/float64(total) < o.FillThreshold && o.FillerBets > 0 {
		var rest = make([]int, 0, len(st.bets)-len(picks))
		for i = range st.bets {
			if !st.selected[i] {
				rest = append(rest, i)
			}
		}
		filler := sampleWithoutReplacement(rest, o.FillerBets, o.randSource())
		picks = append(picks, filler...)
		res.FillerBets = len(filler)
	}

	res.Bets = make([][]int, len(picks))
	for i, p := range picks {
		res.Bets[i] = idx.valuesOf(st.bets[p])
	}

	return res
}
