// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// validate.go — input validation and the pool ↔ bitmask representation.
//
// Representation:
//   • The pool is copied and sorted; position i ↔ bit i.
//   • A bet or target subset is a uint64 mask over positions. The mask is the
//     canonical key of a subset: equal sets ⇔ equal masks, independent of order.
//   • Containment target ⊆ bet is t &^ b == 0.
//   • Pools wider than 64 numbers cannot be represented (ErrSearchSpaceTooLarge).
//
// Validation priority (first failure wins):
//   pool shape (ErrInvalidPool) → guarantee range (ErrInvalidGuarantee)
//   → pool vs guarantee (ErrInsufficientPool) → representation width.

package cover

import (
	"fmt"
	"math/bits"
	"slices"
)

// poolIndex is a validated, sorted pool with value → position lookup.
type poolIndex struct {
	values []int
	pos    map[int]int
}

// newPoolIndex copies, validates and sorts pool.
//
// Complexity: O(N log N).
func newPoolIndex(pool []int) (poolIndex, error) {
	if len(pool) == 0 {
		return poolIndex{}, fmt.Errorf("%w: empty pool", ErrInvalidPool)
	}

	var (
		values = slices.Clone(pool)
		pos    = make(map[int]int, len(pool))
		i, v   int
	)
	slices.Sort(values)
	for i, v = range values {
		if v <= 0 {
			return poolIndex{}, fmt.Errorf("%w: non-positive number %d", ErrInvalidPool, v)
		}
		if i > 0 && values[i-1] == v {
			return poolIndex{}, fmt.Errorf("%w: duplicate number %d", ErrInvalidPool, v)
		}
		pos[v] = i
	}

	return poolIndex{values: values, pos: pos}, nil
}

// size returns N.
func (p poolIndex) size() int { return len(p.values) }

// representable reports whether every subset fits a uint64 mask.
func (p poolIndex) representable() error {
	if p.size() > maxRepresentable {
		return fmt.Errorf("%w: pool of %d numbers exceeds %d", ErrSearchSpaceTooLarge, p.size(), maxRepresentable)
	}

	return nil
}

// maskOf converts a bet to its mask. Values outside the pool → ErrBetOutsidePool.
func (p poolIndex) maskOf(bet []int) (uint64, error) {
	var m uint64
	for _, v := range bet {
		i, ok := p.pos[v]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrBetOutsidePool, v)
		}
		m |= 1 << uint(i)
	}

	return m, nil
}

// positions returns [0, 1, …, n-1].
func positions(n int) []int {
	var out = make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// maskOfPositions converts an index tuple to its mask.
func maskOfPositions(idx []int) uint64 {
	var m uint64
	for _, i := range idx {
		m |= 1 << uint(i)
	}

	return m
}

// valuesOf expands a mask to sorted pool values (bits ascend ⇒ values ascend).
func (p poolIndex) valuesOf(m uint64) []int {
	var out = make([]int, 0, bits.OnesCount64(m))
	for m != 0 {
		i := bits.TrailingZeros64(m)
		out = append(out, p.values[i])
		m &= m - 1
	}

	return out
}

// validateGuarantee enforces 1 ≤ G ≤ K, then N ≥ G.
func validateGuarantee(n, k, g int) error {
	if g < 1 {
		return fmt.Errorf("%w: G=%d must be at least 1", ErrInvalidGuarantee, g)
	}
	if g > k {
		return fmt.Errorf("%w: G=%d exceeds bet size K=%d", ErrInvalidGuarantee, g, k)
	}
	if n < g {
		return fmt.Errorf("%w: N=%d numbers cannot cover G=%d", ErrInsufficientPool, n, g)
	}

	return nil
}

// checkCeilings is the facade's resource governance for the solver path.
// Counts saturate at math.MaxInt, so huge spaces compare as "above" rather
// than wrapping negative.
func checkCeilings(n, k, g int, o Options) error {
	if n > o.MaxPoolSize {
		return fmt.Errorf("%w: N=%d above ceiling %d", ErrSearchSpaceTooLarge, n, o.MaxPoolSize)
	}
	var (
		betSpace    = binomial(n, k)
		targetSpace = binomial(n, g)
		space       = satAdd(betSpace, targetSpace)
	)
	if space > o.MaxCombinations {
		return fmt.Errorf("%w: C(%d,%d)+C(%d,%d)=%d above ceiling %d",
			ErrSearchSpaceTooLarge, n, k, n, g, space, o.MaxCombinations)
	}
	var (
		iterations = min(o.iterationCap(g), betSpace)
		work       = satMul(satMul(iterations, betSpace), binomial(k, g))
	)
	if work > o.MaxWork {
		return fmt.Errorf("%w: solver work %d·C(%d,%d)·C(%d,%d)=%d above ceiling %d",
			ErrSearchSpaceTooLarge, iterations, n, k, k, g, work, o.MaxWork)
	}

	return nil
}

// checkAuditWork bounds the verifier: every G-subset is tested against up to
// every bet.
func checkAuditWork(n, g, bets int, o Options) error {
	var work = satMul(binomial(n, g), max(bets, 1))
	if work > o.MaxAuditWork {
		return fmt.Errorf("%w: audit work C(%d,%d)·%d=%d above ceiling %d",
			ErrSearchSpaceTooLarge, n, g, max(bets, 1), work, o.MaxAuditWork)
	}

	return nil
}
