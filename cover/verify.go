// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// verify.go — coverage audit, independent of how the bets were produced.
//
// The verifier re-enumerates every G-subset of the pool and checks that some
// bet contains it. It knows nothing about the library or the solver, so the
// same code audits both.

package cover

import (
	"fmt"

	"github.com/katalvlaran/lotwheel/combo"
)

// prepareAudit validates inputs and converts bets to masks.
func prepareAudit(bets [][]int, pool []int, g int) (poolIndex, []uint64, error) {
	idx, err := newPoolIndex(pool)
	if err != nil {
		return poolIndex{}, nil, err
	}
	if err = idx.representable(); err != nil {
		return poolIndex{}, nil, err
	}
	if g < 1 {
		return poolIndex{}, nil, fmt.Errorf("%w: G=%d must be at least 1", ErrInvalidGuarantee, g)
	}
	if g > idx.size() {
		return poolIndex{}, nil, fmt.Errorf("%w: N=%d numbers cannot cover G=%d", ErrInsufficientPool, idx.size(), g)
	}

	var masks = make([]uint64, len(bets))
	for i, bet := range bets {
		if masks[i], err = idx.maskOf(bet); err != nil {
			return poolIndex{}, nil, fmt.Errorf("bet %d: %w", i, err)
		}
	}

	return idx, masks, nil
}

// containedInAny reports whether target ⊆ some bet.
func containedInAny(target uint64, bets []uint64) bool {
	for _, b := range bets {
		if target&^b == 0 {
			return true
		}
	}

	return false
}

// Verify counts how many G-subsets of pool are contained in at least one bet.
// Only the MaxAuditWork option applies; the others are accepted and ignored.
//
// Errors: ErrOptionViolation, ErrInvalidPool, ErrInvalidGuarantee,
// ErrInsufficientPool, ErrBetOutsidePool, ErrSearchSpaceTooLarge (N > 64 or
// C(N,G)·|bets| above MaxAuditWork).
//
// Complexity: O(C(N,G) · |bets|).
func Verify(bets [][]int, pool []int, g int, opts ...Option) (Coverage, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Coverage{}, err
	}
	idx, masks, err := prepareAudit(bets, pool, g)
	if err != nil {
		return Coverage{}, err
	}
	if err = checkAuditWork(idx.size(), g, len(masks), o); err != nil {
		return Coverage{}, err
	}

	return audit(idx, masks, g), nil
}

// audit is Verify without the work ceiling. The facade calls it on solver
// output, which checkCeilings has already bounded.
func audit(idx poolIndex, masks []uint64, g int) Coverage {
	var cov Coverage
	combo.Each(positions(idx.size()), g, func(t []int) bool {
		cov.TotalTargets++
		if containedInAny(maskOfPositions(t), masks) {
			cov.CoveredCount++
		}

		return true
	})
	cov.CoverageFraction = float64(cov.CoveredCount) / float64(cov.TotalTargets)

	return cov
}

// Uncovered lists up to limit G-subsets (as sorted pool values) that no bet
// contains. limit ≤ 0 means no limit. The MaxAuditWork ceiling applies as in
// Verify, whatever the limit.
//
// Complexity: O(C(N,G) · |bets|).
func Uncovered(bets [][]int, pool []int, g, limit int, opts ...Option) ([][]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, masks, err := prepareAudit(bets, pool, g)
	if err != nil {
		return nil, err
	}
	if err = checkAuditWork(idx.size(), g, len(masks), o); err != nil {
		return nil, err
	}

	var out [][]int
	combo.Each(idx.values, g, func(t []int) bool {
		m, _ := idx.maskOf(t)
		if !containedInAny(m, masks) {
			out = append(out, append([]int(nil), t...))
		}

		return limit <= 0 || len(out) < limit
	})

	return out, nil
}
