// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// library.go — exact-match lookup into the precomputed design table.
//
// Contract:
//   • A hit guarantees 100% coverage by construction; it is returned as-is.
//   • Lookup is exact on (pool size, guarantee, family). No interpolation.
//   • Bet sizes outside the 6-pick and 5-pick families never hit.

package cover

import (
	"cmp"
	"slices"
)

// DesignKey identifies one library entry.
type DesignKey struct {
	PoolSize  int
	Guarantee int
	Family    BetFamily
}

// DesignInfo summarizes one entry for listings.
type DesignInfo struct {
	DesignKey
	BetSize int
	Bets    int
}

// Lookup returns a copy of the index tuples for (poolSize, g) at bet size k.
func Lookup(poolSize, g, k int) ([][]int, bool) {
	var fam = FamilyOf(k)
	if fam == NoFamily {
		return nil, false
	}
	design, ok := knownDesigns[DesignKey{PoolSize: poolSize, Guarantee: g, Family: fam}]
	if !ok {
		return nil, false
	}

	var out = make([][]int, len(design))
	for i, t := range design {
		out[i] = slices.Clone(t)
	}

	return out, true
}

// MapDesign maps index tuples onto the sorted pool and sorts each bet.
// The pool is sorted on a copy first: indices address sorted positions.
// Indices outside the pool → ErrBetOutsidePool.
//
// Complexity: O(N log N + B·K log K).
func MapDesign(pool []int, design [][]int) ([][]int, error) {
	var sorted = slices.Clone(pool)
	slices.Sort(sorted)

	var bets = make([][]int, len(design))
	for i, tuple := range design {
		bet := make([]int, len(tuple))
		for j, idx := range tuple {
			if idx < 0 || idx >= len(sorted) {
				return nil, ErrBetOutsidePool
			}
			bet[j] = sorted[idx]
		}
		slices.Sort(bet)
		bets[i] = bet
	}

	return bets, nil
}

// Designs lists every library entry ordered by family, pool size, guarantee.
func Designs() []DesignInfo {
	var out = make([]DesignInfo, 0, len(knownDesigns))
	for key, design := range knownDesigns {
		out = append(out, DesignInfo{DesignKey: key, BetSize: key.Family.BetSize(), Bets: len(design)})
	}
	slices.SortFunc(out, func(a, b DesignInfo) int {
		return cmp.Or(
			cmp.Compare(a.Family, b.Family),
			cmp.Compare(a.PoolSize, b.PoolSize),
			cmp.Compare(a.Guarantee, b.Guarantee),
		)
	})

	return out
}
