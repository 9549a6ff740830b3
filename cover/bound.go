// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// bound.go — theoretical lower bound and efficiency signal.
//
// LowerBound is the simple counting bound ⌈C(N,G) / C(K,G)⌉: every bet holds
// exactly C(K,G) target subsets, so at least that many bets are needed to hold
// all C(N,G) of them. It is weaker than the Schönheim bound and is reported as
// an approximation only; nothing in the engine relies on it being tight.
//
// Efficiency = LowerBound / actual bet count. The 0.8 "optimal" threshold is
// an empirical cut-off, not a proven property.

package cover

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lotwheel/combo"
)

// binomial is C(n,k), 0 outside 0 ≤ k ≤ n, saturated at math.MaxInt.
func binomial(n, k int) int {
	return combo.Count(n, k)
}

// satAdd and satMul clamp non-negative int arithmetic at math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

// LowerBound returns ⌈C(n,g) / C(k,g)⌉, or 0 when g < 1, g > k or g > n.
// For fixed n ≥ k it is non-decreasing in g. Bounds beyond math.MaxInt
// saturate.
//
// Complexity: O(g).
func LowerBound(n, k, g int) int {
	if g < 1 || g > k || g > n {
		return 0
	}
	targets, fitsT := combo.CountChecked(n, g)
	perBet, fitsB := combo.CountChecked(k, g)
	if fitsT && fitsB {
		bound := targets / perBet
		if targets%perBet != 0 {
			bound++
		}

		return bound
	}

	// C(n,g) or C(k,g) overflowed: redo the division exactly.
	var (
		num = new(big.Int).Binomial(int64(n), int64(g))
		den = new(big.Int).Binomial(int64(k), int64(g))
		rem = new(big.Int)
	)
	q, _ := new(big.Int).QuoRem(num, den, rem)
	if rem.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	if !q.IsInt64() || q.Int64() > math.MaxInt {
		return math.MaxInt
	}

	return int(q.Int64())
}

// Efficiency returns lowerBound / actual, or 0 when actual ≤ 0.
func Efficiency(lowerBound, actual int) float64 {
	if actual <= 0 {
		return 0
	}

	return float64(lowerBound) / float64(actual)
}

// IsOptimal reports efficiency ≥ threshold.
func IsOptimal(efficiency, threshold float64) bool {
	return efficiency >= threshold
}
