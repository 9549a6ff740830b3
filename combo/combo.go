// SPDX-License-Identifier: MIT
// Package: lotwheel/combo
//
// combo.go — enumeration, counting and unranking of k-combinations.

package combo

import (
	"errors"
	"math"
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrIndexOutOfRange is returned by Unrank when idx ∉ [0, C(n,k)).
var ErrIndexOutOfRange = errors.New("combo: combination index out of range")

// ErrBadSize is returned by Unrank when k < 0, k > len(items) or C(n,k)
// does not fit in an int.
var ErrBadSize = errors.New("combo: invalid combination size")

// valid reports whether C(n,k) is a non-empty space.
// gonum's combin panics on k<0 or k>n, so every entry point checks this first.
func valid(n, k int) bool {
	return n >= 0 && k >= 0 && k <= n
}

// exactLogLimit bounds ln C(n,k) for the int fast path. Below it, gonum's
// running product (at most C(n,k)·k) stays inside int64.
const exactLogLimit = 38

// Count returns the binomial coefficient C(n,k), saturated at math.MaxInt.
// Returns 0 when k<0, n<0 or k>n (no combinations exist).
//
// Complexity: O(min(k, n-k)).
func Count(n, k int) int {
	c, _ := CountChecked(n, k)

	return c
}

// CountChecked returns C(n,k) and whether it fits an int. When it does not,
// the count is math.MaxInt.
//
// Complexity: O(min(k, n-k)) word operations on the fast path; big-integer
// arithmetic above it.
func CountChecked(n, k int) (int, bool) {
	if !valid(n, k) {
		return 0, true
	}
	if combin.LogGeneralizedBinomial(float64(n), float64(k)) < exactLogLimit {
		return combin.Binomial(n, k), true
	}

	var b = new(big.Int).Binomial(int64(n), int64(k))
	if !b.IsInt64() || b.Int64() > math.MaxInt {
		return math.MaxInt, false
	}

	return int(b.Int64()), true
}

// Each calls fn for every k-combination of items in source-position order.
// Iteration stops early when fn returns false.
//
// The slice passed to fn is reused between calls; copy it if it must
// outlive the callback.
//
// Complexity: O(C(n,k)·k) time, O(k) extra space.
func Each[T any](items []T, k int, fn func(c []T) bool) {
	var n = len(items)
	if !valid(n, k) || fn == nil {
		return
	}

	var (
		gen = combin.NewCombinationGenerator(n, k)
		idx = make([]int, k) // current index tuple
		buf = make([]T, k)   // reused value tuple
		i   int
	)
	for gen.Next() {
		gen.Combination(idx)
		for i = 0; i < k; i++ {
			buf[i] = items[idx[i]]
		}
		if !fn(buf) {
			return
		}
	}
}

// Combinations returns all C(n,k) k-sized combinations of items, each a fresh
// slice, in source-position order. Duplicate values in items are treated as
// distinct positions; callers that need value-uniqueness must dedupe first.
//
// Complexity: O(C(n,k)·k) time and memory.
func Combinations[T any](items []T, k int) [][]T {
	total, fits := CountChecked(len(items), k)
	if total == 0 {
		return [][]T{}
	}
	if !fits {
		total = 0 // no usable capacity hint
	}

	var out = make([][]T, 0, total)
	Each(items, k, func(c []T) bool {
		out = append(out, append(make([]T, 0, k), c...))

		return true
	})

	return out
}

// Indices returns every k-combination of the positions 0..n-1.
// Equivalent to Combinations over [0, 1, …, n-1] without building that slice.
//
// Complexity: O(C(n,k)·k).
func Indices(n, k int) [][]int {
	if !valid(n, k) {
		return [][]int{}
	}

	var (
		gen = combin.NewCombinationGenerator(n, k)
		out = make([][]int, 0, Count(n, k))
	)
	for gen.Next() {
		out = append(out, gen.Combination(nil))
	}

	return out
}

// Unrank returns the combination with rank idx out of the C(n,k)
// combinations of items. The rank↔combination mapping is a bijection over
// [0, C(n,k)); it lets callers sample a uniformly random combination without
// enumerating the space.
//
// Errors: ErrBadSize (also when C(n,k) exceeds math.MaxInt), ErrIndexOutOfRange.
// Complexity: O(n).
func Unrank[T any](items []T, k, idx int) ([]T, error) {
	var n = len(items)
	if !valid(n, k) {
		return nil, ErrBadSize
	}
	total, fits := CountChecked(n, k)
	if !fits {
		return nil, ErrBadSize
	}
	if idx < 0 || idx >= total {
		return nil, ErrIndexOutOfRange
	}

	var (
		pos = combin.IndexToCombination(nil, idx, n, k)
		out = make([]T, k)
		i   int
	)
	for i = 0; i < k; i++ {
		out[i] = items[pos[i]]
	}

	return out, nil
}
