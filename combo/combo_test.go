package combo_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lotwheel/combo"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// TestCombinations_SmallOrder locks the source-position order on a tiny input.
func TestCombinations_SmallOrder(t *testing.T) {
	got := combo.Combinations([]string{"a", "b", "c", "d"}, 2)
	want := [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"},
		{"c", "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

// TestCombinations_OrderFollowsPosition checks that order is by position, not by value.
func TestCombinations_OrderFollowsPosition(t *testing.T) {
	got := combo.Combinations([]int{9, 3, 7}, 2)
	require.Equal(t, [][]int{{9, 3}, {9, 7}, {3, 7}}, got)
}

// TestCombinations_CountAndUniqueness checks |result| == C(n,k), each of size k, no duplicates.
func TestCombinations_CountAndUniqueness(t *testing.T) {
	cases := []struct{ n, k int }{
		{0, 0}, {1, 1}, {5, 0}, {5, 5}, {7, 3}, {10, 6}, {12, 4}, {15, 7}, {20, 3},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d_k=%d", tc.n, tc.k), func(t *testing.T) {
			all := combo.Combinations(seq(tc.n), tc.k)
			require.Len(t, all, combo.Count(tc.n, tc.k))

			seen := make(map[string]struct{}, len(all))
			for _, c := range all {
				require.Len(t, c, tc.k)
				key := fmt.Sprint(c)
				_, dup := seen[key]
				require.False(t, dup, "duplicate combination %v", c)
				seen[key] = struct{}{}
			}
		})
	}
}

// TestCombinations_Edges covers k==0, k>n and k<0.
func TestCombinations_Edges(t *testing.T) {
	require.Equal(t, [][]int{{}}, combo.Combinations([]int{1, 2, 3}, 0))
	require.Empty(t, combo.Combinations([]int{1, 2}, 3))
	require.Empty(t, combo.Combinations([]int{1, 2}, -1))
	require.Empty(t, combo.Combinations([]int(nil), 1))
}

// TestCombinations_LargeK exercises depth well beyond what a recursive walk would need.
func TestCombinations_LargeK(t *testing.T) {
	all := combo.Combinations(seq(20), 12)
	require.Len(t, all, 125970)
	require.Equal(t, seq(12), all[0])
	require.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, all[len(all)-1])
}

// TestCombinations_ResultsAreIndependent ensures returned slices do not alias.
func TestCombinations_ResultsAreIndependent(t *testing.T) {
	all := combo.Combinations([]int{1, 2, 3}, 2)
	all[0][0] = 100
	require.Equal(t, []int{1, 3}, all[1])
	require.Equal(t, []int{2, 3}, all[2])
}

func TestEach_EarlyStop(t *testing.T) {
	var visited int
	combo.Each(seq(10), 3, func(c []int) bool {
		visited++

		return visited < 5
	})
	require.Equal(t, 5, visited)
}

func TestEach_NilCallback(t *testing.T) {
	require.NotPanics(t, func() { combo.Each(seq(4), 2, nil) })
}

func TestIndices_MatchesCombinationsOfPositions(t *testing.T) {
	positions := []int{0, 1, 2, 3, 4, 5, 6}
	require.Equal(t, combo.Combinations(positions, 4), combo.Indices(7, 4))
	require.Empty(t, combo.Indices(3, 4))
}

func TestCount(t *testing.T) {
	require.Equal(t, 1, combo.Count(0, 0))
	require.Equal(t, 10, combo.Count(5, 2))
	require.Equal(t, 184756, combo.Count(20, 10))
	require.Equal(t, 0, combo.Count(3, 4))
	require.Equal(t, 0, combo.Count(3, -1))
	require.Equal(t, 0, combo.Count(-1, 0))
}

// TestCount_Saturates covers counts at and beyond the int64 range.
func TestCount_Saturates(t *testing.T) {
	require.Equal(t, 1832624140942590534, combo.Count(64, 32))
	require.Equal(t, 7219428434016265740, combo.Count(66, 33))
	require.Equal(t, 137846528820, combo.Count(40, 20))

	got, fits := combo.CountChecked(70, 35)
	require.False(t, fits)
	require.Equal(t, math.MaxInt, got)
	require.Equal(t, math.MaxInt, combo.Count(70, 35))
	require.Equal(t, math.MaxInt, combo.Count(67, 33))

	got, fits = combo.CountChecked(70, 70)
	require.True(t, fits)
	require.Equal(t, 1, got)

	_, err := combo.Unrank(seq(70), 35, 0)
	require.ErrorIs(t, err, combo.ErrBadSize)
}

// TestUnrank_Bijection checks every rank yields a distinct valid combination.
func TestUnrank_Bijection(t *testing.T) {
	items := []int{4, 8, 15, 16, 23, 42}
	total := combo.Count(len(items), 3)
	seen := make(map[string]struct{}, total)
	for idx := 0; idx < total; idx++ {
		c, err := combo.Unrank(items, 3, idx)
		require.NoError(t, err)
		require.Len(t, c, 3)
		seen[fmt.Sprint(c)] = struct{}{}
	}
	require.Len(t, seen, total)
}

func TestUnrank_Errors(t *testing.T) {
	_, err := combo.Unrank([]int{1, 2, 3}, 4, 0)
	require.ErrorIs(t, err, combo.ErrBadSize)

	_, err = combo.Unrank([]int{1, 2, 3}, 2, 3)
	require.ErrorIs(t, err, combo.ErrIndexOutOfRange)

	_, err = combo.Unrank([]int{1, 2, 3}, 2, -1)
	require.ErrorIs(t, err, combo.ErrIndexOutOfRange)
}
