package cover_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lotwheel/cover"
)

func TestLowerBound_Values(t *testing.T) {
	cases := []struct {
		n, k, g, want int
	}{
		{7, 6, 3, 2},   // ⌈35/20⌉
		{8, 6, 4, 5},   // ⌈70/15⌉
		{10, 6, 3, 6},  // ⌈120/20⌉
		{11, 10, 4, 2}, // ⌈330/210⌉
		{49, 6, 6, 13983816},
		{6, 6, 3, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, cover.LowerBound(tc.n, tc.k, tc.g), "n=%d k=%d g=%d", tc.n, tc.k, tc.g)
	}
}

// TestLowerBound_BeyondInt64 covers counts whose C(N,G) overflows an int.
func TestLowerBound_BeyondInt64(t *testing.T) {
	require.Equal(t, 1, cover.LowerBound(70, 70, 35))
	require.Equal(t, 2161, cover.LowerBound(70, 60, 35))
	require.Equal(t, math.MaxInt, cover.LowerBound(1000, 10, 10))
}

func TestLowerBound_Invalid(t *testing.T) {
	require.Zero(t, cover.LowerBound(10, 6, 0))
	require.Zero(t, cover.LowerBound(10, 6, 7))
	require.Zero(t, cover.LowerBound(4, 6, 5))
}

// TestLowerBound_NonDecreasingInG checks monotonicity for every N ≤ 20, K ≤ N.
func TestLowerBound_NonDecreasingInG(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for k := 1; k <= n; k++ {
			prev := 0
			for g := 1; g <= k; g++ {
				lb := cover.LowerBound(n, k, g)
				require.GreaterOrEqual(t, lb, prev, "n=%d k=%d g=%d", n, k, g)
				prev = lb
			}
		}
	}
}

func TestEfficiency(t *testing.T) {
	require.InDelta(t, 0.5, cover.Efficiency(2, 4), 1e-12)
	require.Zero(t, cover.Efficiency(2, 0))
	require.True(t, cover.IsOptimal(0.8, cover.DefaultOptimalThreshold))
	require.False(t, cover.IsOptimal(0.79, cover.DefaultOptimalThreshold))
}
