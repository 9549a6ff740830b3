package cover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lotwheel/cover"
)

func TestVerify_HandBuilt(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5}

	// Pairs of a 5-pool: 10. {1,2,3} holds 3, {3,4,5} holds 3 → 6 distinct.
	cov, err := cover.Verify([][]int{{1, 2, 3}, {3, 4, 5}}, pool, 2)
	require.NoError(t, err)
	require.Equal(t, cover.Coverage{CoveredCount: 6, TotalTargets: 10, CoverageFraction: 0.6}, cov)
	require.False(t, cov.Full())

	cov, err = cover.Verify([][]int{{5, 4, 3, 2, 1}}, pool, 4)
	require.NoError(t, err)
	require.True(t, cov.Full())

	cov, err = cover.Verify(nil, pool, 1)
	require.NoError(t, err)
	require.Equal(t, 5, cov.TotalTargets)
	require.Zero(t, cov.CoveredCount)
}

// TestVerify_UnsortedPoolAndBets checks that order never matters.
func TestVerify_UnsortedPoolAndBets(t *testing.T) {
	cov, err := cover.Verify([][]int{{9, 1, 5}}, []int{5, 9, 1}, 3)
	require.NoError(t, err)
	require.True(t, cov.Full())
}

func TestVerify_Errors(t *testing.T) {
	_, err := cover.Verify([][]int{{1, 7}}, []int{1, 2, 3}, 2)
	require.ErrorIs(t, err, cover.ErrBetOutsidePool)

	_, err = cover.Verify(nil, []int{1, 2, 3}, 0)
	require.ErrorIs(t, err, cover.ErrInvalidGuarantee)

	_, err = cover.Verify(nil, []int{1, 2, 3}, 4)
	require.ErrorIs(t, err, cover.ErrInsufficientPool)

	_, err = cover.Verify(nil, []int{1, 1, 3}, 2)
	require.ErrorIs(t, err, cover.ErrInvalidPool)

	_, err = cover.Verify(nil, indexPool(65, 1), 1)
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)
}

func TestUncovered(t *testing.T) {
	pool := []int{1, 2, 3, 4}
	missing, err := cover.Uncovered([][]int{{1, 2, 3}}, pool, 2, 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {2, 4}, {3, 4}}, missing)

	limited, err := cover.Uncovered([][]int{{1, 2, 3}}, pool, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {2, 4}}, limited)

	none, err := cover.Uncovered([][]int{{1, 2, 3, 4}}, pool, 3, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

// TestVerify_AuditCeiling: C(40,20) targets are refused before enumeration.
func TestVerify_AuditCeiling(t *testing.T) {
	pool := indexPool(40, 1)
	_, err := cover.Verify(nil, pool, 20)
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)

	_, err = cover.Verify([][]int{pool[:20]}, pool, 20)
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)

	_, err = cover.Uncovered(nil, pool, 20, 1)
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)

	// C(10,3)=120 targets against 2 bets is 240 tests.
	bets := [][]int{{1, 2, 3, 4, 5, 6}, {5, 6, 7, 8, 9, 10}}
	_, err = cover.Verify(bets, indexPool(10, 1), 3, cover.WithMaxAuditWork(239))
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)
	cov, err := cover.Verify(bets, indexPool(10, 1), 3, cover.WithMaxAuditWork(240))
	require.NoError(t, err)
	require.Equal(t, 120, cov.TotalTargets)

	_, err = cover.Verify(bets, indexPool(10, 1), 3, cover.WithMaxAuditWork(0))
	require.ErrorIs(t, err, cover.ErrOptionViolation)
	_, err = cover.Uncovered(bets, indexPool(10, 1), 3, 0, cover.WithMaxAuditWork(-1))
	require.ErrorIs(t, err, cover.ErrOptionViolation)
}

// TestVerify_LargeLotteryAccepted: a 49-number pool at G=6 stays under the
// default audit ceiling for a realistic bet count.
func TestVerify_LargeLotteryAccepted(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates C(49,6)")
	}
	pool := indexPool(49, 1)
	cov, err := cover.Verify([][]int{{1, 2, 3, 4, 5, 6}}, pool, 6)
	require.NoError(t, err)
	require.Equal(t, 13983816, cov.TotalTargets)
	require.Equal(t, 1, cov.CoveredCount)
}
