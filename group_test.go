package hofn_test

import (
	"math"
	"testing"

	"github.com/KasperOmsK/hofn"

	"github.com/stretchr/testify/require"
)

func sum(xs []int) int {
	return hofn.Fold(xs, 0, func(acc, x int) int { return acc + x })
}

func TestPartitionByKey_FirstOccurrenceOrder(t *testing.T) {
	groups, err := hofn.PartitionByKey([]string{"A", "B", "C", "D", "E"}, []int{2, 1, 2, 3, 1})

	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, groups.Keys())
	require.Equal(t, [][]string{{"A", "C"}, {"B", "E"}, {"D"}}, groups.Values())
}

func TestPartitionByKey_LengthMismatch(t *testing.T) {
	_, err := hofn.PartitionByKey([]int{1, 2, 3}, []string{"a"})

	require.ErrorIs(t, err, hofn.ErrLengthMismatch)
}

func TestPartitionByKey_Empty(t *testing.T) {
	groups, err := hofn.PartitionByKey([]int{}, []string{})

	require.NoError(t, err)
	require.Zero(t, groups.Len())
}

func TestGroupApply_SumPerGroup(t *testing.T) {
	sums, err := hofn.GroupApply([]int{1, 2, 3, 4, 5}, []int{1, 2, 1, 2, 1}, sum)

	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, sums.Keys())
	require.Equal(t, []int{9, 6}, sums.Values())

	v, ok := sums.Lookup(1)
	require.True(t, ok)
	require.Equal(t, 9, v)
}

func TestGroupApply_SortedOnRequest(t *testing.T) {
	sums, err := hofn.GroupApply([]int{1, 2, 3}, []string{"b", "a", "b"}, sum)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, sums.Keys())

	sorted := hofn.SortNamed(sums)
	require.Equal(t, []string{"a", "b"}, sorted.Keys())
	require.Equal(t, []int{2, 4}, sorted.Values())
}

func TestGroupApply_LengthMismatchDoesNotCallFn(t *testing.T) {
	calls := 0
	_, err := hofn.GroupApply([]int{1, 2}, []int{1}, func(g []int) int {
		calls++
		return 0
	})

	require.ErrorIs(t, err, hofn.ErrLengthMismatch)
	require.Zero(t, calls)
}

func TestPartitionByKey_NaNKeysKeepEveryElement(t *testing.T) {
	nan := math.NaN()
	groups, err := hofn.PartitionByKey([]int{1, 2, 3}, []float64{nan, 1, nan})
	require.NoError(t, err)

	// NaN never matches itself, so each NaN key gets its own group
	require.Equal(t, 3, groups.Len())
	require.Equal(t, [][]int{{1}, {2}, {3}}, groups.Values())

	kept := hofn.Fold(groups.Values(), 0, func(acc int, g []int) int { return acc + len(g) })
	require.Equal(t, 3, kept)
}

func TestGroupApply_NaNKeysNeverSeeEmptyGroups(t *testing.T) {
	nan := math.NaN()
	sums, err := hofn.GroupApply([]int{4, 5, 6}, []float64{nan, nan, 2}, func(g []int) int {
		require.NotEmpty(t, g)
		return sum(g)
	})

	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, sums.Values())
}
