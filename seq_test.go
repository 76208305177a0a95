package hofn_test

import (
	"slices"
	"testing"

	"github.com/KasperOmsK/hofn"

	"github.com/stretchr/testify/require"
)

func TestMapSeq_IsLazy(t *testing.T) {
	calls := 0
	seq := hofn.MapSeq(slices.Values([]int{1, 2, 3}), func(v int) int {
		calls++
		return v * 2
	})
	require.Zero(t, calls)

	require.Equal(t, []int{2, 4, 6}, slices.Collect(seq))
	require.Equal(t, 3, calls)
}

func TestMapSeq_StopsWhenConsumerStops(t *testing.T) {
	calls := 0
	seq := hofn.MapSeq(slices.Values([]int{1, 2, 3, 4}), func(v int) int {
		calls++
		return v
	})

	for v := range seq {
		if v == 2 {
			break
		}
	}
	require.Equal(t, 2, calls)
}

func TestFilterSeq(t *testing.T) {
	seq := hofn.FilterSeq(slices.Values([]int{1, 2, 3, 4, 5, 6}), func(v int) bool {
		return v%2 == 0
	})

	require.Equal(t, []int{2, 4, 6}, slices.Collect(seq))
}

func TestScanSeq_MatchesScanFrom(t *testing.T) {
	src := []int{1, 2, 3, 4}

	seq := hofn.ScanSeq(slices.Values(src), 0, add)

	require.Equal(t, hofn.ScanFrom(src, 0, add), slices.Collect(seq))
}

func TestScanSeq_Composes(t *testing.T) {
	evens := hofn.FilterSeq(slices.Values([]int{1, 2, 3, 4}), func(v int) bool { return v%2 == 0 })
	running := hofn.ScanSeq(evens, 0, add)
	labels := hofn.MapSeq(running, func(v int) string { return string(rune('a' + v)) })

	require.Equal(t, []string{"a", "c", "g"}, slices.Collect(labels))
}
