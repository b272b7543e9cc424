package stats

import (
	"math"
	"testing"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/stretchr/testify/require"
)

func TestThresholdCounts(t *testing.T) {
	require := require.New(t)

	// given
	rows := disposalRows(20, 25, 30)

	// when
	count := ThresholdCounts(rows, data.Disposals, 22, 3)

	// then
	require.Equal(2, count.Above)
	require.Equal(1, count.Below)
	require.Equal(3, count.Total)
	require.InDelta(66.7, count.PercentAbove, 0.05)
	require.InDelta(33.3, count.PercentBelow, 0.05)
	require.False(count.NoData)
}

func TestThresholdCountsUsesMostRecentGames(t *testing.T) {
	require := require.New(t)

	rows := disposalRows(40, 40, 40, 10, 10, 10)

	last3 := ThresholdCounts(rows, data.Disposals, 25, 3)
	require.Equal(0, last3.Above)
	require.Equal(3, last3.Below)

	last5 := ThresholdCounts(rows, data.Disposals, 25, 5)
	require.Equal(2, last5.Above)
	require.Equal(3, last5.Below)

	overall := ThresholdCounts(rows, data.Disposals, 25, Overall)
	require.Equal(3, overall.Above)
	require.Equal(6, overall.Total)
	require.Equal(Overall, overall.Window)
}

func TestThresholdCountsEqualAndMissing(t *testing.T) {
	require := require.New(t)

	rows := rowsOf(
		game{disposals: num(22)},
		game{},
		game{disposals: num(30)},
		game{disposals: num(22)},
	)

	count := ThresholdCounts(rows, data.Disposals, 22, Overall)
	require.Equal(1, count.Above)
	require.Equal(0, count.Below)
	require.Equal(2, count.Equal)
	require.Equal(3, count.Total, "missing values are not counted")
	require.Equal(count.Total, count.Above+count.Below+count.Equal)
	require.InDelta(100, count.PercentAbove+count.PercentBelow+count.PercentEqual, 1e-9)

	// the window is counted in games, missing values included
	last2 := ThresholdCounts(rows, data.Disposals, 22, 2)
	require.Equal(2, last2.Total)
}

func TestThresholdCountsNoData(t *testing.T) {
	require := require.New(t)

	for _, rows := range [][]data.Row{nil, rowsOf(game{}, game{})} {
		count := ThresholdCounts(rows, data.Disposals, 20, 3)
		require.True(count.NoData)
		require.Equal(0, count.Total)
		require.Equal(0.0, count.PercentAbove)
		require.Equal(0.0, count.PercentBelow)
		require.False(math.IsNaN(count.PercentEqual))
	}
}

func TestThresholdCountsInvariants(t *testing.T) {
	require := require.New(t)

	rows := disposalRows(12, 18, 18, 25, 31, 9, 18, 27, 22, 14, 18, 35)
	for _, line := range []float64{-5, 0, 9, 17.5, 18, 22, 35, 100} {
		for _, w := range []Window{Overall, 1, 3, 5, 10, 50} {
			count := ThresholdCounts(rows, data.Disposals, line, w)
			require.Equal(count.Total, count.Above+count.Below+count.Equal)
			require.InDelta(100, count.PercentAbove+count.PercentBelow+count.PercentEqual, 1e-9)
		}
	}
}
