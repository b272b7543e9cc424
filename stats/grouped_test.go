package stats

import (
	"math"
	"testing"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/stretchr/testify/require"
)

func TestGroupedMeanHomeAway(t *testing.T) {
	require := require.New(t)

	rows := rowsOf(
		game{homeAway: data.Home, goals: num(2)},
		game{homeAway: data.Home, goals: num(4)},
		game{homeAway: data.Away, goals: num(1)},
	)

	groups := GroupedMean(rows, data.Goals, data.HomeAway)

	require.Equal([]string{data.Home, data.Away}, groups.Keys)
	require.Equal(map[string]Average{
		data.Home: {3, 2},
		data.Away: {1, 1},
	}, groups.Means)
	require.Equal(3.0, groups.Lookup(data.Home))
	require.Equal(1.0, groups.Lookup(data.Away))
}

func TestGroupedMeanUnknownCategoryDefaultsToZero(t *testing.T) {
	require := require.New(t)

	rows := rowsOf(
		game{result: data.Win, disposals: num(25)},
		game{result: data.Draw},
		game{result: "", disposals: num(40)},
	)
	groups := GroupedMean(rows, data.Disposals, data.Result)

	require.Equal([]string{data.Win, data.Draw}, groups.Keys)
	require.Equal(0.0, groups.Lookup(data.Lose))
	_, ok := groups.Get(data.Lose)
	require.False(ok)

	draw, ok := groups.Get(data.Draw)
	require.True(ok, "observed categories are present even without values")
	require.False(draw.Valid())
	require.Equal(0.0, groups.Lookup(data.Draw))

	empty := GroupedMean(nil, data.Disposals, data.Venue)
	require.Empty(empty.Keys)
	require.Equal(0.0, empty.Lookup("MCG"))
}

func TestGroupedMeanPartitionsOverallMean(t *testing.T) {
	require := require.New(t)

	rows := rowsOf(
		game{venue: "MCG", disposals: num(20)},
		game{venue: "Marvel Stadium", disposals: num(31)},
		game{venue: "MCG", disposals: num(17)},
		game{venue: "Gabba"},
		game{venue: "Adelaide Oval", disposals: num(26)},
		game{venue: "MCG", disposals: num(29)},
		game{venue: "Marvel Stadium", disposals: num(22)},
	)

	groups := GroupedMean(rows, data.Disposals, data.Venue)

	var weighted float64
	var samples int
	for _, key := range groups.Keys {
		avg := groups.Means[key]
		weighted += avg.Value * float64(avg.Samples)
		samples += avg.Samples
	}
	overall := RollingMean(rows, data.Disposals, Overall)
	require.Equal(overall.Samples, samples)
	require.True(math.Abs(overall.Value-weighted/float64(samples)) < 1e-9)
	require.Equal([]string{"MCG", "Marvel Stadium", "Gabba", "Adelaide Oval"}, groups.Keys)
}
