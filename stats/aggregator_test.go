package stats

import (
	"encoding/json"
	"testing"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/stretchr/testify/require"
)

func TestRollingMean(t *testing.T) {
	require := require.New(t)

	rows := disposalRows(10, 20, 30, 40, 50, 60)

	require.Equal(Average{35, 6}, RollingMean(rows, data.Disposals, Overall))
	require.Equal(Average{50, 3}, RollingMean(rows, data.Disposals, 3))
	require.Equal(Average{40, 5}, RollingMean(rows, data.Disposals, 5))
	require.Equal(RollingMean(rows, data.Disposals, Overall), RollingMean(rows, data.Disposals, 10))
	require.Equal(RollingMean(rows, data.Disposals, Overall), RollingMean(rows, data.Disposals, 6))
}

func TestRollingMeanSkipsMissingValues(t *testing.T) {
	require := require.New(t)

	rows := rowsOf(
		game{disposals: num(10)},
		game{disposals: num(20)},
		game{},
		game{disposals: num(30)},
	)

	require.Equal(Average{30, 1}, RollingMean(rows, data.Disposals, 2))
	require.Equal(Average{25, 2}, RollingMean(rows, data.Disposals, 3))
	require.Equal(Average{20, 3}, RollingMean(rows, data.Disposals, Overall))
}

func TestRollingMeanNoData(t *testing.T) {
	require := require.New(t)

	avg := RollingMean(nil, data.Goals, 3)
	require.False(avg.Valid())
	require.Equal(0.0, avg.OrZero())
	require.Equal(NoDataPlaceholder, avg.String())

	avg = RollingMean(disposalRows(1, 2), data.Goals, Overall)
	require.False(avg.Valid())
}

func TestAverages(t *testing.T) {
	require := require.New(t)

	avgs := Averages(disposalRows(1, 2, 3, 4), data.Disposals, DefaultWindows)
	require.Equal([]WindowAverage{
		{Overall, Average{2.5, 4}},
		{3, Average{3, 3}},
		{5, Average{2.5, 4}},
		{10, Average{2.5, 4}},
	}, avgs)
}

func TestAverageJSON(t *testing.T) {
	require := require.New(t)

	raw, err := json.Marshal([]Average{{12.5, 4}, {}})
	require.NoError(err)
	require.JSONEq(`[{"value":12.5,"samples":4},{"value":null,"samples":0}]`, string(raw))

	var decoded []Average
	require.NoError(json.Unmarshal(raw, &decoded))
	require.Equal([]Average{{12.5, 4}, {}}, decoded)
}

func TestAverageString(t *testing.T) {
	require := require.New(t)

	require.Equal("23.3", Average{70.0 / 3, 3}.String())
	require.Equal("0.0", Average{0, 2}.String())
}

func TestAggregator(t *testing.T) {
	require := require.New(t)

	var aggr Aggregator
	require.Equal(Average{}, aggr.Average())
	aggr.Add(1).Add(2).Add(6)
	require.Equal(Average{3, 3}, aggr.Average())
}
