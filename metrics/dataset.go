package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	datasetRows = Factory.NewGauge(prometheus.GaugeOpts{
		Name: FQName("dataset_rows"),
		Help: "Number of player-game rows in the loaded dataset",
	})
	datasetPlayers = Factory.NewGauge(prometheus.GaugeOpts{
		Name: FQName("dataset_players"),
		Help: "Number of distinct players in the loaded dataset",
	})
	reportBuildDuration = Factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    FQName("report_build_duration_sec"),
			Help:    "Time to compute the dashboard tables for a selection, in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		},
		[]string{"stat"},
	)
	reportSelectedRows = Factory.NewHistogram(prometheus.HistogramOpts{
		Name:    FQName("report_selected_rows"),
		Help:    "Number of rows in the selection a report is computed from",
		Buckets: prometheus.ExponentialBuckets(1, 4, 7),
	})
)

func ObserveDataset(rows, players int) {
	datasetRows.Set(float64(rows))
	datasetPlayers.Set(float64(players))
}

func ObserveReport(stat string, rows int, duration time.Duration) {
	reportBuildDuration.WithLabelValues(stat).Observe(duration.Seconds())
	reportSelectedRows.Observe(float64(rows))
}
