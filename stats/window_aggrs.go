package stats

import "github.com/footystats/afl-dashboard/pkg/data"

// WindowAverage is the mean of a stat over one window.
type WindowAverage struct {
	Window  Window  `json:"window"`
	Average Average `json:"average"`
}

// RollingMean is the mean of stat over the last window.Size(len(rows)) rows in
// stored order. Missing values inside the window are skipped.
func RollingMean(rows []data.Row, stat data.Stat, window Window) Average {
	tail := rows[len(rows)-window.Size(len(rows)):]
	return mean(statValues(tail, stat))
}

// Averages computes RollingMean for each of the windows.
func Averages(rows []data.Row, stat data.Stat, windows []Window) []WindowAverage {
	avgs := make([]WindowAverage, len(windows))
	for i, w := range windows {
		avgs[i] = WindowAverage{w, RollingMean(rows, stat, w)}
	}
	return avgs
}
