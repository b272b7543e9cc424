package stats

import "github.com/footystats/afl-dashboard/pkg/data"

// LineCount is how many games in a window went over or under the line.
// Games exactly on the line count as neither and are reported in Equal.
type LineCount struct {
	Window       Window  `json:"window"`
	Above        int     `json:"above"`
	Below        int     `json:"below"`
	Equal        int     `json:"equal"`
	Total        int     `json:"total"`
	PercentAbove float64 `json:"percentAbove"`
	PercentBelow float64 `json:"percentBelow"`
	PercentEqual float64 `json:"percentEqual"`
	// NoData is set when the window has no values for the stat. All
	// percentages are then 0.
	NoData bool `json:"noData"`
}

// ThresholdCounts compares stat against line over the most recent games: rows
// are walked from the end of the stored order and the first window.Size rows
// are counted. Total is the number of non-missing values in the window.
func ThresholdCounts(rows []data.Row, stat data.Stat, line float64, window Window) LineCount {
	count := LineCount{Window: window}
	size := window.Size(len(rows))
	for i := len(rows) - 1; i >= len(rows)-size; i-- {
		v, ok := rows[i].Stat(stat)
		if !ok {
			continue
		}
		count.Total++
		switch {
		case v > line:
			count.Above++
		case v < line:
			count.Below++
		default:
			count.Equal++
		}
	}
	if count.Total == 0 {
		count.NoData = true
		return count
	}
	total := float64(count.Total)
	count.PercentAbove = 100 * float64(count.Above) / total
	count.PercentBelow = 100 * float64(count.Below) / total
	count.PercentEqual = 100 * float64(count.Equal) / total
	return count
}
