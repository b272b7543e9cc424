package views

import (
	"slices"
	"strconv"

	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/stats"
)

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// Selection is the user input of the dashboard form.
type Selection struct {
	Players []string
	Stat    data.Stat
	Line    float64
}

func (s Selection) hasPlayer(name string) bool {
	return slices.Contains(s.Players, name)
}

type DashboardData struct {
	Players   []string
	Selection Selection
	Report    stats.Report
	GameLog   dataset.GameLog
	// ChartURL is the image source for the line chart. Empty hides the chart.
	ChartURL string
	Version  string
}

func averageHeader(w stats.Window) string {
	if w == stats.Overall {
		return "Average"
	}
	return "Last " + strconv.Itoa(int(w)) + " Avg"
}

func chartTitle(stat data.Stat) string {
	return stat.Title() + " by Round"
}

func lineValue(line float64) string {
	return strconv.FormatFloat(line, 'f', -1, 64)
}

// oneDecimal formats like the tables of the season workbook: 1 decimal place.
func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func percent(v float64) string {
	return oneDecimal(v) + "%"
}
