package stats

import "github.com/footystats/afl-dashboard/pkg/data"

var (
	// stats shown in the summary table, in display order
	summaryStats = []data.Stat{data.Disposals, data.Fantasy, data.Goals}
	// columns of the split and venue tables
	splitStats = []data.Stat{data.Disposals, data.Goals, data.Fantasy}
)

// ReportSpec is the user input driving the line comparison and the chart.
type ReportSpec struct {
	Stat data.Stat
	Line float64
}

type SummaryRow struct {
	Stat     data.Stat       `json:"stat"`
	Averages []WindowAverage `json:"averages"`
}

// SplitRow holds average disposals, goals and fantasy for one category value.
// Categories without games show zeros.
type SplitRow struct {
	Label     string  `json:"label"`
	Disposals float64 `json:"disposals"`
	Goals     float64 `json:"goals"`
	Fantasy   float64 `json:"fantasy"`
}

type VenueRow struct {
	Venue     string  `json:"venue"`
	Disposals float64 `json:"disposals"`
	Goals     float64 `json:"goals"`
	Fantasy   float64 `json:"fantasy"`
}

type LineTable struct {
	Stat data.Stat   `json:"stat"`
	Line float64     `json:"line"`
	Rows []LineCount `json:"rows"`
}

// ChartPoint is one bar of the by-round chart. Value is nil when the game has
// no value for the stat.
type ChartPoint struct {
	Player string   `json:"player"`
	Round  string   `json:"round"`
	Value  *float64 `json:"value"`
}

type Report struct {
	Games   int          `json:"games"`
	Summary []SummaryRow `json:"summary"`
	Splits  []SplitRow   `json:"splits"`
	Venues  []VenueRow   `json:"venues"`
	Line    LineTable    `json:"line"`
	// Chart is ordered most recent game first.
	Chart []ChartPoint `json:"chart"`
}

type splitDef struct {
	label    string
	category data.Category
	value    string
}

var splitDefs = []splitDef{
	{"Home", data.HomeAway, data.Home},
	{"Away", data.HomeAway, data.Away},
	{"Win", data.Result, data.Win},
	{"Loss", data.Result, data.Lose},
}

// BuildReport computes every dashboard table for the selected rows. It never
// fails: an empty selection yields placeholder averages and zero counts.
func BuildReport(rows []data.Row, spec ReportSpec) Report {
	report := Report{
		Games:   len(rows),
		Summary: make([]SummaryRow, len(summaryStats)),
		Splits:  make([]SplitRow, len(splitDefs)),
		Venues:  []VenueRow{},
		Line: LineTable{
			Stat: spec.Stat,
			Line: spec.Line,
			Rows: make([]LineCount, len(DefaultWindows)),
		},
		Chart: make([]ChartPoint, len(rows)),
	}

	for i, stat := range summaryStats {
		report.Summary[i] = SummaryRow{stat, Averages(rows, stat, DefaultWindows)}
	}

	grouped := map[data.Category]map[data.Stat]Groups{}
	for _, cat := range []data.Category{data.HomeAway, data.Result, data.Venue} {
		grouped[cat] = map[data.Stat]Groups{}
		for _, stat := range splitStats {
			grouped[cat][stat] = GroupedMean(rows, stat, cat)
		}
	}
	for i, def := range splitDefs {
		byStat := grouped[def.category]
		report.Splits[i] = SplitRow{
			Label:     def.label,
			Disposals: byStat[data.Disposals].Lookup(def.value),
			Goals:     byStat[data.Goals].Lookup(def.value),
			Fantasy:   byStat[data.Fantasy].Lookup(def.value),
		}
	}
	venues := grouped[data.Venue]
	for _, venue := range venues[data.Disposals].Keys {
		report.Venues = append(report.Venues, VenueRow{
			Venue:     venue,
			Disposals: venues[data.Disposals].Lookup(venue),
			Goals:     venues[data.Goals].Lookup(venue),
			Fantasy:   venues[data.Fantasy].Lookup(venue),
		})
	}

	for i, w := range DefaultWindows {
		report.Line.Rows[i] = ThresholdCounts(rows, spec.Stat, spec.Line, w)
	}

	for i := range rows {
		row := rows[len(rows)-1-i]
		point := ChartPoint{Player: row.Player, Round: row.Round}
		if v, ok := row.Stat(spec.Stat); ok {
			point.Value = &v
		}
		report.Chart[i] = point
	}
	return report
}
