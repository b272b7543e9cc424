package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/stats"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, d DashboardData) string {
	var buf bytes.Buffer
	require.NoError(t, Dashboard(d).Render(context.Background(), &buf))
	return buf.String()
}

func testRows() []data.Row {
	rows := []data.Row{
		{Player: "Marcus Bontempelli", Round: "1", HomeAway: data.Home, Venue: "Marvel Stadium", Result: data.Win},
		{Player: "Marcus Bontempelli", Round: "2", HomeAway: data.Away, Venue: "MCG", Result: data.Lose},
		{Player: "Marcus Bontempelli", Round: "3", HomeAway: data.Home, Venue: "Marvel Stadium", Result: data.Win},
	}
	for i, v := range []float64{20, 25, 30} {
		rows[i].Stats.Set(data.Disposals, v)
		rows[i].Stats.Set(data.Goals, float64(i))
		rows[i].Stats.Set(data.Fantasy, 90+v)
		rows[i].Cells = []string{rows[i].Player, rows[i].Round}
	}
	return rows
}

func TestDashboard(t *testing.T) {
	require := require.New(t)

	// given
	rows := testRows()
	sel := Selection{Players: []string{"Marcus Bontempelli"}, Stat: data.Disposals, Line: 22}
	d := DashboardData{
		Players:   []string{"Marcus Bontempelli", "Lachie Neale"},
		Selection: sel,
		Report:    stats.BuildReport(rows, stats.ReportSpec{Stat: sel.Stat, Line: sel.Line}),
		GameLog:   dataset.NewGameLog([]string{"Player", "Round"}, rows),
		ChartURL:  "/api/chart?player=Marcus+Bontempelli&stat=disposals&line=22",
		Version:   "v1.2.3",
	}

	// when
	html := render(t, d)

	// then
	require.True(strings.HasPrefix(html, "<!doctype html><html lang=\"en\">"))
	require.Contains(html, "<title>AFL Dashboard</title>")
	require.Contains(html, `<option value="Marcus Bontempelli" selected>Marcus Bontempelli</option>`)
	require.Contains(html, `<option value="Lachie Neale">Lachie Neale</option>`)
	require.Contains(html, `<option value="disposals" selected>disposals</option>`)
	require.Contains(html, `step="0.5" value="22"`)

	require.Contains(html, "<th>Average</th><th>Last 3 Avg</th><th>Last 5 Avg</th><th>Last 10 Avg</th>")
	require.Contains(html, "<tr><td>Disposals</td><td>25.0</td><td>25.0</td><td>25.0</td><td>25.0</td></tr>")
	require.Contains(html, "<tr><td>Loss</td><td>25.0</td><td>1.0</td><td>115.0</td></tr>")
	require.Contains(html, "<tr><td>Marvel Stadium</td><td>25.0</td><td>1.0</td><td>115.0</td></tr>")
	require.Contains(html, "<tr><td>Last 3 Games</td><td>2</td><td>66.7%</td><td>1</td><td>33.3%</td></tr>")
	require.Contains(html, `src="/api/chart?player=Marcus+Bontempelli&amp;stat=disposals&amp;line=22"`)
	require.Contains(html, "<h3>Season Game Log</h3>")
	require.Contains(html, "<tr><td>Marcus Bontempelli</td><td>3</td></tr>")
	require.Contains(html, "afl-dashboard v1.2.3")
}

func TestDashboardEmptySelection(t *testing.T) {
	require := require.New(t)

	html := render(t, DashboardData{
		Players:   []string{"Lachie Neale"},
		Selection: Selection{Stat: data.Goals},
		Report:    stats.BuildReport(nil, stats.ReportSpec{Stat: data.Goals}),
	})

	require.Contains(html, "<tr><td>Goals</td><td>n/a</td><td>n/a</td><td>n/a</td><td>n/a</td></tr>")
	require.Contains(html, "<tr><td>Home</td><td>0.0</td><td>0.0</td><td>0.0</td></tr>")
	require.Contains(html, `<tr class="no-data"><td>Overall</td><td>0</td><td>0.0%</td><td>0</td><td>0.0%</td></tr>`)
	require.Contains(html, "Select one or more players")
	require.NotContains(html, "<img")
	require.NotContains(html, "<footer>")
}

func TestDashboardEscapesText(t *testing.T) {
	require := require.New(t)

	html := render(t, DashboardData{
		Players: []string{`<script>alert("x")</script>`},
		Report:  stats.BuildReport(nil, stats.ReportSpec{}),
	})

	require.NotContains(html, "<script>")
	require.Contains(html, "&lt;script&gt;")
}

func TestSelectionForm(t *testing.T) {
	require := require.New(t)

	sel := Selection{Players: []string{"Lachie Neale", "Zak Butters"}, Stat: data.Goals, Line: 1.5}
	var buf bytes.Buffer
	require.NoError(SelectionForm([]string{"Lachie Neale", "Nick Daicos", "Zak Butters"}, sel).Render(context.Background(), &buf))
	html := buf.String()

	require.True(strings.HasPrefix(html, `<form method="get" class="selection"><label for="player">Player Name</label><select id="player" name="player" multiple size="8">`))
	require.Contains(html, `<option value="Lachie Neale" selected>Lachie Neale</option><option value="Nick Daicos">Nick Daicos</option><option value="Zak Butters" selected>Zak Butters</option>`)
	require.Contains(html, `<option value="goals" selected>goals</option>`)
	require.Contains(html, `<option value="disposals">disposals</option>`)
	require.Contains(html, `<input id="line" type="number" name="line" step="0.5" value="1.5">`)
	require.True(strings.HasSuffix(html, `<button type="submit">Update</button></form>`))
}

func TestLineTable(t *testing.T) {
	require := require.New(t)

	table := stats.LineTable{
		Stat: data.Disposals,
		Line: 20,
		Rows: []stats.LineCount{
			{Window: stats.Overall, Above: 3, Below: 1, PercentAbove: 75, PercentBelow: 25},
			{Window: stats.Window(10), NoData: true},
		},
	}
	var buf bytes.Buffer
	require.NoError(LineTable(table).Render(context.Background(), &buf))

	require.Equal(`<table class="line"><thead><tr><th>Game Span</th><th>Over</th><th>Over %</th><th>Under</th><th>Under %</th></tr></thead><tbody>`+
		`<tr><td>Overall</td><td>3</td><td>75.0%</td><td>1</td><td>25.0%</td></tr>`+
		`<tr class="no-data"><td>Last 10 Games</td><td>0</td><td>0.0%</td><td>0</td><td>0.0%</td></tr>`+
		`</tbody></table>`, buf.String())
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Dashboard(DashboardData{}).Render(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}
