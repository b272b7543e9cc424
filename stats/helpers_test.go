package stats

import "github.com/footystats/afl-dashboard/pkg/data"

type game struct {
	round     string
	homeAway  string
	venue     string
	result    string
	disposals *float64
	goals     *float64
	fantasy   *float64
}

func num(v float64) *float64 {
	return &v
}

func rowsOf(games ...game) []data.Row {
	rows := make([]data.Row, len(games))
	for i, g := range games {
		row := data.Row{
			Player:   "Test Player",
			Round:    g.round,
			HomeAway: g.homeAway,
			Venue:    g.venue,
			Result:   g.result,
		}
		if g.disposals != nil {
			row.Stats.Set(data.Disposals, *g.disposals)
		}
		if g.goals != nil {
			row.Stats.Set(data.Goals, *g.goals)
		}
		if g.fantasy != nil {
			row.Stats.Set(data.Fantasy, *g.fantasy)
		}
		rows[i] = row
	}
	return rows
}

func disposalRows(values ...float64) []data.Row {
	games := make([]game, len(values))
	for i, v := range values {
		games[i] = game{disposals: num(v)}
	}
	return rowsOf(games...)
}
