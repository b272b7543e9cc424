package data

// Categorical values as they appear in the source sheet.
const (
	Home = "Home"
	Away = "Away"

	Win  = "Win"
	Lose = "Lose"
	Draw = "Draw"
)

// Category is a categorical column that rows can be grouped by.
type Category string

const (
	HomeAway Category = "home_away"
	Venue    Category = "Venue"
	Result   Category = "win_lose_draw"
)

// Row is a single player-game record. Rows are values and are never modified
// after the dataset is loaded; Cells is shared with the dataset and must be
// treated as read-only.
type Row struct {
	Player   string
	Round    string
	HomeAway string
	Venue    string
	Result   string
	Stats    StatValues

	// Cells holds the raw value of every loaded column, in header order, with
	// the round cell already normalized.
	Cells []string
}

func (r Row) Stat(s Stat) (float64, bool) {
	return r.Stats.Get(s)
}

func (r Row) Category(c Category) string {
	switch c {
	case HomeAway:
		return r.HomeAway
	case Venue:
		return r.Venue
	case Result:
		return r.Result
	}
	return ""
}
