package dataset

import (
	"time"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/google/uuid"
)

// Accessor is the read-only view of the loaded player stats that the API
// handlers compute from.
type Accessor interface {
	ID() uuid.UUID
	Header() []string
	Players() []string
	Select(players []string) []data.Row
	Len() int
}

// Dataset is an immutable, in-memory snapshot of the source table. It is
// created once at startup and shared by all requests.
type Dataset struct {
	id       uuid.UUID
	loadedAt time.Time
	header   []string
	rows     []data.Row
	players  []string
}

var _ Accessor = (*Dataset)(nil)

func New(header []string, rows []data.Row) *Dataset {
	seen := map[string]bool{}
	var players []string
	for _, row := range rows {
		if row.Player == "" || seen[row.Player] {
			continue
		}
		seen[row.Player] = true
		players = append(players, row.Player)
	}
	return &Dataset{
		id:       uuid.New(),
		loadedAt: time.Now(),
		header:   append([]string(nil), header...),
		rows:     rows,
		players:  players,
	}
}

func (d *Dataset) ID() uuid.UUID {
	return d.id
}

func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

func (d *Dataset) Header() []string {
	return append([]string(nil), d.header...)
}

// Players lists the distinct player names in order of first appearance.
func (d *Dataset) Players() []string {
	return append([]string(nil), d.players...)
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

// Select returns the rows of the given players in source order. Rows of
// different players are not interleaved or re-sorted. An empty selection
// yields no rows.
func (d *Dataset) Select(players []string) []data.Row {
	if len(players) == 0 {
		return []data.Row{}
	}
	wanted := make(map[string]bool, len(players))
	for _, p := range players {
		wanted[p] = true
	}
	selected := []data.Row{}
	for _, row := range d.rows {
		if wanted[row.Player] {
			selected = append(selected, row)
		}
	}
	return selected
}

// GameLog is the tabular view of a selection with every loaded column.
type GameLog struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func NewGameLog(header []string, rows []data.Row) GameLog {
	log := GameLog{
		Columns: append([]string(nil), header...),
		Rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		log.Rows[i] = append([]string(nil), row.Cells...)
	}
	return log
}
