package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/golang/glog"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyTable    = errors.New("table has no header row")
)

const (
	playerColumn = "player"
	roundColumn  = "round"
)

var categoryColumns = []data.Category{data.HomeAway, data.Venue, data.Result}

// frame cuts the header-skip offset, column range and row limit out of the raw
// records of a sheet or CSV file. The first remaining record is the header.
func frame(records [][]string, opts Options) (header []string, body [][]string, err error) {
	cols, err := parseColumnRange(opts.Columns)
	if err != nil {
		return nil, nil, err
	}
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(records) {
			return nil, nil, ErrEmptyTable
		}
		records = records[opts.SkipRows:]
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyTable
	}

	header = cols.clip(records[0])
	for _, record := range records[1:] {
		if opts.MaxRows > 0 && len(body) >= opts.MaxRows {
			break
		}
		body = append(body, cols.clip(record))
	}
	return header, body, nil
}

type columnIndex struct {
	player, round int
	categories    map[data.Category]int
	stats         map[data.Stat]int
}

func indexColumns(header []string) (columnIndex, error) {
	byName := map[string]int{}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := byName[key]; !dup {
			byName[key] = i
		}
	}
	var missing []string
	lookup := func(name string) int {
		idx, ok := byName[strings.ToLower(name)]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return idx
	}

	idx := columnIndex{
		player:     lookup("Player"),
		round:      lookup("Round"),
		categories: map[data.Category]int{},
		stats:      map[data.Stat]int{},
	}
	for _, cat := range categoryColumns {
		idx.categories[cat] = lookup(string(cat))
	}
	for _, stat := range data.AllStats {
		idx.stats[stat] = lookup(stat.Column())
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// FromTable builds a Dataset from a header and string records, as read from
// any of the supported sources.
func FromTable(header []string, records [][]string) (*Dataset, error) {
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	rows := make([]data.Row, 0, len(records))
	for n, record := range records {
		if isBlank(record) {
			continue
		}
		cells := make([]string, len(header))
		copy(cells, record)

		row := data.Row{
			Player:   strings.TrimSpace(cells[idx.player]),
			Round:    data.NormalizeRound(cells[idx.round]),
			HomeAway: strings.TrimSpace(cells[idx.categories[data.HomeAway]]),
			Venue:    strings.TrimSpace(cells[idx.categories[data.Venue]]),
			Result:   strings.TrimSpace(cells[idx.categories[data.Result]]),
			Cells:    cells,
		}
		cells[idx.round] = row.Round

		for stat, col := range idx.stats {
			value, ok := parseStatCell(cells[col])
			if !ok {
				if strings.TrimSpace(cells[col]) != "" && glog.V(4) {
					glog.Infof("Treating unparseable stat as missing. row=%d, column=%q, value=%q", n+1, stat.Column(), cells[col])
				}
				continue
			}
			row.Stats.Set(stat, value)
		}
		rows = append(rows, row)
	}
	return New(header, rows), nil
}

func parseStatCell(cell string) (float64, bool) {
	str := strings.TrimSpace(cell)
	if str == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
