package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Options describes where the player stats come from and which part of the
// source table to read. The defaults mirror the layout of the season workbook.
type Options struct {
	Path     string
	Sheet    string
	SkipRows int
	Columns  string
	MaxRows  int

	SQL SQLOptions
}

type SQLOptions struct {
	Driver  string
	DSN     string
	Table   string
	OrderBy string
}

func DefaultOptions() Options {
	return Options{
		Path:     "player_stats.xlsx",
		Sheet:    "player_data",
		SkipRows: 2,
		Columns:  "A:N",
		MaxRows:  9200,
		SQL: SQLOptions{
			Driver: "sqlite",
			Table:  "player_stats",
		},
	}
}

// columnRange is a 0-based, inclusive range of spreadsheet columns.
type columnRange struct {
	first, last int
}

func parseColumnRange(spec string) (columnRange, error) {
	if spec == "" {
		return columnRange{0, -1}, nil
	}
	from, to, found := strings.Cut(strings.ToUpper(strings.TrimSpace(spec)), ":")
	if !found {
		to = from
	}
	first, err := excelize.ColumnNameToNumber(from)
	if err != nil {
		return columnRange{}, fmt.Errorf("bad column range %q: %w", spec, err)
	}
	last, err := excelize.ColumnNameToNumber(to)
	if err != nil {
		return columnRange{}, fmt.Errorf("bad column range %q: %w", spec, err)
	}
	if last < first {
		return columnRange{}, fmt.Errorf("bad column range %q: end column before start", spec)
	}
	return columnRange{first - 1, last - 1}, nil
}

// clip returns the cells of the range, padding short records with blanks. An
// unbounded range (last < 0) keeps the record as is.
func (c columnRange) clip(record []string) []string {
	if c.last < 0 {
		return record
	}
	out := make([]string, c.last-c.first+1)
	for i := range out {
		if idx := c.first + i; idx < len(record) {
			out[i] = record[idx]
		}
	}
	return out
}
