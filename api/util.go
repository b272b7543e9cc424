package api

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/plot"
	"github.com/footystats/afl-dashboard/stats"
)

const (
	playerParam = "player"
	statParam   = "stat"
	lineParam   = "line"
	formatParam = "format"
)

// selection is the parsed query of the report, chart and dashboard routes.
type selection struct {
	players []string
	spec    stats.ReportSpec
}

func parseSelection(query url.Values) (selection, []error) {
	stat, statErr := parseInputStat(query.Get(statParam))
	line, lineErr := parseInputLine(query.Get(lineParam))
	sel := selection{
		players: parseInputPlayers(query[playerParam]),
		spec:    stats.ReportSpec{Stat: stat, Line: line},
	}
	return sel, nonNilErrs(statErr, lineErr)
}

func (s selection) query() url.Values {
	query := url.Values{}
	for _, p := range s.players {
		query.Add(playerParam, p)
	}
	query.Set(statParam, s.spec.Stat.Column())
	query.Set(lineParam, strconv.FormatFloat(s.spec.Line, 'f', -1, 64))
	return query
}

// parseInputPlayers keeps the order players were given in, dropping blanks
// and duplicates.
func parseInputPlayers(values []string) []string {
	players := []string{}
	seen := map[string]bool{}
	for _, p := range values {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		players = append(players, p)
	}
	return players
}

func parseInputStat(str string) (data.Stat, error) {
	if str == "" {
		return data.Disposals, nil
	}
	return data.ParseStat(str)
}

func parseInputLine(str string) (float64, error) {
	if str == "" {
		return 0, nil
	}
	line, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(line) || math.IsInf(line, 0) {
		return 0, fmt.Errorf("%w %q. must be a finite number", errBadLine, str)
	}
	return line, nil
}

func parseInputFormat(str string) (plot.Format, error) {
	format, err := plot.ParseFormat(str)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errBadFormat, err)
	}
	return format, nil
}

func nonNilErrs(errs ...error) []error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	return nonNil
}
