package data

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStat = errors.New("unknown stat")

// Stat is the closed set of numeric columns a user can pick for the line
// comparison and chart. Anything else is rejected by ParseStat before it gets
// anywhere near the aggregation code.
type Stat int

const (
	Disposals Stat = iota
	Marks
	Fantasy
	Goals
	Tackles

	statCount = iota
)

var AllStats = []Stat{Disposals, Marks, Fantasy, Goals, Tackles}

var statColumns = [statCount]string{
	Disposals: "disposals",
	Marks:     "marks",
	Fantasy:   "fantasy",
	Goals:     "goals",
	Tackles:   "tackles",
}

func ParseStat(str string) (Stat, error) {
	name := strings.ToLower(strings.TrimSpace(str))
	for i, col := range statColumns {
		if col == name {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q. must be one of %s", ErrUnknownStat, str, strings.Join(statColumns[:], ", "))
}

func (s Stat) Valid() bool {
	return s >= 0 && s < statCount
}

// Column is the name of the dataset column holding this stat.
func (s Stat) Column() string {
	if !s.Valid() {
		return fmt.Sprintf("stat(%d)", int(s))
	}
	return statColumns[s]
}

func (s Stat) String() string {
	return s.Column()
}

// Title is the capitalized display name, e.g. "Disposals".
func (s Stat) Title() string {
	col := s.Column()
	return strings.ToUpper(col[:1]) + col[1:]
}

func (s Stat) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStat, int(s))
	}
	return []byte(s.Column()), nil
}

func (s *Stat) UnmarshalText(b []byte) error {
	parsed, err := ParseStat(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StatValues holds one value per Stat plus whether it was present in the
// source. It is a plain array so copying a Row copies its values too.
type StatValues struct {
	values  [statCount]float64
	present [statCount]bool
}

func (v StatValues) Get(s Stat) (float64, bool) {
	if !s.Valid() || !v.present[s] {
		return 0, false
	}
	return v.values[s], true
}

func (v *StatValues) Set(s Stat, value float64) {
	if !s.Valid() {
		return
	}
	v.values[s] = value
	v.present[s] = true
}
