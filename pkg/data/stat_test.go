package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStat(t *testing.T) {
	require := require.New(t)

	for _, stat := range AllStats {
		parsed, err := ParseStat(stat.Column())
		require.NoError(err)
		require.Equal(stat, parsed)
	}

	parsed, err := ParseStat(" Goals ")
	require.NoError(err)
	require.Equal(Goals, parsed)

	_, err = ParseStat("kicks")
	require.ErrorIs(err, ErrUnknownStat)
	require.ErrorContains(err, "disposals, marks, fantasy, goals, tackles")
}

func TestStatText(t *testing.T) {
	require := require.New(t)

	require.Equal("Fantasy", Fantasy.Title())

	raw, err := json.Marshal(map[string]Stat{"stat": Tackles})
	require.NoError(err)
	require.JSONEq(`{"stat":"tackles"}`, string(raw))

	var decoded struct{ Stat Stat }
	require.NoError(json.Unmarshal([]byte(`{"Stat":"marks"}`), &decoded))
	require.Equal(Marks, decoded.Stat)

	require.Error(json.Unmarshal([]byte(`{"Stat":"hitouts"}`), &decoded))

	_, err = Stat(42).MarshalText()
	require.ErrorIs(err, ErrUnknownStat)
}

func TestStatValues(t *testing.T) {
	require := require.New(t)

	var row Row
	row.Stats.Set(Goals, 2)
	copied := row
	copied.Stats.Set(Goals, 5)

	goals, ok := row.Stat(Goals)
	require.True(ok)
	require.Equal(2.0, goals)

	_, ok = row.Stat(Disposals)
	require.False(ok)
	_, ok = row.Stat(Stat(-1))
	require.False(ok)
}
