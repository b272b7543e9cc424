package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowSize(t *testing.T) {
	require := require.New(t)

	require.Equal(7, Overall.Size(7))
	require.Equal(3, Window(3).Size(7))
	require.Equal(2, Window(10).Size(2))
	require.Equal(0, Window(5).Size(0))
}

func TestWindowText(t *testing.T) {
	require := require.New(t)

	raw, err := json.Marshal(DefaultWindows)
	require.NoError(err)
	require.JSONEq(`["overall","last3","last5","last10"]`, string(raw))

	var decoded []Window
	require.NoError(json.Unmarshal(raw, &decoded))
	require.Equal(DefaultWindows, decoded)

	var w Window
	require.Error(w.UnmarshalText([]byte("last0")))
	require.Error(w.UnmarshalText([]byte("recent")))

	require.Equal("Overall", Overall.Label())
	require.Equal("Last 10 Games", Window(10).Label())
}
