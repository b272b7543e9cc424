package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRound(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		raw, exp string
	}{
		{"3", "3"},
		{"3.0", "3"},
		{" 4.0 ", "4"},
		{"12.7", "12"},
		{"-0.4", "0"},
		{"", "nan"},
		{"   ", "nan"},
		{"nan", "nan"},
		{"NaN", "nan"},
		{"inf", "inf"},
		{"-Inf", "-inf"},
		{"Infinity", "inf"},
		{"1e400", "1e400"},
		{"QF", "QF"},
		{"Round 1", "Round 1"},
		{"1e3", "1000"},
	}
	for _, tt := range tests {
		require.Equal(tt.exp, NormalizeRound(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeRoundIsIdempotent(t *testing.T) {
	require := require.New(t)

	inputs := []string{"3.0", "", "nan", "inf", "-inf", "QF", " 7 ", "2.5", "-3.9", "1e400", "0x10", "Grand Final"}
	for _, raw := range inputs {
		once := NormalizeRound(raw)
		require.Equal(once, NormalizeRound(once), "raw=%q", raw)
	}
}

func TestFormatRound(t *testing.T) {
	require := require.New(t)

	rounds := []float64{3.0, 4.0, math.NaN()}
	var formatted []string
	for _, r := range rounds {
		formatted = append(formatted, FormatRound(r))
	}
	require.Equal([]string{"3", "4", "nan"}, formatted)

	require.Equal("inf", FormatRound(math.Inf(1)))
	require.Equal("-inf", FormatRound(math.Inf(-1)))
	require.Equal("0", FormatRound(math.Copysign(0, -1)))
}
