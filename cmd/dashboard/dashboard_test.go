package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	require := require.New(t)

	cli, err := parseFlags(nil)
	require.NoError(err)

	require.Equal("localhost:8080", cli.serverOpts.Addr())
	require.Equal("/api", cli.serverOpts.APIRoot)
	require.Equal(5*time.Minute, cli.serverOpts.CacheTTL)
	require.Equal([]string{"*"}, cli.serverOpts.AllowedOrigins)
	require.Equal("player_stats.xlsx", cli.datasetOpts.Path)
	require.Equal("player_data", cli.datasetOpts.Sheet)
	require.Equal(2, cli.datasetOpts.SkipRows)
	require.Equal("A:N", cli.datasetOpts.Columns)
	require.Equal(9200, cli.datasetOpts.MaxRows)
}

func TestParseFlagsSources(t *testing.T) {
	require := require.New(t)

	t.Setenv("AFL_PORT", "9090")
	t.Setenv("AFL_SQL_DSN", "file:stats.db")

	config := filepath.Join(t.TempDir(), "dashboard.conf")
	require.NoError(os.WriteFile(config, []byte("data-sheet season_2024\nallowed-origins https://a.example.com,https://b.example.com\n"), 0o600))

	cli, err := parseFlags([]string{"-config", config, "-data-max-rows", "0", "-cache-ttl", "0s"})
	require.NoError(err)

	require.Equal(uint(9090), cli.serverOpts.Port)
	require.Equal("file:stats.db", cli.datasetOpts.SQL.DSN)
	require.Equal("season_2024", cli.datasetOpts.Sheet)
	require.Equal(0, cli.datasetOpts.MaxRows)
	require.Zero(cli.serverOpts.CacheTTL)
	require.Equal([]string{"https://a.example.com", "https://b.example.com"}, cli.serverOpts.AllowedOrigins)
}

func TestParseFlagsError(t *testing.T) {
	_, err := parseFlags([]string{"-port", "not-a-port"})
	require.Error(t, err)
}
