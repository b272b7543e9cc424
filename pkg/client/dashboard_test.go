package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/footystats/afl-dashboard/api"
	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	header := []string{"Player", "Round", "Venue", "home_away", "win_lose_draw", "disposals", "marks", "fantasy", "goals", "tackles"}
	records := [][]string{
		{"Christian Petracca", "1.0", "MCG", "Home", "Win", "28", "5", "112", "1", "6"},
		{"Clayton Oliver", "1.0", "MCG", "Home", "Win", "33", "3", "120", "0", "8"},
		{"Christian Petracca", "2.0", "Gabba", "Away", "Lose", "22", "4", "85", "2", "3"},
		{"Christian Petracca", "3.0", "MCG", "Home", "Draw", "31", "", "104", "0", "5"},
	}
	ds, err := dataset.FromTable(header, records)
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewHandler(api.APIHandlerOptions{}, ds))
	t.Cleanup(srv.Close)
	return srv
}

func TestDashboardClient(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	srv := newTestServer(t)
	client := NewDashboard(srv.URL+"/api/", "afl-test", 0)

	players, err := client.Players(ctx)
	require.NoError(err)
	require.Equal([]string{"Christian Petracca", "Clayton Oliver"}, players)

	report, err := client.Report(ctx, Query{Players: []string{"Christian Petracca"}, Stat: data.Marks, Line: 4})
	require.NoError(err)
	require.Equal(3, report.Games)
	overall := report.Line.Rows[0]
	require.Equal(1, overall.Above)
	require.Equal(0, overall.Below)
	require.Equal(1, overall.Equal)
	require.Equal(2, overall.Total)
	require.Equal("3", report.Chart[0].Round)
	require.Nil(report.Chart[0].Value)

	log, err := client.GameLog(ctx, "Clayton Oliver")
	require.NoError(err)
	require.Len(log.Rows, 1)
	require.Equal("1", log.Rows[0][1])

	img, contentType, err := client.Chart(ctx, Query{Players: []string{"Clayton Oliver"}, Stat: data.Tackles, Line: 6.5}, "svg")
	require.NoError(err)
	require.Equal("image/svg+xml", contentType)
	require.True(strings.Contains(string(img), "<svg"))
}

func TestDashboardClientErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	srv := newTestServer(t)
	client := NewDashboard(srv.URL+"/api", "", 0)

	_, _, err := client.Chart(ctx, Query{Players: []string{"Nobody"}}, "png")
	require.True(IsNotFound(err))
	require.Equal("no games to plot", err.Error())

	_, _, err = client.Chart(ctx, Query{Players: []string{"Clayton Oliver"}}, "bmp")
	require.True(IsBadRequest(err))
	require.False(IsNotFound(err))

	_, err = NewDashboard(srv.URL+"/nope", "", 0).Players(ctx)
	var apiErr APIError
	require.ErrorAs(err, &apiErr)
	require.Equal(404, apiErr.StatusCode)
}

func TestAddScheme(t *testing.T) {
	require := require.New(t)

	require.Equal("http://localhost:8080/api", addScheme("localhost:8080/api"))
	require.Equal("http://afl.local/api", addScheme("afl.local/api"))
	require.Equal("https://footy.example.com", addScheme("footy.example.com"))
	require.Equal("HTTP://127.0.0.1", addScheme("HTTP://127.0.0.1"))
	require.Equal("", addScheme(""))
}
