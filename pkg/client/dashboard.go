// Package client contains a client for the AFL dashboard JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/stats"
	"github.com/golang/glog"
)

type (
	// Dashboard abstracts the dashboard report APIs.
	Dashboard interface {
		Players(ctx context.Context) ([]string, error)
		Report(ctx context.Context, query Query) (*stats.Report, error)
		GameLog(ctx context.Context, players ...string) (*dataset.GameLog, error)
		// Chart returns the encoded image and its content type.
		Chart(ctx context.Context, query Query, format string) ([]byte, string, error)
	}

	// Query selects the players and the stat line to report on.
	Query struct {
		Players []string
		Stat    data.Stat
		Line    float64
	}

	errorResponse struct {
		Errors []string `json:"errors"`
	}

	dashboard struct {
		baseUrl    string
		userAgent  string
		httpClient *http.Client
	}
)

// NewDashboard creates a client for the dashboard service. baseUrl includes
// the API root, e.g. "localhost:8080/api".
func NewDashboard(baseUrl, userAgent string, timeout time.Duration) Dashboard {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &dashboard{
		baseUrl:   strings.TrimSuffix(addScheme(baseUrl), "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (q Query) values() url.Values {
	values := url.Values{}
	for _, p := range q.Players {
		values.Add("player", p)
	}
	values.Set("stat", q.Stat.Column())
	values.Set("line", strconv.FormatFloat(q.Line, 'f', -1, 64))
	return values
}

func (d *dashboard) Players(ctx context.Context) ([]string, error) {
	var players []string
	if err := d.getJson(ctx, "/players", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (d *dashboard) Report(ctx context.Context, query Query) (*stats.Report, error) {
	var report *stats.Report
	if err := d.getJson(ctx, "/report", query.values(), &report); err != nil {
		return nil, err
	}
	return report, nil
}

func (d *dashboard) GameLog(ctx context.Context, players ...string) (*dataset.GameLog, error) {
	var log *dataset.GameLog
	if err := d.getJson(ctx, "/gamelog", Query{Players: players}.values(), &log); err != nil {
		return nil, err
	}
	return log, nil
}

func (d *dashboard) Chart(ctx context.Context, query Query, format string) ([]byte, string, error) {
	values := query.values()
	if format != "" {
		values.Set("format", format)
	}
	body, header, err := d.doGet(ctx, d.url("/chart", values))
	if err != nil {
		return nil, "", err
	}
	return body, header.Get("Content-Type"), nil
}

func (d *dashboard) url(path string, query url.Values) string {
	if len(query) == 0 {
		return d.baseUrl + path
	}
	return d.baseUrl + path + "?" + query.Encode()
}

func (d *dashboard) getJson(ctx context.Context, path string, query url.Values, out interface{}) error {
	url := d.url(path, query)
	body, _, err := d.doGet(ctx, url)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, out); err != nil {
		glog.Errorf("Error parsing response from dashboard url=%q, err=%q, body=%q", url, err, string(body))
		return fmt.Errorf("error parsing dashboard response: %w", err)
	}
	return nil
}

func (d *dashboard) doGet(ctx context.Context, url string) ([]byte, http.Header, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Add("User-Agent", d.userAgent)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		glog.Errorf("Get request error to dashboard url=%q, err=%q", url, err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		glog.Errorf("Error reading dashboard response body url=%q, status=%d, error=%q", url, resp.StatusCode, err)
		return nil, nil, err
	}
	if glog.V(7) {
		took := time.Since(start)
		glog.Infof("Dashboard get request done url=%q, status=%d, latency=%v, bytes=%d",
			url, resp.StatusCode, took, len(body))
	}
	if resp.StatusCode != http.StatusOK {
		glog.Errorf("Status error from dashboard url=%q, status=%d, body=%q", url, resp.StatusCode, string(body))
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			glog.Errorf("Failed to parse error response url=%q, status=%d, err=%q", url, resp.StatusCode, err)
			errResp.Errors = []string{string(body)}
		}
		return nil, nil, APIError{resp.StatusCode, errResp.Errors}
	}
	return body, resp.Header, nil
}

func addScheme(url string) string {
	lower := strings.ToLower(url)
	if url == "" || strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}
	if strings.Contains(lower, ".local") || strings.HasPrefix(lower, "localhost") || strings.HasPrefix(lower, "127.0.0.1") {
		return "http://" + url
	}
	return "https://" + url
}
