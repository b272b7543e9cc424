package api

import (
	"bytes"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/metrics"
	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/plot"
	"github.com/footystats/afl-dashboard/stats"
	"github.com/footystats/afl-dashboard/views"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cache "github.com/victorspringer/http-cache"
	"github.com/victorspringer/http-cache/adapter/memory"
)

const datasetIDHeader = "X-Dataset-Id"

type APIHandlerOptions struct {
	ServerName, APIRoot string
	Version             string
	AllowedOrigins      []string
	Prometheus          bool
	// CacheTTL is how long computed responses are kept in memory. Zero
	// disables the cache.
	CacheTTL      time.Duration
	CacheCapacity int
}

// normalizeAPIRoot makes the root absolute and drops any trailing slash. The
// API can't share the page's root path, so an empty root falls back to /api.
func normalizeAPIRoot(root string) string {
	root = strings.Trim(strings.TrimSpace(root), "/")
	if root == "" {
		return "/api"
	}
	return "/" + root
}

type apiHandler struct {
	opts      APIHandlerOptions
	data      dataset.Accessor
	httpCache *cache.Client
}

// NewHandler serves the HTML dashboard on / and the JSON and chart routes
// under opts.APIRoot, which defaults to /api.
func NewHandler(opts APIHandlerOptions, ds dataset.Accessor) http.Handler {
	opts.APIRoot = normalizeAPIRoot(opts.APIRoot)
	handler := &apiHandler{opts: opts, data: ds}
	if opts.CacheTTL > 0 {
		var err error
		handler.httpCache, err = newHTTPCache(opts.CacheTTL, opts.CacheCapacity)
		if err != nil {
			glog.Errorf("Error creating response cache, serving without it. err=%q", err)
		}
	}

	router := chi.NewRouter()

	// don't use middlewares for the system routes
	router.Get("/_healthz", handler.healthcheck)
	if opts.Prometheus {
		router.Method("GET", "/metrics", promhttp.Handler())
	}

	router.Group(func(router chi.Router) {
		router.Use(chimiddleware.Logger)
		router.Use(handler.serverHeaders())

		handler.withMetrics(router, "dashboard").
			MethodFunc("GET", "/", handler.dashboard)
	})

	router.Route(opts.APIRoot, func(router chi.Router) {
		router.Use(chimiddleware.Logger)
		router.Use(chimiddleware.NewCompressor(5, "application/json", "image/svg+xml").Handler)
		router.Use(handler.cors())
		router.Use(handler.serverHeaders())

		handler.withMetrics(router, "list_players").
			MethodFunc("GET", "/players", handler.listPlayers)
		handler.withMetrics(router, "get_report").
			With(handler.cache()).
			MethodFunc("GET", "/report", handler.getReport)
		handler.withMetrics(router, "get_game_log").
			With(handler.cache()).
			MethodFunc("GET", "/gamelog", handler.getGameLog)
		handler.withMetrics(router, "get_chart").
			With(handler.cache()).
			MethodFunc("GET", "/chart", handler.getChart)
	})

	return router
}

func newHTTPCache(ttl time.Duration, capacity int) (*cache.Client, error) {
	if capacity <= 0 {
		capacity = 2000
	}
	memcached, err := memory.NewAdapter(
		memory.AdapterWithAlgorithm(memory.LRU),
		memory.AdapterWithCapacity(capacity),
	)
	if err != nil {
		return nil, err
	}
	return cache.NewClient(
		cache.ClientWithAdapter(memcached),
		cache.ClientWithTTL(ttl),
	)
}

func (h *apiHandler) withMetrics(router chi.Router, name string) chi.Router {
	if !h.opts.Prometheus {
		return router
	}
	return router.With(func(handler http.Handler) http.Handler {
		return metrics.ObservedHandler(name, handler)
	})
}

// cache keeps responses keyed by URL. The dataset never changes while the
// process is up, so entries only expire by TTL.
func (h *apiHandler) cache() middleware {
	return func(next http.Handler) http.Handler {
		if h.httpCache == nil {
			return next
		}
		next = h.httpCache.Middleware(next)

		maxAge := int(h.opts.CacheTTL.Seconds())
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rw.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(maxAge))
			next.ServeHTTP(rw, r)
		})
	}
}

func (h *apiHandler) healthcheck(rw http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if h.data == nil || h.data.Len() == 0 {
		status = http.StatusServiceUnavailable
	}
	rw.WriteHeader(status)
}

func (h *apiHandler) listPlayers(rw http.ResponseWriter, r *http.Request) {
	players := h.data.Players()
	if players == nil {
		players = []string{}
	}
	respondJson(rw, http.StatusOK, players)
}

func (h *apiHandler) getReport(rw http.ResponseWriter, r *http.Request) {
	sel, errs := parseSelection(r.URL.Query())
	if len(errs) > 0 {
		respondError(rw, http.StatusBadRequest, errs...)
		return
	}
	respondJson(rw, http.StatusOK, h.buildReport(sel))
}

func (h *apiHandler) getGameLog(rw http.ResponseWriter, r *http.Request) {
	players := parseInputPlayers(r.URL.Query()[playerParam])
	rows := h.data.Select(players)
	respondJson(rw, http.StatusOK, dataset.NewGameLog(h.data.Header(), rows))
}

func (h *apiHandler) getChart(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sel, errs := parseSelection(query)
	format, formatErr := parseInputFormat(query.Get(formatParam))
	if errs = append(errs, nonNilErrs(formatErr)...); len(errs) > 0 {
		respondError(rw, http.StatusBadRequest, errs...)
		return
	}

	report := h.buildReport(sel)
	var buf bytes.Buffer
	if err := plot.BarChart(&buf, report.Chart, sel.spec.Stat, sel.spec.Line, format); err != nil {
		respondError(rw, http.StatusInternalServerError, err)
		return
	}
	rw.Header().Set("Content-Type", format.ContentType())
	rw.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(rw); err != nil {
		glog.Errorf("Error writing chart response. err=%q", err)
	}
}

func (h *apiHandler) dashboard(rw http.ResponseWriter, r *http.Request) {
	sel, errs := parseSelection(r.URL.Query())
	if len(errs) > 0 {
		respondError(rw, http.StatusBadRequest, errs...)
		return
	}
	rows := h.data.Select(sel.players)

	page := views.DashboardData{
		Players: h.data.Players(),
		Selection: views.Selection{
			Players: sel.players,
			Stat:    sel.spec.Stat,
			Line:    sel.spec.Line,
		},
		Report:  h.buildReportFrom(rows, sel.spec),
		GameLog: dataset.NewGameLog(h.data.Header(), rows),
		Version: h.opts.Version,
	}
	if len(rows) > 0 {
		page.ChartURL = path.Join(h.opts.APIRoot, "chart") + "?" + sel.query().Encode()
	}
	templ.Handler(views.Dashboard(page)).ServeHTTP(rw, r)
}

func (h *apiHandler) buildReport(sel selection) stats.Report {
	return h.buildReportFrom(h.data.Select(sel.players), sel.spec)
}

func (h *apiHandler) buildReportFrom(rows []data.Row, spec stats.ReportSpec) stats.Report {
	start := time.Now()
	report := stats.BuildReport(rows, spec)
	if h.opts.Prometheus {
		metrics.ObserveReport(spec.Stat.Column(), len(rows), time.Since(start))
	}
	return report
}
