package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiLabels = []string{"code", "method", "api"}
	quantiles = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}

	httpReqDuration = Factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       FQName("http_request_duration_sec"),
			Help:       "Duration of dashboard HTTP requests in seconds",
			Objectives: quantiles,
		},
		apiLabels,
	)
	httpReqTimeToHeaders = Factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       FQName("http_request_time_to_headers_sec"),
			Help:       "Time until dashboard HTTP response headers are written, in seconds",
			Objectives: quantiles,
		},
		apiLabels,
	)
	httpRespSize = Factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    FQName("http_response_size_bytes"),
			Help:    "Size of dashboard HTTP responses in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
		apiLabels,
	)
	httpReqInFlight = Factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: FQName("http_request_in_flight"),
			Help: "Number of dashboard requests in-flight per API",
		},
		[]string{"api"},
	)
)

// ObservedHandler wraps handler with the per-API request metrics, labelled
// with apiName.
func ObservedHandler(apiName string, handler http.Handler) http.Handler {
	apiLabel := prometheus.Labels{"api": apiName}
	handler = promhttp.InstrumentHandlerResponseSize(
		httpRespSize.MustCurryWith(apiLabel),
		handler)
	handler = promhttp.InstrumentHandlerTimeToWriteHeader(
		httpReqTimeToHeaders.MustCurryWith(apiLabel),
		handler)
	handler = promhttp.InstrumentHandlerDuration(
		httpReqDuration.MustCurryWith(apiLabel),
		handler)
	return promhttp.InstrumentHandlerInFlight(
		httpReqInFlight.WithLabelValues(apiName),
		handler)
}
