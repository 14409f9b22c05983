package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jongio/uri-core/uri"
)

const (
	resultOK          = "ok"
	resultInvalidPort = "invalid_port"
	resultError       = "error"
)

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uri_parse_total",
			Help: "Total number of URI parse attempts by result",
		},
		[]string{"result"},
	)

	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "uri_parse_duration_seconds",
			Help:    "Time spent parsing a single URI in seconds",
			Buckets: []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005},
		},
	)

	parseSegments = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "uri_parse_segments",
			Help:    "Number of path segments in successfully parsed URIs",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uri_http_requests_total",
			Help: "HTTP requests handled by the parse service",
		},
		[]string{"path", "code"},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "uri_http_rate_limited_total",
			Help: "HTTP requests rejected by the rate limiter",
		},
	)
)

// recordParse records metrics for one parse attempt.
func recordParse(c uri.Components, err error, elapsed time.Duration) {
	parseDuration.Observe(elapsed.Seconds())
	parseTotal.WithLabelValues(parseResult(err)).Inc()
	if err == nil {
		parseSegments.Observe(float64(len(c.Path)))
	}
}

func parseResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, uri.ErrInvalidPort):
		return resultInvalidPort
	default:
		return resultError
	}
}

// knownPaths bounds the cardinality of the path label.
var knownPaths = map[string]bool{
	parsePath:   true,
	healthPath:  true,
	metricsPath: true,
}

func recordRequest(path string, code int) {
	if !knownPaths[path] {
		path = "other"
	}
	httpRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}
