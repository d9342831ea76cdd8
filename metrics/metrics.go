package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PlanFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_fallbacks_total",
			Help: "Number of structured plans replaced by the sample payload",
		},
		[]string{"reason"},
	)

	SearchDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_degraded_total",
			Help: "Number of search-grounded completions retried without the search tool",
		},
	)

	ImageLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_lookups_total",
			Help: "Image search lookups by result",
		},
		[]string{"result"},
	)
)

// Fallback reasons.
const (
	ReasonAIUnavailable = "ai_unavailable"
	ReasonAIError       = "ai_error"
	ReasonParseError    = "parse_error"
)

// Image lookup results.
const (
	ImageFound   = "found"
	ImageEmpty   = "empty"
	ImageError   = "error"
	ImageSkipped = "skipped"
)
