// Package metrics provides Prometheus metrics for the site backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voidpdev"

var (
	// RequestsTotal counts served HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RenderDuration measures content normalization time.
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "content_render_duration_seconds",
			Help:      "Duration of content normalization in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"format"},
	)

	// PostsImported counts Markdown files processed by the importer.
	PostsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_imported_total",
			Help:      "Total number of imported Markdown documents by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records a served request.
func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRender records a content normalization run.
func ObserveRender(format string, duration time.Duration) {
	RenderDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// RecordImport records the outcome of a single imported document.
func RecordImport(outcome string) {
	PostsImported.WithLabelValues(outcome).Inc()
}
