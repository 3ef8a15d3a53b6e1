package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Summaries produced, by strategy and the reason that strategy was used.
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_summaries_total",
			Help: "Total number of email batch summaries produced",
		},
		[]string{"strategy", "reason"}, // strategy: remote, fallback
	)

	ProviderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_provider_failures_total",
			Help: "Total number of failed remote provider calls",
		},
		[]string{"provider", "kind"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_provider_latency_seconds",
			Help:    "Remote provider call latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"provider", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

func IncrementSummaries(strategy, reason string) {
	SummariesTotal.WithLabelValues(strategy, reason).Inc()
}

func IncrementProviderFailure(provider, kind string) {
	ProviderFailures.WithLabelValues(provider, kind).Inc()
}

func RecordProviderLatency(provider, status string, duration time.Duration) {
	ProviderLatency.WithLabelValues(provider, status).Observe(duration.Seconds())
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
