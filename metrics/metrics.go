package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics for the comment pipeline
	URLsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youtube_urls_resolved_total",
			Help: "Total number of URL resolutions by matching rule",
		},
		[]string{"rule"},
	)

	PagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "youtube_comment_pages_fetched_total",
			Help: "Total number of commentThreads pages fetched",
		},
	)

	CommentsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youtube_comments_fetched_total",
			Help: "Total number of comment records fetched",
		},
		[]string{"kind"},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youtube_upstream_errors_total",
			Help: "Total number of failed YouTube API calls",
		},
		[]string{"endpoint"},
	)

	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "youtube_comment_fetch_duration_seconds",
			Help:    "Duration of a full comment fetch in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comment_exports_total",
			Help: "Total number of comment exports",
		},
		[]string{"format", "status"},
	)

	// Session store metrics
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "backend", "status"},
	)

	// NATS metrics
	NatsMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_published_total",
			Help: "Total number of NATS messages published",
		},
		[]string{"subject", "status"},
	)

	NatsMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_received_total",
			Help: "Total number of NATS messages received",
		},
		[]string{"subject", "status"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Initialize metrics with default values
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
