// Package observability provides tracing and metrics instrumentation.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialbook_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedAssemblyDuration records feed computation latency.
	FeedAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "socialbook_feed_assembly_duration_seconds",
		Help:    "Time spent assembling a viewer feed",
		Buckets: prometheus.DefBuckets,
	})

	// FeedPostsReturned records how many posts each assembled feed contained.
	FeedPostsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "socialbook_feed_posts_returned",
		Help:    "Number of posts returned per feed request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	// RegistrationsTotal counts successful account registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialbook_registrations_total",
		Help: "Total number of successful registrations",
	})
)
