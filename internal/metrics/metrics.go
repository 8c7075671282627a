// Package metrics defines the Prometheus instruments of the roommate matcher.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine metrics
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommate_swipes_total",
			Help: "Total number of swipes applied to preference profiles",
		},
		[]string{"direction"},
	)

	CompatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommate_compatibility_score",
			Help:    "Distribution of computed compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	RankPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roommate_rank_pool_size",
			Help:    "Number of candidates per rank request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
	)

	// Session store metrics
	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommate_session_operations_total",
			Help: "Total number of session operations by outcome",
		},
		[]string{"operation", "result"},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommate_store_duration_seconds",
			Help:    "Duration of session store calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	// HTTP metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommate_api_requests_total",
			Help: "Total number of HTTP API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommate_api_request_duration_seconds",
			Help:    "Duration of HTTP API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "endpoint"},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommate_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

// RecordSwipe counts one applied swipe.
func RecordSwipe(direction string) {
	SwipesTotal.WithLabelValues(direction).Inc()
}

// RecordScore observes one compatibility score.
func RecordScore(score int) {
	CompatibilityScores.Observe(float64(score))
}

// RecordRank observes the size of a ranked pool.
func RecordRank(poolSize int) {
	RankPoolSize.Observe(float64(poolSize))
}

// RecordSessionOperation counts a session operation as "ok" or "error".
func RecordSessionOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	SessionOperations.WithLabelValues(operation, result).Inc()
}

// RecordStoreCall observes the latency of a store call.
func RecordStoreCall(driver, operation string, duration time.Duration) {
	StoreDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
}

// RecordAPIRequest counts and times one HTTP request.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitRejection counts one rejected request.
func RecordRateLimitRejection(endpoint string) {
	RateLimitRejections.WithLabelValues(endpoint).Inc()
}
