package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LikesTotal counts like/unlike calls by target kind and outcome.
	// Outcome "noop" marks the idempotent repeats that changed nothing.
	LikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_likes_total",
		Help: "Total like/unlike operations by target, action and outcome",
	}, []string{"target", "action", "outcome"})

	// LeaderboardComputeSeconds records the latency of full leaderboard
	// aggregations (cache misses).
	LeaderboardComputeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "commune_leaderboard_compute_seconds",
		Help:    "Latency of leaderboard karma aggregations",
		Buckets: prometheus.DefBuckets,
	})
)
