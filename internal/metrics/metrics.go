// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recommendation service:
// - Pipeline latency and candidate volume
// - Re-ranking attempts, failures, and fallbacks
// - Re-rank cache efficiency
// - HTTP endpoint latency and status codes

var (
	// Pipeline metrics
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_pipeline_duration_seconds",
			Help:    "End-to-end recommendation pipeline latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"reranked"},
	)

	PipelineCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_pipeline_candidates",
			Help:    "Number of candidates surviving the filter stage",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500, 1000, 5000},
		},
	)

	// Re-ranking metrics
	RerankRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rerank_requests_total",
			Help: "Total number of re-ranking gateway invocations",
		},
	)

	RerankFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rerank_failures_total",
			Help: "Total number of re-ranking failures by cause",
		},
		[]string{"cause"}, // "empty_response", "transport", "malformed"
	)

	RerankFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rerank_fallbacks_total",
			Help: "Total number of pipeline runs that fell back to the deterministic ranking",
		},
	)

	RerankDroppedRecommendations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rerank_dropped_recommendations_total",
			Help: "Recommendations dropped because their restaurant_id was not in the shortlist",
		},
	)

	// Re-rank cache metrics
	RerankCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rerank_cache_hits_total",
			Help: "Total number of re-rank cache hits",
		},
	)

	RerankCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rerank_cache_misses_total",
			Help: "Total number of re-rank cache misses",
		},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Catalogue metrics
	CatalogueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalogue_restaurants",
			Help: "Number of restaurants in the loaded catalogue",
		},
	)
)

// ObservePipeline records one pipeline run.
func ObservePipeline(d time.Duration, candidates int, reranked bool) {
	PipelineDuration.WithLabelValues(strconv.FormatBool(reranked)).Observe(d.Seconds())
	PipelineCandidates.Observe(float64(candidates))
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}
