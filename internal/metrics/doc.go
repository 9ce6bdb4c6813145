// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

/*
Package metrics provides Prometheus metrics collection and export.

# Overview

The package instruments:
  - Recommendation pipeline latency and candidate volume
  - Re-ranking attempts, failure causes, and deterministic fallbacks
  - Re-rank cache hit/miss rates
  - HTTP request latency by method, path, and status

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

All collectors are registered at package load via promauto; recording helpers
(ObservePipeline, ObserveHTTPRequest) keep call sites one-liners.
*/
package metrics
