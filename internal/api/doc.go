// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package api provides the HTTP surface of the recommendation service using
// the Chi router.
//
// Endpoints:
//
//	POST /api/v1/recommendations    - full pipeline (filter, rank, optional LLM re-rank)
//	GET  /api/v1/candidates         - deterministic shortlist without LLM involvement
//	GET  /api/v1/metadata/filters   - distinct cities, cuisines, and available models
//	GET  /api/v1/health/live        - liveness probe
//	GET  /api/v1/health/ready       - readiness probe (catalogue loaded)
//	GET  /metrics                   - Prometheus metrics
//
// All responses share a common envelope with status, data, metadata, and an
// optional structured error. Global middleware adds request IDs for log
// correlation, CORS handling via go-chi/cors, and IP rate limiting via
// go-chi/httprate.
package api
