// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package llm implements the generative-language capability consumed by the
// re-ranking gateway.
//
// The client targets the Gemini REST surface
// (models/{model}:generateContent) but exposes only the opaque
// text-in/text-out contract of rerank.Capability; prompt construction and
// response validation live in the gateway.
//
// Resilience mechanisms, in order of application:
//
//   - Rate limiter: x/time token bucket bounds outbound request rate
//   - Circuit breaker: opens after 3 consecutive failures for 60s, so a
//     degraded upstream fails fast into the pipeline's deterministic path
//   - HTTP 429 handling: exponential backoff (1s, 2s, 4s) honoring
//     Retry-After, bounded attempts
//
// All methods accept a context for cancellation and deadline propagation.
package llm
