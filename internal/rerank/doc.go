// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package rerank implements the AI re-ranking gateway.
//
// The gateway sits between the deterministic pipeline and an opaque
// text-in/text-out generative capability. Its responsibilities:
//
//   - Cap the shortlist at 15 candidates (token/cost bound)
//   - Memoize results in a keyed cache (24h TTL); the cache key is a
//     deterministic hash insensitive to the ordering of unordered inputs
//   - Build the criteria summary and compact candidate JSON for the prompt
//   - Parse and validate the structured response, silently dropping
//     recommendations that reference restaurants outside the shortlist
//   - Collapse every failure mode (empty response, transport error,
//     malformed output) into ErrRerankFailed so the pipeline has exactly one
//     error to absorb
//
// An empty shortlist is not a failure: it short-circuits to an empty result
// without touching the capability or the cache.
package rerank
