// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package recommend implements the deterministic recommendation pipeline.
//
// # Architecture
//
// The pipeline is a linear flow of independently testable stages:
//
//	raw input -> preferences -> hard filters -> composite score -> stable
//	rank -> (optional) AI re-ranking -> bounded top-N
//
// Filtering and scoring are pure functions over the catalogue; the optional
// re-ranking step is delegated to a Reranker collaborator and every failure
// of that collaborator falls back to the deterministic ranking. A request
// therefore never fails because the AI capability is slow, unreachable, or
// returns garbage.
//
// # Composite Score
//
// Candidates are ranked by a weighted 0-1 score:
//
//	score = 0.6*rating/5 + 0.3*min(votes/5000, 1) + 0.1*priceBonus
//
// Absent fields contribute exactly zero, which preserves relative order
// among restaurants missing the same fields. The price bonus applies only on
// an exact bucket match against the requested maximum.
//
// # Determinism
//
// Ranking uses a stable sort, so equal scores keep catalogue order and the
// same catalogue plus the same preferences always produce the same output.
//
// # Thread Safety
//
// A Pipeline is immutable after construction and safe for concurrent use
// with a shared read-only catalogue.
package recommend
