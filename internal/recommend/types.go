// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"context"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
)

// Recommendation is one pipeline result: a catalogue restaurant annotated
// with the per-request computed fields. Keeping computed fields here rather
// than as mutable slots on catalog.Restaurant leaves the shared catalogue
// immutable, so concurrent requests never observe each other's scores.
type Recommendation struct {
	catalog.Restaurant

	// Score is the composite statistical score, rounded to 4 decimals.
	Score float64 `json:"score"`

	// LLMScore is the re-ranker's confidence (0-1), nil when the result
	// came from the deterministic path.
	LLMScore *float64 `json:"llm_score,omitempty"`

	// LLMExplanation is the re-ranker's 1-3 sentence justification, empty
	// on the deterministic path.
	LLMExplanation string `json:"explanation,omitempty"`
}

// RerankedItem is one re-ranked result returned by a Reranker: a shortlist
// member selected by the external capability, with its explanation and
// confidence.
type RerankedItem struct {
	RestaurantID string  `json:"restaurant_id"`
	Explanation  string  `json:"explanation"`
	Score        float64 `json:"score"`
}

// Reranker re-orders a bounded shortlist using an external capability.
// Implementations must only return items whose RestaurantID exists in the
// shortlist and must surface every failure as an error rather than a partial
// panic; the pipeline treats any error as a signal to fall back to the
// deterministic ranking.
type Reranker interface {
	Rerank(ctx context.Context, shortlist []catalog.Restaurant, prefs *UserPreferences) ([]RerankedItem, error)
}
