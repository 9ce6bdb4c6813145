// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"sort"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
)

// Composite score weights; they sum to 1.0 so the score stays in [0, 1].
const (
	weightRating     = 0.6
	weightVotes      = 0.3
	weightPriceBonus = 0.1

	// maxRating normalizes the 0-5 rating scale.
	maxRating = 5.0

	// votesScale saturates the popularity component; votes beyond this are
	// not rewarded further.
	votesScale = 5000.0
)

// Score computes the composite relevance score in [0, 1] for a restaurant.
//
// Absent fields contribute exactly zero to their component. The price bonus
// applies only when the restaurant's bucket equals the preferred maximum
// exactly; this is deliberately stricter than the price filter's <= check
// (a match bonus, not an affordability test). Total over all valid inputs.
func Score(r *catalog.Restaurant, prefs *UserPreferences) float64 {
	var ratingScore float64
	if r.Rating != nil {
		ratingScore = *r.Rating / maxRating
		if ratingScore < 0 {
			ratingScore = 0
		}
		if ratingScore > 1 {
			ratingScore = 1
		}
	}

	var votesScore float64
	if r.Votes != nil {
		votesScore = float64(*r.Votes) / votesScale
		if votesScore > 1 {
			votesScore = 1
		}
	}

	var priceBonus float64
	if prefs.MaxPriceBucket != nil && r.PriceRange != nil && *r.PriceRange == *prefs.MaxPriceBucket {
		priceBonus = 1
	}

	return ratingScore*weightRating + votesScore*weightVotes + priceBonus*weightPriceBonus
}

// Rank returns restaurants sorted by Score in descending order. The sort is
// stable: equal scores keep their catalogue-relative order, which makes
// results deterministic and reproducible. The input slice is not mutated.
func Rank(restaurants []catalog.Restaurant, prefs *UserPreferences) []catalog.Restaurant {
	type scored struct {
		restaurant catalog.Restaurant
		score      float64
	}

	items := make([]scored, len(restaurants))
	for i := range restaurants {
		items[i] = scored{
			restaurant: restaurants[i],
			score:      Score(&restaurants[i], prefs),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]catalog.Restaurant, len(items))
	for i := range items {
		ranked[i] = items[i].restaurant
	}
	return ranked
}
