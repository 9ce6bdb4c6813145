// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package rerank

import (
	"crypto/md5" //nolint:gosec // cache key fingerprint, not a security boundary
	"encoding/hex"
	"sort"

	"github.com/goccy/go-json"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

// cacheKeyInput is the canonical form hashed into the cache key. Unordered
// components (candidate IDs, cities, cuisines) are sorted first so that
// identical requests hash identically regardless of input order.
type cacheKeyInput struct {
	IDs       []string `json:"ids"`
	Cities    []string `json:"cities"`
	Cuisines  []string `json:"cuisines"`
	MinRating *float64 `json:"min_rating"`
	MaxPrice  *int     `json:"max_price"`
	TopN      int      `json:"top_n"`
	Model     string   `json:"model"`
}

// cacheKey derives the deterministic cache key for a shortlist/preferences
// pair.
func cacheKey(shortlist []catalog.Restaurant, prefs *recommend.UserPreferences) string {
	ids := make([]string, len(shortlist))
	for i := range shortlist {
		ids[i] = shortlist[i].ID
	}
	sort.Strings(ids)

	input := cacheKeyInput{
		IDs:       ids,
		Cities:    sortedCopy(prefs.Cities),
		Cuisines:  sortedCopy(prefs.Cuisines),
		MinRating: prefs.MinRating,
		MaxPrice:  prefs.MaxPriceBucket,
		TopN:      prefs.TopN,
		Model:     prefs.ModelName,
	}

	// Struct field order is fixed, so the marshaled form is canonical.
	data, err := json.Marshal(input)
	if err != nil {
		// Cannot happen for this shape; fall back to an uncacheable key.
		return "uncacheable"
	}

	sum := md5.Sum(data) //nolint:gosec // see import note
	return hex.EncodeToString(sum[:])
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
