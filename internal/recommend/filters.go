// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
)

// Hard filters for the recommendation pipeline.
//
// Every filter is a pure function returning a new slice; the input slice is
// never mutated. Filters are conjunctive and commutative in outcome, so the
// fixed order in ApplyAllFilters matters only for efficiency.

// FilterByCities keeps restaurants whose normalized city is in cities.
// An empty cities slice returns the input unchanged (no city preference);
// restaurants without a city are excluded when the filter is active, since
// their location cannot be verified.
func FilterByCities(restaurants []catalog.Restaurant, cities []string) []catalog.Restaurant {
	needles := termSet(cities)
	if len(needles) == 0 {
		return append([]catalog.Restaurant(nil), restaurants...)
	}

	out := make([]catalog.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if r.City == "" {
			continue
		}
		if _, ok := needles[r.NormalizedCity()]; ok {
			out = append(out, *r)
		}
	}
	return out
}

// FilterByPrice keeps restaurants whose price bucket is known and at most
// maxBucket. Restaurants with an unknown bucket are excluded: affordability
// cannot be verified, so the conservative choice is exclusion.
func FilterByPrice(restaurants []catalog.Restaurant, maxBucket int) []catalog.Restaurant {
	out := make([]catalog.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if r.PriceRange != nil && *r.PriceRange <= maxBucket {
			out = append(out, *r)
		}
	}
	return out
}

// FilterByRating keeps restaurants rated at least minRating. Unrated
// restaurants are excluded.
func FilterByRating(restaurants []catalog.Restaurant, minRating float64) []catalog.Restaurant {
	out := make([]catalog.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if r.Rating != nil && *r.Rating >= minRating {
			out = append(out, *r)
		}
	}
	return out
}

// FilterByCuisines keeps restaurants that serve at least one cuisine in
// cuisines (case-insensitive any-match). An empty cuisines slice returns the
// input unchanged.
func FilterByCuisines(restaurants []catalog.Restaurant, cuisines []string) []catalog.Restaurant {
	needles := termSet(cuisines)
	if len(needles) == 0 {
		return append([]catalog.Restaurant(nil), restaurants...)
	}

	out := make([]catalog.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if r.HasCuisine(needles) {
			out = append(out, *r)
		}
	}
	return out
}

// ApplyAllFilters applies the hard filters derived from prefs in sequence:
// city, then max price bucket, then min rating, then cuisines. A filter
// whose preference dimension is unset is skipped entirely.
func ApplyAllFilters(restaurants []catalog.Restaurant, prefs *UserPreferences) []catalog.Restaurant {
	results := append([]catalog.Restaurant(nil), restaurants...)

	if len(prefs.Cities) > 0 {
		results = FilterByCities(results, prefs.Cities)
	}
	if prefs.MaxPriceBucket != nil {
		results = FilterByPrice(results, *prefs.MaxPriceBucket)
	}
	if prefs.MinRating != nil {
		results = FilterByRating(results, *prefs.MinRating)
	}
	if len(prefs.Cuisines) > 0 {
		results = FilterByCuisines(results, prefs.Cuisines)
	}

	return results
}
