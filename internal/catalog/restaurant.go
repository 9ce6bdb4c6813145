// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import "strings"

// Restaurant is a single catalogue record. Identity fields are set once by
// the loader and never written again; the pipeline treats a Restaurant as
// read-only reference data.
//
// Optional numeric fields use pointers so that "absent" is distinguishable
// from a legitimate zero (a restaurant with rating 0.0 is not the same as an
// unrated one).
type Restaurant struct {
	// ID uniquely identifies the restaurant within a catalogue load.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// City is the city name, or empty when unknown.
	City string `json:"city,omitempty"`

	// Area is the neighbourhood or locality, or empty when unknown.
	Area string `json:"area,omitempty"`

	// Cuisines is the ordered list of cuisine names. May be empty.
	Cuisines []string `json:"cuisines"`

	// PriceRange is the coarse price bucket (1-4), nil when unknown.
	PriceRange *int `json:"price_range,omitempty"`

	// Rating is the aggregate rating (0-5), nil when unrated.
	Rating *float64 `json:"rating,omitempty"`

	// Votes is the number of ratings behind Rating, nil when unknown.
	Votes *int `json:"votes,omitempty"`
}

// HasCuisine reports whether the restaurant serves any cuisine in the given
// set. The set is expected to hold normalized (trimmed, lower-cased) names.
func (r *Restaurant) HasCuisine(normalized map[string]struct{}) bool {
	for _, c := range r.Cuisines {
		if _, ok := normalized[strings.ToLower(strings.TrimSpace(c))]; ok {
			return true
		}
	}
	return false
}

// NormalizedCity returns the city trimmed and lower-cased for set lookups.
func (r *Restaurant) NormalizedCity() string {
	return strings.ToLower(strings.TrimSpace(r.City))
}

// dedupeKey is the composite identity used by the loader to drop duplicate
// records: (name, city, area), all lower-cased.
func (r *Restaurant) dedupeKey() string {
	return strings.ToLower(r.Name) + "\x00" +
		strings.ToLower(r.City) + "\x00" +
		strings.ToLower(r.Area)
}
