// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import (
	"strconv"
	"strings"
)

// Sentinel strings that Zomato-style exports use for "no value" in numeric
// columns. Matched case-insensitively after trimming.
var missingMarkers = map[string]struct{}{
	"":     {},
	"NEW":  {},
	"NAN":  {},
	"NULL": {},
	"NA":   {},
	"N/A":  {},
	"-":    {},
}

// ParseFloat parses a rating-like field. It tolerates the "4.3/5" form and
// the dataset's missing-value markers. Returns nil when no numeric value can
// be recovered.
func ParseFloat(raw string) *float64 {
	text := strings.TrimSpace(raw)
	if _, missing := missingMarkers[strings.ToUpper(text)]; missing {
		return nil
	}

	// Ratings sometimes come as "4.3/5"; keep the numerator.
	if idx := strings.Index(text, "/"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseInt parses a count-like field, stripping comma grouping ("1,234").
// Returns nil when the value is missing or unparseable.
func ParseInt(raw string) *int {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if _, missing := missingMarkers[strings.ToUpper(text)]; missing {
		return nil
	}

	// Some exports store integers as floats ("350.0").
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	v := int(f)
	return &v
}

// SplitCuisines splits a comma-separated cuisine column into trimmed,
// non-empty entries, preserving order.
func SplitCuisines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DerivePriceRange maps a record to a coarse 1-4 price bucket.
//
// An explicit price_range column wins. Otherwise the approximate cost for
// two is bucketed: <=500 -> 1, <=1000 -> 2, <=2000 -> 3, above -> 4.
func DerivePriceRange(priceRange, approxCost string) *int {
	if v := ParseInt(priceRange); v != nil {
		return v
	}

	cost := ParseInt(approxCost)
	if cost == nil {
		return nil
	}

	bucket := 4
	switch {
	case *cost <= 500:
		bucket = 1
	case *cost <= 1000:
		bucket = 2
	case *cost <= 2000:
		bucket = 3
	}
	return &bucket
}

// RawRecord is one row of a catalogue export keyed by column name. Column
// aliases differ between export versions, so NormalizeRecord probes several
// known names per field.
type RawRecord map[string]string

func (rec RawRecord) first(keys ...string) string {
	for _, k := range keys {
		if v, ok := rec[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// NormalizeRecord converts a raw export row into a Restaurant. fallbackID is
// used when the row carries no usable identifier (typically the row index).
//
// Deterministic and free of I/O; exercised directly by tests with fixture
// records.
func NormalizeRecord(rec RawRecord, fallbackID int) Restaurant {
	id := rec.first("id", "restaurant_id", "url")
	if id == "" {
		id = strconv.Itoa(fallbackID)
	}

	name := strings.TrimSpace(rec.first("name", "restaurant_name"))
	if name == "" {
		name = "Unknown Restaurant"
	}

	return Restaurant{
		ID:         id,
		Name:       name,
		City:       strings.TrimSpace(rec.first("city", "listed_in(city)", "city_name")),
		Area:       strings.TrimSpace(rec.first("location", "address", "locality")),
		Cuisines:   SplitCuisines(rec.first("cuisines", "cuisine", "tags")),
		PriceRange: DerivePriceRange(rec.first("price_range"), rec.first("approx_cost(for two people)", "approx_cost_for_two_people", "approx_cost")),
		Rating:     ParseFloat(rec.first("rating", "rate", "aggregate_rating")),
		Votes:      ParseInt(rec.first("votes", "rating_count", "review_count")),
	}
}
