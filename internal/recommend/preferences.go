// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"fmt"
	"strings"
)

// Result count bounds. Out-of-range values are clamped, not rejected.
const (
	MinTopN = 1
	MaxTopN = 50

	// DefaultTopN is used when the caller does not specify a result count.
	DefaultTopN = 10

	// DefaultModelName is the re-ranking model used when none is requested.
	DefaultModelName = "gemini-2.5-flash"
)

// ValidationError reports a preference field that failed validation. It
// carries the offending field name and value so the API layer can produce a
// precise user-facing response.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// RawPreferences is the unvalidated input to NewPreferences. Cities and
// Cuisines accept both a single comma-delimited string and a list of
// strings; numeric fields use pointers so "absent" means "no preference".
type RawPreferences struct {
	Cities         []string
	Cuisines       []string
	MinRating      *float64
	MaxPriceBucket *int
	TopN           int
	ModelName      string
}

// UserPreferences is the canonical, validated view of a recommendation
// request. Construct it with NewPreferences; it is immutable afterwards.
type UserPreferences struct {
	// Cities and Cuisines hold normalized (trimmed, lower-cased, non-empty)
	// terms. An empty slice means "no constraint", never "match nothing".
	Cities   []string
	Cuisines []string

	// MinRating is the inclusive minimum rating (0-5), nil when unset.
	MinRating *float64

	// MaxPriceBucket is the inclusive maximum price bucket (1-4), nil when
	// unset.
	MaxPriceBucket *int

	// TopN is the result count bound, always within [MinTopN, MaxTopN].
	TopN int

	// ModelName identifies the re-ranking model.
	ModelName string
}

// NewPreferences normalizes and validates raw user input.
//
// Normalization: city and cuisine terms are comma-split, trimmed,
// lower-cased, and empty entries dropped; TopN is clamped into [1, 50]
// (silent correction, not an error); a zero TopN takes the default.
// Normalization is idempotent.
//
// Validation: MinRating must lie in [0, 5] and MaxPriceBucket in {1,2,3,4};
// violations return a *ValidationError naming the field. This is the only
// error condition. The function is pure.
func NewPreferences(raw RawPreferences) (*UserPreferences, error) {
	if raw.MinRating != nil && (*raw.MinRating < 0.0 || *raw.MinRating > 5.0) {
		return nil, &ValidationError{
			Field:  "min_rating",
			Value:  *raw.MinRating,
			Reason: "must be between 0.0 and 5.0",
		}
	}
	if raw.MaxPriceBucket != nil && (*raw.MaxPriceBucket < 1 || *raw.MaxPriceBucket > 4) {
		return nil, &ValidationError{
			Field:  "max_price_bucket",
			Value:  *raw.MaxPriceBucket,
			Reason: "must be between 1 and 4",
		}
	}

	topN := raw.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	if topN < MinTopN {
		topN = MinTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}

	model := strings.TrimSpace(raw.ModelName)
	if model == "" {
		model = DefaultModelName
	}

	return &UserPreferences{
		Cities:         normalizeTerms(raw.Cities),
		Cuisines:       normalizeTerms(raw.Cuisines),
		MinRating:      raw.MinRating,
		MaxPriceBucket: raw.MaxPriceBucket,
		TopN:           topN,
		ModelName:      model,
	}, nil
}

// normalizeTerms comma-splits each value, trims, lower-cases, and drops
// empties. Applying it to its own output yields the same result.
func normalizeTerms(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// termSet converts a normalized term slice into a lookup set.
func termSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
