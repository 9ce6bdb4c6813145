// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package rerank

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

// envelope is the expected root shape of the model response. The pointer
// distinguishes a missing "recommendations" key (malformed) from a present
// but empty list (a valid zero-selection response).
type envelope struct {
	Recommendations *[]recommend.RerankedItem `json:"recommendations"`
}

// parseResponse parses the raw model text into recommendation items.
//
// Models occasionally wrap JSON in markdown fences despite instructions, so
// fences are stripped before decoding. A response that does not decode, is
// missing the recommendations key, or carries an out-of-range score is
// rejected as ErrMalformedResponse.
func parseResponse(raw string) ([]recommend.RerankedItem, error) {
	text := stripFences(strings.TrimSpace(raw))
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var env envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if env.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations key", ErrMalformedResponse)
	}

	items := *env.Recommendations
	for i := range items {
		if items[i].RestaurantID == "" {
			return nil, fmt.Errorf("%w: recommendation %d has no restaurant_id", ErrMalformedResponse, i)
		}
		if items[i].Score < 0.0 || items[i].Score > 1.0 {
			return nil, fmt.Errorf("%w: recommendation %d score %g outside [0,1]", ErrMalformedResponse, i, items[i].Score)
		}
	}
	return items, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		text = text[idx+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
