// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package api

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

// StringList accepts either a JSON string or a JSON array of strings.
// Clients commonly send "italian, chinese" as a single comma-joined value;
// preference normalization splits it either way.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*s = many
	return nil
}

// RecommendationsRequest is the POST /api/v1/recommendations body. All
// fields are optional; an empty body yields a general top-N recommendation.
type RecommendationsRequest struct {
	Cities         StringList `json:"cities" validate:"omitempty,max=50,dive,max=200"`
	Cuisines       StringList `json:"cuisines" validate:"omitempty,max=50,dive,max=200"`
	MinRating      *float64   `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
	MaxPriceBucket *int       `json:"max_price_bucket" validate:"omitempty,gte=1,lte=4"`
	TopN           int        `json:"top_n" validate:"gte=0,lte=50"`
	Model          string     `json:"model" validate:"omitempty,max=100"`
}

// toRaw converts the wire request into pipeline preferences input.
func (req *RecommendationsRequest) toRaw() recommend.RawPreferences {
	return recommend.RawPreferences{
		Cities:         req.Cities,
		Cuisines:       req.Cuisines,
		MinRating:      req.MinRating,
		MaxPriceBucket: req.MaxPriceBucket,
		TopN:           req.TopN,
		ModelName:      req.Model,
	}
}

// CriteriaSummary echoes the normalized preferences back to the client.
type CriteriaSummary struct {
	Cities         []string `json:"cities,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
	MinRating      *float64 `json:"min_rating,omitempty"`
	MaxPriceBucket *int     `json:"max_price_bucket,omitempty"`
	TopN           int      `json:"top_n"`
	Model          string   `json:"model"`
}

// RecommendationsPayload is the data section of a recommendations response.
type RecommendationsPayload struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Count           int                        `json:"count"`
	LLMUsed         bool                       `json:"llm_used"`
	Criteria        CriteriaSummary            `json:"criteria"`
}

// CandidatesPayload is the data section of a candidates response.
type CandidatesPayload struct {
	Candidates []recommend.Recommendation `json:"candidates"`
	Count      int                        `json:"count"`
	Criteria   CriteriaSummary            `json:"criteria"`
}

// FilterMetadataPayload is the data section of the filter metadata response.
type FilterMetadataPayload struct {
	Cities          []string `json:"cities"`
	Cuisines        []string `json:"cuisines"`
	AvailableModels []string `json:"available_models"`
	CatalogueSize   int      `json:"catalogue_size"`
}

func summarize(prefs *recommend.UserPreferences) CriteriaSummary {
	return CriteriaSummary{
		Cities:         prefs.Cities,
		Cuisines:       prefs.Cuisines,
		MinRating:      prefs.MinRating,
		MaxPriceBucket: prefs.MaxPriceBucket,
		TopN:           prefs.TopN,
		Model:          prefs.ModelName,
	}
}
