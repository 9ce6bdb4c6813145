// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package rerank

import (
	"fmt"
	"strings"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

// systemInstruction is the model's role and output contract. The %d verb is
// the maximum number of recommendations (the request's top-N).
const systemInstruction = `You are an expert local food critic and restaurant recommender.
Your task is to take a user's search criteria and a list of statistically filtered candidate restaurants, and return a tailored shortlist with explanations.

You must:
1. Re-rank the provided candidates based on how well they exemplify the requested criteria (city, cuisines, rating, price).
2. Only return restaurants from the provided candidate list.
3. Provide a concise, engaging explanation (1-3 sentences) for EACH chosen restaurant justifying why it's a great choice for their specific search criteria.
4. Assign a context match score (0.0 to 1.0) based on how perfectly it fits their request.
5. Return AT MOST %d recommendations.

Respond ONLY with valid JSON of the form {"recommendations": [{"restaurant_id": "...", "explanation": "...", "score": 0.0}]}. Do not include markdown formatting or extra text outside the JSON.`

// buildSystemInstruction formats the system instruction for topN results.
func buildSystemInstruction(topN int) string {
	return fmt.Sprintf(systemInstruction, topN)
}

// buildCriteriaSummary renders one line per non-empty preference dimension.
// With no dimensions set it asks for a general ranking.
func buildCriteriaSummary(prefs *recommend.UserPreferences) string {
	var parts []string
	if len(prefs.Cities) > 0 {
		parts = append(parts, "Cities: "+strings.Join(prefs.Cities, ", "))
	}
	if len(prefs.Cuisines) > 0 {
		parts = append(parts, "Cuisines: "+strings.Join(prefs.Cuisines, ", "))
	}
	if prefs.MinRating != nil {
		parts = append(parts, fmt.Sprintf("Minimum Rating: %g+", *prefs.MinRating))
	}
	if prefs.MaxPriceBucket != nil {
		parts = append(parts, fmt.Sprintf("Max Price Bucket: %d/4", *prefs.MaxPriceBucket))
	}

	if len(parts) == 0 {
		return "General recommendation based on top scores."
	}
	return strings.Join(parts, "\n")
}

// buildPrompt combines the criteria summary and candidate JSON into the user
// message.
func buildPrompt(criteriaSummary, candidatesJSON string) string {
	return fmt.Sprintf(`USER SEARCH CRITERIA:
%s

CANDIDATE RESTAURANTS (JSON array):
%s`, criteriaSummary, candidatesJSON)
}
