// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/logging"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/validation"
)

// maxRequestBodySize caps POST bodies. Preference payloads are tiny; anything
// bigger is abuse.
const maxRequestBodySize = 1 << 20 // 1MB

// Handler serves the recommendation endpoints.
type Handler struct {
	repo     *catalog.Repository
	pipeline *recommend.Pipeline

	// reranker is nil when no LLM API key is configured; the pipeline then
	// returns the deterministic ranking.
	reranker recommend.Reranker

	// models lists the model names clients may request.
	models []string

	logger zerolog.Logger
}

// NewHandler wires the handler with its dependencies.
func NewHandler(repo *catalog.Repository, pipeline *recommend.Pipeline, reranker recommend.Reranker, models []string) *Handler {
	return &Handler{
		repo:     repo,
		pipeline: pipeline,
		reranker: reranker,
		models:   models,
		logger:   logging.Component("api"),
	}
}

// Recommendations handles POST /api/v1/recommendations. It runs the full
// pipeline: deterministic filter and rank, then optional LLM re-ranking with
// silent fallback to the deterministic order.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, http.StatusBadRequest, "INVALID_JSON",
			"request body must be valid JSON", nil, err)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	prefs, err := recommend.NewPreferences(req.toRaw())
	if err != nil {
		respondValidationError(w, r, err)
		return
	}

	restaurants, err := h.repo.All()
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "CATALOGUE_UNAVAILABLE",
			"restaurant catalogue is not loaded", nil, err)
		return
	}

	recs := h.pipeline.Run(r.Context(), restaurants, prefs, h.reranker)

	respondData(w, r, http.StatusOK, &RecommendationsPayload{
		Recommendations: recs,
		Count:           len(recs),
		LLMUsed:         llmUsed(recs),
		Criteria:        summarize(prefs),
	})
}

// Candidates handles GET /api/v1/candidates: the deterministic shortlist
// with composite scores, never involving the LLM. Filters arrive as query
// parameters (city, cuisine, min_rating, max_price_bucket, top_n).
func (h *Handler) Candidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := recommend.RawPreferences{
		Cities:   parseCommaSeparated(q.Get("city")),
		Cuisines: parseCommaSeparated(q.Get("cuisine")),
		TopN:     parseIntParam(q.Get("top_n"), 0),
	}

	if v := q.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER",
				"min_rating must be a number", map[string]interface{}{"value": v}, err)
			return
		}
		raw.MinRating = &f
	}

	if v := q.Get("max_price_bucket"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER",
				"max_price_bucket must be an integer", map[string]interface{}{"value": v}, err)
			return
		}
		raw.MaxPriceBucket = &n
	}

	prefs, err := recommend.NewPreferences(raw)
	if err != nil {
		respondValidationError(w, r, err)
		return
	}

	restaurants, err := h.repo.All()
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "CATALOGUE_UNAVAILABLE",
			"restaurant catalogue is not loaded", nil, err)
		return
	}

	// No reranker: deterministic ranking only.
	recs := h.pipeline.Run(r.Context(), restaurants, prefs, nil)

	respondData(w, r, http.StatusOK, &CandidatesPayload{
		Candidates: recs,
		Count:      len(recs),
		Criteria:   summarize(prefs),
	})
}

// FilterMetadata handles GET /api/v1/metadata/filters: distinct cities and
// cuisines from the catalogue plus the configured model names, for building
// client-side filter dropdowns.
func (h *Handler) FilterMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.repo.Metadata()
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "CATALOGUE_UNAVAILABLE",
			"restaurant catalogue is not loaded", nil, err)
		return
	}

	respondData(w, r, http.StatusOK, &FilterMetadataPayload{
		Cities:          meta.Cities,
		Cuisines:        meta.Cuisines,
		AvailableModels: h.models,
		CatalogueSize:   h.repo.Len(),
	})
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Ready means the catalogue
// finished its one-time load.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.All(); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY",
			"restaurant catalogue is not loaded", nil, nil)
		return
	}

	respondData(w, r, http.StatusOK, map[string]interface{}{
		"status":         "ready",
		"catalogue_size": h.repo.Len(),
		"llm_enabled":    h.reranker != nil,
	})
}

// respondValidationError maps preference and struct validation failures to a
// 422 with field-level details.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	details := map[string]interface{}{}

	var verr *recommend.ValidationError
	var verrs validation.Errors
	switch {
	case errors.As(err, &verr):
		details["field"] = verr.Field
		details["value"] = verr.Value
	case errors.As(err, &verrs):
		fields := make([]map[string]interface{}, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, map[string]interface{}{
				"field":   fe.Field,
				"value":   fe.Value,
				"message": fe.Message,
			})
		}
		details["fields"] = fields
	}

	respondError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
		err.Error(), details, nil)
}

// llmUsed reports whether any recommendation carries an LLM annotation.
func llmUsed(recs []recommend.Recommendation) bool {
	for i := range recs {
		if recs[i].LLMScore != nil {
			return true
		}
	}
	return false
}

// parseIntParam extracts an integer with a default for empty or bad input.
func parseIntParam(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// parseCommaSeparated splits a query value into trimmed non-empty parts.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
