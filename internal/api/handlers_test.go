// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func fixtureCatalogue() []catalog.Restaurant {
	return []catalog.Restaurant{
		{ID: "r1", Name: "Truffles", City: "Bangalore", Cuisines: []string{"american", "burger"}, PriceRange: intPtr(2), Rating: floatPtr(4.6), Votes: intPtr(9000)},
		{ID: "r2", Name: "Empire", City: "Bangalore", Cuisines: []string{"north indian"}, PriceRange: intPtr(1), Rating: floatPtr(4.2), Votes: intPtr(4000)},
		{ID: "r3", Name: "Olive Bar", City: "Mumbai", Cuisines: []string{"italian"}, PriceRange: intPtr(4), Rating: floatPtr(4.4), Votes: intPtr(1800)},
	}
}

// scriptedReranker returns fixed items or an error.
type scriptedReranker struct {
	items []recommend.RerankedItem
	err   error
	calls int
}

func (s *scriptedReranker) Rerank(_ context.Context, _ []catalog.Restaurant, _ *recommend.UserPreferences) ([]recommend.RerankedItem, error) {
	s.calls++
	return s.items, s.err
}

func newTestServer(t *testing.T, reranker recommend.Reranker) *httptest.Server {
	t.Helper()

	repo := catalog.NewRepository()
	if err := repo.Initialize(fixtureCatalogue()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	pipeline := recommend.NewPipeline(zerolog.Nop())
	handler := NewHandler(repo, pipeline, reranker, []string{"gemini-2.5-flash"})
	srv := httptest.NewServer(NewRouter(handler, nil).Setup())
	t.Cleanup(srv.Close)
	return srv
}

// testEnvelope mirrors APIResponse with a raw data section so tests can
// decode the payload into a concrete type.
type testEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *APIError       `json:"error"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, data interface{}) *testEnvelope {
	t.Helper()
	defer resp.Body.Close()

	env := &testEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if data != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
	}
	return env
}

func TestRecommendationsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("happy path deterministic", func(t *testing.T) {
		body := `{"cities": ["Bangalore"], "min_rating": 4.0, "top_n": 2}`
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload RecommendationsPayload
		env := decodeEnvelope(t, resp, &payload)

		if env.Status != "ok" {
			t.Errorf("envelope status = %q", env.Status)
		}
		if payload.Count != 2 || len(payload.Recommendations) != 2 {
			t.Fatalf("count = %d/%d, want 2", payload.Count, len(payload.Recommendations))
		}
		if payload.Recommendations[0].ID != "r1" {
			t.Errorf("top result = %s, want r1 (highest composite score)", payload.Recommendations[0].ID)
		}
		if payload.LLMUsed {
			t.Error("llm_used must be false without a reranker")
		}
		if payload.Criteria.TopN != 2 || payload.Criteria.Cities[0] != "bangalore" {
			t.Errorf("criteria echo = %+v", payload.Criteria)
		}
	})

	t.Run("empty body is a general request", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader(""))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload RecommendationsPayload
		decodeEnvelope(t, resp, &payload)
		if payload.Count != 3 {
			t.Errorf("count = %d, want full catalogue under default top-N", payload.Count)
		}
	})

	t.Run("string city accepted", func(t *testing.T) {
		body := `{"cities": "Bangalore, Mumbai"}`
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		var payload RecommendationsPayload
		decodeEnvelope(t, resp, &payload)
		if payload.Count != 3 {
			t.Errorf("count = %d, want 3", payload.Count)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader("{nope"))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		env := decodeEnvelope(t, resp, nil)
		if env.Error == nil || env.Error.Code != "INVALID_JSON" {
			t.Errorf("error = %+v", env.Error)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json",
			strings.NewReader(`{"min_rating": 6.0}`))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", resp.StatusCode)
		}
		env := decodeEnvelope(t, resp, nil)
		if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("error = %+v", env.Error)
		}
	})

	t.Run("bad price bucket reports field", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json",
			strings.NewReader(`{"max_price_bucket": 9}`))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", resp.StatusCode)
		}
	})
}

func TestRecommendationsEndpoint_WithReranker(t *testing.T) {
	t.Run("reranked result", func(t *testing.T) {
		reranker := &scriptedReranker{items: []recommend.RerankedItem{
			{RestaurantID: "r2", Explanation: "best biryani in town", Score: 0.97},
		}}
		srv := newTestServer(t, reranker)

		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json",
			strings.NewReader(`{"cities": "Bangalore"}`))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}

		var payload RecommendationsPayload
		decodeEnvelope(t, resp, &payload)

		if reranker.calls != 1 {
			t.Errorf("reranker calls = %d, want 1", reranker.calls)
		}
		if !payload.LLMUsed {
			t.Error("llm_used must be true for a re-ranked result")
		}
		if payload.Count != 1 || payload.Recommendations[0].ID != "r2" {
			t.Fatalf("payload = %+v", payload)
		}
		if payload.Recommendations[0].LLMExplanation != "best biryani in town" {
			t.Errorf("explanation = %q", payload.Recommendations[0].LLMExplanation)
		}
	})

	t.Run("reranker failure falls back silently", func(t *testing.T) {
		reranker := &scriptedReranker{err: context.DeadlineExceeded}
		srv := newTestServer(t, reranker)

		resp, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json",
			strings.NewReader(`{"cities": "Bangalore"}`))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200 despite reranker failure", resp.StatusCode)
		}

		var payload RecommendationsPayload
		decodeEnvelope(t, resp, &payload)
		if payload.LLMUsed {
			t.Error("fallback result must not claim LLM involvement")
		}
		if payload.Count != 2 {
			t.Errorf("count = %d, want deterministic result", payload.Count)
		}
	})
}

func TestCandidatesEndpoint(t *testing.T) {
	reranker := &scriptedReranker{items: []recommend.RerankedItem{{RestaurantID: "r1", Score: 0.9}}}
	srv := newTestServer(t, reranker)

	resp, err := http.Get(srv.URL + "/api/v1/candidates?city=Bangalore&min_rating=4.0&top_n=5")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload CandidatesPayload
	decodeEnvelope(t, resp, &payload)

	if payload.Count != 2 {
		t.Errorf("count = %d, want 2 Bangalore restaurants rated 4.0+", payload.Count)
	}
	for _, rec := range payload.Candidates {
		if rec.LLMScore != nil {
			t.Error("candidates endpoint must never carry LLM annotations")
		}
	}
	if reranker.calls != 0 {
		t.Error("candidates endpoint must not invoke the reranker")
	}

	t.Run("bad min_rating", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/candidates?min_rating=high")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("out of range min_rating", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/candidates?min_rating=7")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestFilterMetadataEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/metadata/filters")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload FilterMetadataPayload
	decodeEnvelope(t, resp, &payload)

	if len(payload.Cities) != 2 {
		t.Errorf("cities = %v, want 2", payload.Cities)
	}
	if len(payload.AvailableModels) != 1 || payload.AvailableModels[0] != "gemini-2.5-flash" {
		t.Errorf("models = %v", payload.AvailableModels)
	}
	if payload.CatalogueSize != 3 {
		t.Errorf("catalogue_size = %d, want 3", payload.CatalogueSize)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("live", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/health/live")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("ready", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/health/ready")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("not ready before catalogue load", func(t *testing.T) {
		handler := NewHandler(catalog.NewRepository(), recommend.NewPipeline(zerolog.Nop()), nil, nil)
		bare := httptest.NewServer(NewRouter(handler, nil).Setup())
		defer bare.Close()

		resp, err := http.Get(bare.URL + "/api/v1/health/ready")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", resp.StatusCode)
		}
	})
}

func TestRequestIDPropagation(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("generated when absent", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/health/live")
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		resp.Body.Close()
		if resp.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
	})

	t.Run("client id honored", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health/live", nil)
		req.Header.Set("X-Request-ID", "trace-me-123")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("GET error = %v", err)
		}
		resp.Body.Close()
		if got := resp.Header.Get("X-Request-ID"); got != "trace-me-123" {
			t.Errorf("X-Request-ID = %q, want client value echoed", got)
		}
	})
}

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"array", `["a", "b"]`, 2},
		{"single string", `"a, b"`, 1},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			if err := json.Unmarshal([]byte(tt.raw), &s); err != nil {
				t.Fatalf("Unmarshal(%q) error = %v", tt.raw, err)
			}
			if len(s) != tt.want {
				t.Errorf("len = %d, want %d", len(s), tt.want)
			}
		})
	}

	t.Run("wrong type rejected", func(t *testing.T) {
		var s StringList
		if err := json.Unmarshal([]byte(`{"x": 1}`), &s); err == nil {
			t.Error("expected error for object input")
		}
	})
}
