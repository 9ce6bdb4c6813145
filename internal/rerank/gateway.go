// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package rerank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/cache"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/metrics"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
)

// MaxCandidates caps the shortlist sent to the capability regardless of the
// caller-supplied size.
const MaxCandidates = 15

// DefaultCacheTTL is how long successful re-rankings are memoized.
const DefaultCacheTTL = 24 * time.Hour

// Capability is the opaque text-in/text-out generative interface. Transport,
// auth, and retries are the implementation's concern; the gateway applies a
// single-attempt-then-fallback policy on top.
type Capability interface {
	GenerateContent(ctx context.Context, model, system, prompt string) (string, error)
}

// Gateway delegates a bounded shortlist to the capability behind a cache and
// validates the structured response. It implements recommend.Reranker.
type Gateway struct {
	capability Capability
	store      cache.Store
	logger     zerolog.Logger
	ttl        time.Duration
}

var _ recommend.Reranker = (*Gateway)(nil)

// Option customizes a Gateway.
type Option func(*Gateway)

// WithCacheTTL overrides the cache expiration for successful results.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// NewGateway creates a re-ranking gateway.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGateway(capability Capability, store cache.Store, logger zerolog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		capability: capability,
		store:      store,
		logger:     logger.With().Str("component", "rerank").Logger(),
		ttl:        DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// candidate is the compact shortlist entry serialized into the prompt: just
// the fields the model needs to judge fit, nothing else.
type candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisines    []string `json:"cuisines"`
	Rating      *float64 `json:"rating"`
	Votes       *int     `json:"votes"`
	PriceBucket *int     `json:"price_bucket"`
}

// Rerank sends the shortlist and criteria to the capability and returns at
// most prefs.TopN validated recommendations.
//
// The shortlist is capped at MaxCandidates. A cache hit returns the stored
// result without calling the capability. Recommendations referencing IDs
// outside the shortlist are dropped silently. Every failure mode is wrapped
// in ErrRerankFailed; an empty shortlist short-circuits to an empty result.
func (g *Gateway) Rerank(ctx context.Context, shortlist []catalog.Restaurant, prefs *recommend.UserPreferences) ([]recommend.RerankedItem, error) {
	if len(shortlist) == 0 {
		return nil, nil
	}
	if len(shortlist) > MaxCandidates {
		shortlist = shortlist[:MaxCandidates]
	}

	metrics.RerankRequests.Inc()
	key := cacheKey(shortlist, prefs)
	logger := g.logger.With().Str("cache_key", key).Int("shortlist_size", len(shortlist)).Logger()

	if cached, ok := g.cachedResult(ctx, key); ok {
		logger.Debug().Msg("returning cached re-ranking")
		return cached, nil
	}

	raw, err := g.invoke(ctx, shortlist, prefs, logger)
	if err != nil {
		return nil, err
	}

	items, err := parseResponse(raw)
	if err != nil {
		cause := "malformed"
		if errors.Is(err, ErrEmptyResponse) {
			cause = "empty_response"
		}
		metrics.RerankFailures.WithLabelValues(cause).Inc()
		logger.Warn().Err(err).Msg("re-rank response rejected")
		return nil, fmt.Errorf("%w: %w", ErrRerankFailed, err)
	}

	accepted := g.filterToShortlist(items, shortlist, logger)
	if len(accepted) > prefs.TopN {
		accepted = accepted[:prefs.TopN]
	}

	g.storeResult(ctx, key, accepted, logger)
	return accepted, nil
}

// invoke performs the single capability attempt on a cache miss.
func (g *Gateway) invoke(ctx context.Context, shortlist []catalog.Restaurant, prefs *recommend.UserPreferences, logger zerolog.Logger) (string, error) {
	metrics.RerankCacheMisses.Inc()

	candidates := make([]candidate, len(shortlist))
	for i := range shortlist {
		r := &shortlist[i]
		candidates[i] = candidate{
			ID:          r.ID,
			Name:        r.Name,
			Cuisines:    r.Cuisines,
			Rating:      r.Rating,
			Votes:       r.Votes,
			PriceBucket: r.PriceRange,
		}
	}

	candidatesJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal candidates: %w", ErrRerankFailed, err)
	}

	prompt := buildPrompt(buildCriteriaSummary(prefs), string(candidatesJSON))

	logger.Info().Str("model", prefs.ModelName).Msg("invoking re-ranking capability")
	raw, err := g.capability.GenerateContent(ctx, prefs.ModelName, buildSystemInstruction(prefs.TopN), prompt)
	if err != nil {
		metrics.RerankFailures.WithLabelValues("transport").Inc()
		logger.Warn().Err(err).Msg("capability invocation failed")
		return "", fmt.Errorf("%w: %w", ErrRerankFailed, err)
	}
	return raw, nil
}

// filterToShortlist drops recommendations whose restaurant_id is not in the
// shortlist. A partially-malformed but structurally valid response is
// tolerated, never fatal.
func (g *Gateway) filterToShortlist(items []recommend.RerankedItem, shortlist []catalog.Restaurant, logger zerolog.Logger) []recommend.RerankedItem {
	valid := make(map[string]struct{}, len(shortlist))
	for i := range shortlist {
		valid[shortlist[i].ID] = struct{}{}
	}

	accepted := make([]recommend.RerankedItem, 0, len(items))
	for _, item := range items {
		if _, ok := valid[item.RestaurantID]; !ok {
			metrics.RerankDroppedRecommendations.Inc()
			logger.Debug().Str("restaurant_id", item.RestaurantID).Msg("dropping recommendation outside shortlist")
			continue
		}
		accepted = append(accepted, item)
	}
	return accepted
}

func (g *Gateway) cachedResult(ctx context.Context, key string) ([]recommend.RerankedItem, bool) {
	data, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			g.logger.Warn().Err(err).Str("cache_key", key).Msg("cache read failed")
		}
		return nil, false
	}

	var items []recommend.RerankedItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on success.
		g.logger.Warn().Err(err).Str("cache_key", key).Msg("discarding corrupt cache entry")
		return nil, false
	}

	metrics.RerankCacheHits.Inc()
	return items, true
}

func (g *Gateway) storeResult(ctx context.Context, key string, items []recommend.RerankedItem, logger zerolog.Logger) {
	data, err := json.Marshal(items)
	if err != nil {
		logger.Warn().Err(err).Msg("marshal re-ranking for cache failed")
		return
	}
	if err := g.store.Set(ctx, key, data, g.ttl); err != nil {
		// Caching is best-effort; the result is still returned.
		logger.Warn().Err(err).Msg("cache write failed")
	}
}
