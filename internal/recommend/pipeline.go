// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/metrics"
)

// ShortlistSize bounds the number of ranked candidates offered to the
// re-ranker, keeping token usage and cost predictable.
const ShortlistSize = 15

// DefaultRerankTimeout bounds the worst-case latency of the re-ranking call;
// on expiry the pipeline falls back to the deterministic ranking exactly as
// on any other re-ranker failure.
const DefaultRerankTimeout = 30 * time.Second

// Pipeline orchestrates the end-to-end recommendation flow. It is immutable
// after construction and safe for concurrent use.
type Pipeline struct {
	logger        zerolog.Logger
	rerankTimeout time.Duration
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithRerankTimeout overrides the re-ranking call timeout.
func WithRerankTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.rerankTimeout = d
		}
	}
}

// NewPipeline creates a pipeline.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPipeline(logger zerolog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		logger:        logger.With().Str("component", "pipeline").Logger(),
		rerankTimeout: DefaultRerankTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the recommendation flow:
//
//  1. Apply hard filters to the catalogue.
//  2. Rank candidates by composite score (descending, stable).
//  3. Annotate the top max(TopN, ShortlistSize) candidates with their score.
//  4. If a reranker is supplied, offer it the top-ShortlistSize candidates.
//     A successful re-rank that selects at least one restaurant replaces the
//     deterministic order (selection, not merge), truncated to TopN.
//  5. Otherwise return the deterministic top TopN.
//
// Re-ranker failures are logged and absorbed; they never change the success
// of the overall call. The caller's restaurants slice is never mutated. An
// empty filtered set yields an empty, non-error result.
func (p *Pipeline) Run(ctx context.Context, restaurants []catalog.Restaurant, prefs *UserPreferences, reranker Reranker) []Recommendation {
	start := time.Now()

	candidates := ApplyAllFilters(restaurants, prefs)
	ranked := Rank(candidates, prefs)

	annotated := p.annotate(ranked, prefs)

	if reranker != nil && len(ranked) > 0 {
		if result, ok := p.tryRerank(ctx, annotated, prefs, reranker); ok {
			metrics.ObservePipeline(time.Since(start), len(candidates), true)
			return result
		}
	}

	if len(annotated) > prefs.TopN {
		annotated = annotated[:prefs.TopN]
	}
	metrics.ObservePipeline(time.Since(start), len(candidates), false)
	return annotated
}

// annotate wraps the leading ranked candidates into Recommendations carrying
// their composite score. The annotation window is max(TopN, ShortlistSize)
// so both the final result and the re-rank shortlist carry scores.
func (p *Pipeline) annotate(ranked []catalog.Restaurant, prefs *UserPreferences) []Recommendation {
	window := prefs.TopN
	if window < ShortlistSize {
		window = ShortlistSize
	}
	if window > len(ranked) {
		window = len(ranked)
	}

	out := make([]Recommendation, window)
	for i := 0; i < window; i++ {
		out[i] = Recommendation{
			Restaurant: ranked[i],
			Score:      roundScore(Score(&ranked[i], prefs)),
		}
	}
	return out
}

// tryRerank runs the re-ranking attempt. It returns (result, true) only when
// the reranker succeeded and selected at least one shortlist member;
// otherwise the attempt is discarded and the deterministic path proceeds.
func (p *Pipeline) tryRerank(ctx context.Context, annotated []Recommendation, prefs *UserPreferences, reranker Reranker) ([]Recommendation, bool) {
	shortlist := make([]catalog.Restaurant, 0, ShortlistSize)
	byID := make(map[string]*Recommendation, ShortlistSize)
	for i := range annotated {
		if i == ShortlistSize {
			break
		}
		shortlist = append(shortlist, annotated[i].Restaurant)
		byID[annotated[i].ID] = &annotated[i]
	}

	rctx, cancel := context.WithTimeout(ctx, p.rerankTimeout)
	defer cancel()

	items, err := reranker.Rerank(rctx, shortlist, prefs)
	if err != nil {
		metrics.RerankFallbacks.Inc()
		p.logger.Warn().
			Err(err).
			Int("shortlist_size", len(shortlist)).
			Msg("re-ranking failed, falling back to deterministic ranking")
		return nil, false
	}

	result := make([]Recommendation, 0, len(items))
	for _, item := range items {
		rec, ok := byID[item.RestaurantID]
		if !ok {
			// The gateway already drops unknown IDs; tolerate them here too
			// rather than trusting the collaborator.
			continue
		}
		enriched := *rec
		score := item.Score
		enriched.LLMScore = &score
		enriched.LLMExplanation = item.Explanation
		result = append(result, enriched)
	}

	if len(result) == 0 {
		metrics.RerankFallbacks.Inc()
		p.logger.Warn().
			Int("shortlist_size", len(shortlist)).
			Msg("re-ranking selected no shortlist members, falling back")
		return nil, false
	}

	if len(result) > prefs.TopN {
		result = result[:prefs.TopN]
	}
	return result, true
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
