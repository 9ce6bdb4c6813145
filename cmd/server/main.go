// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package main is the entry point for the restaurant recommendation server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings via Koanf v2 (defaults, YAML file, env vars)
//  2. Logging: global zerolog logger per the logging config
//  3. Catalogue: one-time load of the restaurant dataset into memory
//  4. Cache: re-rank cache backend (memory, badger, or redis)
//  5. LLM client: Gemini API client, only when an API key is configured
//  6. HTTP server: Chi router with graceful shutdown on SIGINT/SIGTERM
//
// # Configuration
//
// Everything is configurable via config.yaml or environment variables:
//
//	export CATALOGUE_PATH=data/restaurants.csv
//	export GEMINI_API_KEY=your-api-key   # optional; omit for deterministic-only mode
//	export CACHE_BACKEND=memory          # or badger, redis
//	export HTTP_PORT=8080
//	./restaurant-recommender
//
// Without an API key the service still answers every endpoint; responses are
// the deterministic composite ranking with no LLM explanations.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/api"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/cache"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/catalog"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/config"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/llm"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/logging"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/metrics"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/recommend"
	"github.com/sukrutha13b/AI-restaurant-recommendation/internal/rerank"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalogue_path", cfg.Catalogue.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("llm_enabled", cfg.LLM.APIKey != "").
		Msg("Configuration loaded")

	// One-time catalogue load; the repository is immutable afterwards
	restaurants, err := catalog.LoadFile(cfg.Catalogue.Path, cfg.Catalogue.Limit)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalogue.Path).Msg("Failed to load catalogue")
	}

	repo := catalog.NewRepository()
	if err := repo.Initialize(restaurants); err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalogue repository")
	}
	metrics.CatalogueSize.Set(float64(repo.Len()))
	logging.Info().Int("restaurants", repo.Len()).Msg("Catalogue loaded")

	// Re-rank cache backend
	store, err := newCacheStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Cache.Backend).Msg("Failed to initialize cache")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	// LLM re-ranking is optional: without an API key the pipeline serves the
	// deterministic ranking only
	var reranker recommend.Reranker
	if cfg.LLM.APIKey != "" {
		client := llm.NewClient(llm.Config{
			APIKey:            cfg.LLM.APIKey,
			BaseURL:           cfg.LLM.BaseURL,
			Timeout:           cfg.LLM.Timeout,
			RequestsPerMinute: cfg.LLM.RequestsPerMinute,
		})
		reranker = rerank.NewGateway(client, store, logging.Component("rerank"),
			rerank.WithCacheTTL(cfg.Rerank.CacheTTL))
		logging.Info().Str("base_url", cfg.LLM.BaseURL).Msg("LLM re-ranking enabled")
	} else {
		logging.Info().Msg("No LLM API key configured - serving deterministic rankings only")
	}

	pipeline := recommend.NewPipeline(
		logging.Component("pipeline"),
		recommend.WithRerankTimeout(cfg.Rerank.Timeout),
	)

	handler := api.NewHandler(repo, pipeline, reranker, []string{cfg.LLM.DefaultModel})
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newCacheStore builds the configured cache backend.
func newCacheStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryStore(), nil
	case "badger":
		return cache.NewBadgerStore(cfg.Cache.BadgerPath)
	case "redis":
		return cache.NewRedisStore(context.Background(), cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
