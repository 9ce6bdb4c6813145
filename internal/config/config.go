// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package config provides layered application configuration: built-in
// defaults, an optional YAML file, and environment variable overrides, in
// ascending precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalogue CatalogueConfig `koanf:"catalogue"`
	LLM       LLMConfig       `koanf:"llm"`
	Rerank    RerankConfig    `koanf:"rerank"`
	Cache     CacheConfig     `koanf:"cache"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogueConfig configures the one-time catalogue load.
type CatalogueConfig struct {
	// Path points at the CSV or JSON-lines export.
	Path string `koanf:"path"`

	// Limit caps the number of loaded restaurants; 0 means no limit.
	Limit int `koanf:"limit"`
}

// LLMConfig configures the generative-language client. Re-ranking is
// enabled only when APIKey is set.
type LLMConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	DefaultModel      string        `koanf:"default_model"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
}

// RerankConfig configures the re-ranking gateway.
type RerankConfig struct {
	// CacheTTL is how long successful re-rankings are memoized.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// Timeout bounds the re-ranking call inside the pipeline; on expiry the
	// deterministic ranking is returned.
	Timeout time.Duration `koanf:"timeout"`
}

// CacheConfig selects and configures the re-rank cache backend.
type CacheConfig struct {
	// Backend is one of "memory", "badger", "redis".
	Backend string `koanf:"backend"`

	// BadgerPath is the on-disk location for the badger backend.
	BadgerPath string `koanf:"badger_path"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
}

// APIConfig configures HTTP-facing behavior.
type APIConfig struct {
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks invariants that koanf unmarshaling cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Catalogue.Path == "" {
		return fmt.Errorf("catalogue.path is required")
	}

	switch c.Cache.Backend {
	case "memory":
	case "badger":
		if c.Cache.BadgerPath == "" {
			return fmt.Errorf("cache.badger_path is required for the badger backend")
		}
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be memory, badger, or redis, got %q", c.Cache.Backend)
	}

	if c.Rerank.CacheTTL < 0 {
		return fmt.Errorf("rerank.cache_ttl must not be negative")
	}
	if c.API.RateLimitReqs < 0 {
		return fmt.Errorf("api.rate_limit_reqs must not be negative")
	}
	return nil
}
