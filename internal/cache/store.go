// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the key is absent or its entry has expired.
var ErrNotFound = errors.New("cache: key not found")

// Store is a keyed byte store with per-entry expiration. The re-ranking
// gateway uses it to memoize external capability responses; durability
// across restarts is a nice-to-have, not a correctness requirement, so an
// in-memory implementation satisfies the contract.
//
// Concurrent writers racing on the same key are resolved last-write-wins.
type Store interface {
	// Get returns the value for key, or ErrNotFound when absent/expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}
