// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package cache

import (
	"context"
	"sync"
	"time"
)

// cleanupInterval is how often the background sweep removes expired entries.
const cleanupInterval = 5 * time.Minute

// entry holds a value with its optional expiration.
type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiration
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is a thread-safe in-memory Store with TTL support. Data does
// not survive a process restart; use BadgerStore when durability matters.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry

	stop chan struct{}
	once sync.Once
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store and starts its cleanup loop.
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	go ms.cleanupLoop()
	return ms
}

// Get returns the value for key, or ErrNotFound when absent or expired.
func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	ms.mu.RLock()
	e, ok := ms.entries[key]
	ms.mu.RUnlock()

	if !ok || e.expired(time.Now()) {
		return nil, ErrNotFound
	}
	return e.value, nil
}

// Set stores value under key with the given TTL (<= 0 means no expiration).
func (ms *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	ms.mu.Lock()
	ms.entries[key] = e
	ms.mu.Unlock()
	return nil
}

// Close stops the cleanup loop. Safe to call multiple times.
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.stop) })
	return nil
}

// Len returns the number of stored entries, including not-yet-swept expired
// ones. Intended for tests and stats.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.entries)
}

func (ms *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case now := <-ticker.C:
			ms.mu.Lock()
			for k, e := range ms.entries {
				if e.expired(now) {
					delete(ms.entries, k)
				}
			}
			ms.mu.Unlock()
		}
	}
}
