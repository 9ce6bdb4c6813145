// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrAlreadyInitialized indicates Initialize was called on a repository that
// already holds a catalogue.
var ErrAlreadyInitialized = errors.New("catalogue repository already initialized")

// ErrNotInitialized indicates the repository was read before Initialize.
var ErrNotInitialized = errors.New("catalogue repository not initialized")

// Repository is the process-wide, read-only catalogue.
//
// It is explicitly initialized exactly once (rather than memoized on first
// use) so that tests can substitute a fixture catalogue without triggering a
// real load. After Initialize succeeds the slice is never mutated, so reads
// need no locking.
type Repository struct {
	mu          sync.Mutex
	initialized bool

	restaurants []Restaurant
}

// NewRepository returns an empty, uninitialized repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Initialize installs the catalogue. It may be called at most once; a second
// call returns ErrAlreadyInitialized. The slice is copied so the caller
// cannot alias the repository's backing storage.
func (repo *Repository) Initialize(restaurants []Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.initialized {
		return ErrAlreadyInitialized
	}

	repo.restaurants = make([]Restaurant, len(restaurants))
	copy(repo.restaurants, restaurants)
	repo.initialized = true
	return nil
}

// All returns the full catalogue in load order. The returned slice is shared
// and must be treated as read-only; the pipeline never mutates it.
func (repo *Repository) All() ([]Restaurant, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if !repo.initialized {
		return nil, ErrNotInitialized
	}
	return repo.restaurants, nil
}

// Len returns the catalogue size, or 0 when uninitialized.
func (repo *Repository) Len() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.restaurants)
}

// FilterMetadata describes the filterable dimensions of the catalogue,
// backing the metadata API endpoint.
type FilterMetadata struct {
	Cities   []string `json:"cities"`
	Cuisines []string `json:"cuisines"`
}

// Metadata returns the sorted distinct cities and cuisines present in the
// catalogue. Values are returned in their original casing; duplicates that
// differ only by case or surrounding whitespace are collapsed.
func (repo *Repository) Metadata() (*FilterMetadata, error) {
	restaurants, err := repo.All()
	if err != nil {
		return nil, err
	}

	cities := make(map[string]string)
	cuisines := make(map[string]string)
	for i := range restaurants {
		r := &restaurants[i]
		if r.City != "" {
			cities[r.NormalizedCity()] = r.City
		}
		for _, c := range r.Cuisines {
			key := strings.ToLower(strings.TrimSpace(c))
			if key != "" {
				cuisines[key] = strings.TrimSpace(c)
			}
		}
	}

	return &FilterMetadata{
		Cities:   sortedValues(cities),
		Cuisines: sortedValues(cuisines),
	}, nil
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
