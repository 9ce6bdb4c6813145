// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package catalog provides the restaurant catalogue: the immutable reference
// data the recommendation pipeline operates on.
//
// # Components
//
//   - Restaurant: the catalogue record (identity fields only; per-request
//     computed scores live on recommend.Recommendation, keeping this type
//     immutable and safe to share across concurrent requests)
//   - Record normalization: tolerant parsing of Zomato-style export fields
//     (ratings like "4.3/5", vote counts with comma grouping, price bucket
//     derivation from approximate cost)
//   - Loader: reads a CSV or JSON-lines export into normalized Restaurant
//     values with composite-key deduplication
//   - Repository: process-wide, explicitly initialized, read-only catalogue
//     with metadata queries (distinct cities and cuisines)
//
// # Thread Safety
//
// The repository is initialized exactly once and never mutated afterwards,
// so reads require no locking. All loader and normalization functions are
// pure and safe for concurrent use.
package catalog
