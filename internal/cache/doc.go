// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

/*
Package cache provides the keyed byte store backing the re-ranking gateway's
result cache.

Three interchangeable backends implement the Store interface:

  - MemoryStore: in-process map with TTL sweep; the default, zero setup
  - BadgerStore: embedded BadgerDB; entries survive process restarts
  - RedisStore: shared cache for multi-replica deployments

The backend is selected via configuration (cache.backend). All backends
honor per-entry TTLs and resolve concurrent writes to the same key as
last-write-wins, which is sufficient for a memoization cache: a lost race
only means one redundant upstream call.
*/
package cache
