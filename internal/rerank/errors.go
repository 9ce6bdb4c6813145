// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package rerank

import "errors"

// ErrRerankFailed is the single error kind the gateway surfaces. Callers
// match it with errors.Is; the wrapped cause distinguishes failure modes for
// observability, not for different handling.
var ErrRerankFailed = errors.New("re-ranking failed")

// Causes wrapped under ErrRerankFailed.
var (
	// ErrEmptyResponse indicates the capability returned no text.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrMalformedResponse indicates the response text did not parse into
	// the expected recommendations shape.
	ErrMalformedResponse = errors.New("malformed model response")
)
