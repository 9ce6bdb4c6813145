// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Gemini REST endpoint root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// temperature keeps the model's reasoning factual and focused.
const temperature = 0.3

// maxErrorBodySize limits how much of an error response body is read for
// diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024

// Config holds client construction parameters.
type Config struct {
	// APIKey authenticates against the API. Required.
	APIKey string

	// BaseURL overrides the endpoint root; tests point it at a local server.
	// Default: DefaultBaseURL
	BaseURL string

	// Timeout bounds a single HTTP attempt.
	// Default: 30s
	Timeout time.Duration

	// RequestsPerMinute bounds the outbound request rate. 0 disables the
	// limiter.
	RequestsPerMinute int
}

// Client calls the generateContent endpoint. It implements
// rerank.Capability and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client

	breaker *gobreaker.CircuitBreaker[string]
	limiter *rate.Limiter

	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a generative-language client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:    "llm",
			Timeout: 60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
		limiter:        limiter,
		maxRetries:     3,
		retryBaseDelay: 1 * time.Second,
	}
}

// Wire shapes for the generateContent request/response.

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends a system instruction and user prompt to the model
// and returns the raw response text. It satisfies rerank.Capability.
func (c *Client) GenerateContent(ctx context.Context, model, system, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	return c.breaker.Execute(func() (string, error) {
		return c.generate(ctx, model, system, prompt)
	})
}

func (c *Client) generate(ctx context.Context, model, system, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
		},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	resp, err := c.doRequestWithRateLimit(ctx, reqURL, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // response already consumed

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return "", fmt.Errorf("generateContent failed with status %d: %s", resp.StatusCode, string(body))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := extractText(&decoded)
	if text == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}

// doRequestWithRateLimit performs a POST with automatic HTTP 429 handling:
// exponential backoff (1s, 2s, 4s) honoring Retry-After, up to maxRetries.
// The context is used for cancellation during backoff waits.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		// Only the delta-seconds form of Retry-After is honored; the
		// HTTP-date form falls through to exponential backoff.
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = d
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var out string
	for _, p := range resp.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// readBodyForError reads at most maxErrorBodySize bytes of a response body
// for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}
