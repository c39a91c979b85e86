// SPDX-License-Identifier: MIT

// Package suggest asks an external text-to-palette service for colors.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 64 << 10

// DefaultTimeout applies when a client is built with a zero timeout
const DefaultTimeout = 10 * time.Second

var (
	// ErrDisabled means no service URL is configured
	ErrDisabled = errors.New("suggestion service not configured")

	// ErrUnavailable marks transport failures, timeouts and non-2xx replies.
	// These errors also match palette.ErrPaletteGenerationFailed.
	ErrUnavailable = errors.New("suggestion service unavailable")

	ErrEmptyPrompt = errors.New("prompt is empty")
)

// Client talks to one suggestion endpoint
type Client struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient returns a client for url with the given per-call timeout
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		URL:        url,
		Timeout:    timeout,
		HTTPClient: &http.Client{},
	}
}

type suggestRequest struct {
	Prompt string `json:"prompt"`
}

// Suggest sends the prompt and returns the raw color entries the service
// answered with. Nothing is parsed as a color yet; pass the entries to the
// validator before use.
func (c *Client) Suggest(ctx context.Context, prompt string) ([]string, error) {
	if c.URL == "" {
		return nil, ErrDisabled
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(suggestRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", palette.ErrPaletteGenerationFailed, ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", palette.ErrPaletteGenerationFailed, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w: status %d", palette.ErrPaletteGenerationFailed, ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", palette.ErrPaletteGenerationFailed, ErrUnavailable, err)
	}

	if err := validateResponse(body); err != nil {
		return nil, fmt.Errorf("%w: %v", palette.ErrPaletteGenerationFailed, err)
	}

	return validator.DecodeEntries(body)
}

// SuggestPalette asks for colors and normalizes them into an anchor set
func (c *Client) SuggestPalette(ctx context.Context, prompt string) (*validator.Outcome, error) {
	entries, err := c.Suggest(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return validator.Normalize(entries)
}
