// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package graph implements the Microsoft Graph API client used to read the
// signed-in user's calendar, online meetings, transcripts, and photos.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
)

// Ensure that Client implements CalendarAPI
var _ domain.CalendarAPI = (*Client)(nil)

const (
	// BaseURL is the base URL for Microsoft Graph v1.0
	BaseURL = "https://graph.microsoft.com/v1.0"
	// DefaultClientTimeout is the default HTTP client timeout for Graph requests
	DefaultClientTimeout = 30 * time.Second
)

// APIError is a non-2xx response from Graph. The upstream status code and
// body are preserved so callers can propagate them.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph API error (status %d): %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a Graph 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Config holds the configuration for the Graph client
type Config struct {
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Client is a Microsoft Graph API client. It holds no credentials; every
// call takes the caller's bearer token.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new Graph API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		config: config,
	}
}

// resolveURL accepts either a path relative to the base URL or an absolute
// URL (Graph continuation links are absolute).
func (c *Client) resolveURL(urlOrPath string) string {
	if strings.HasPrefix(urlOrPath, "https://") || strings.HasPrefix(urlOrPath, "http://") {
		return urlOrPath
	}
	return c.config.BaseURL + urlOrPath
}

// do performs an authenticated GET against Graph and returns the raw body.
// Graph date-times are requested in UTC via the Prefer header.
func (c *Client) do(ctx context.Context, token, urlOrPath, accept string) ([]byte, string, error) {
	url := c.resolveURL(urlOrPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "Graph API request failed",
			"url", url,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, "", fmt.Errorf("graph request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read graph response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "Graph API error response",
			"url", url,
			"status", resp.StatusCode,
			"duration", duration.String(),
			"body", string(body))
		return nil, "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	slog.DebugContext(ctx, "Graph API request completed",
		"url", url,
		"status", resp.StatusCode,
		"duration", duration.String())

	return body, resp.Header.Get("Content-Type"), nil
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, token, urlOrPath string, out any) error {
	body, _, err := c.do(ctx, token, urlOrPath, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode graph response: %w", err)
	}
	return nil
}

// GetText performs a GET with the given Accept header and returns the body
// as text.
func (c *Client) GetText(ctx context.Context, token, urlOrPath, accept string) (string, error) {
	body, _, err := c.do(ctx, token, urlOrPath, accept)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetBinary performs a GET and returns the raw body plus its content type.
func (c *Client) GetBinary(ctx context.Context, token, urlOrPath string) ([]byte, string, error) {
	return c.do(ctx, token, urlOrPath, "")
}
