// internal/scrapebadger/client.go
// Package scrapebadger is the HTTP client for the ScrapeBadger data API.
// It owns authentication, cursor pagination, and error categorization; the
// MCP layer above it never talks to the network directly.
package scrapebadger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.scrapebadger.com"
	// defaultTimeout bounds each API request when the config omits a value.
	defaultTimeout = 30 * time.Second
	// pageSize is the per-request item count for paginated endpoints.
	pageSize = 50
)

// Config carries the settings needed to construct a Client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the ScrapeBadger API. Safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client. The API key must be non-empty.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("scrapebadger: API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// apiErrorBody is the error payload shape returned by the API.
type apiErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// getJSON issues an authenticated GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Category: CategoryAPI, Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Category: CategoryNetwork, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Category: CategoryNetwork, Message: fmt.Sprintf("failed to read response: %v", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Category: CategoryAPI, Message: fmt.Sprintf("failed to parse response: %v", err)}
	}
	return nil
}

// errorFromResponse builds a categorized error from a non-200 response,
// preferring the API's own message when one is present.
func (c *Client) errorFromResponse(resp *http.Response) *APIError {
	message := fmt.Sprintf("API returned status %s", resp.Status)
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var eb apiErrorBody
		if json.Unmarshal(body, &eb) == nil {
			if eb.Error != "" {
				message = eb.Error
			} else if eb.Message != "" {
				message = eb.Message
			}
		}
	}
	return &APIError{
		Category:   categorize(resp.StatusCode),
		Message:    message,
		StatusCode: resp.StatusCode,
	}
}

// page is the wire shape of one page from a paginated endpoint.
type page[T any] struct {
	Data       []T    `json:"data"`
	NextCursor string `json:"next_cursor"`
}

// collectPages follows next_cursor links and stops as soon as maxItems records
// are collected. A maxItems of zero or less means no bound.
func collectPages[T any](ctx context.Context, c *Client, path string, query url.Values, maxItems int) ([]T, error) {
	var out []T
	cursor := ""
	for {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		q.Set("limit", strconv.Itoa(pageSize))
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		var p page[T]
		if err := c.getJSON(ctx, path, q, &p); err != nil {
			return nil, err
		}
		for _, item := range p.Data {
			out = append(out, item)
			if maxItems > 0 && len(out) >= maxItems {
				return out, nil
			}
		}
		if p.NextCursor == "" || len(p.Data) == 0 {
			return out, nil
		}
		cursor = p.NextCursor
	}
}

// listResponse is the wire shape of non-paginated collection endpoints.
type listResponse[T any] struct {
	Data []T `json:"data"`
}
