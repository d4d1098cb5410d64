// Package bluesky_client talks to the public Bluesky XRPC API. No
// authentication is needed for public author feeds.
package bluesky_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"pai/utils/logger"
)

const DefaultBaseURL = "https://public.api.bsky.app"

// StatusError reports a non-200 XRPC response so callers can tell a server
// rejection apart from an undecodable body.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bluesky api returned status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the XRPC endpoint at baseURL. An empty
// baseURL uses the public AppView.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// GetAuthorFeed fetches the most recent posts authored by actor, newest
// first. limit is capped by the API at 100.
func (c *Client) GetAuthorFeed(ctx context.Context, actor string, limit int) (*AuthorFeedResponse, error) {
	endpoint := fmt.Sprintf("%s/xrpc/app.bsky.feed.getAuthorFeed?actor=%s&limit=%s",
		c.baseURL, url.QueryEscape(actor), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create author feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "pai/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch author feed for %s: %w", actor, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.SafeWarn("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read author feed response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("author feed request for %s: %w", actor, &StatusError{StatusCode: resp.StatusCode})
	}

	var feed AuthorFeedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode author feed response: %w", err)
	}

	return &feed, nil
}
