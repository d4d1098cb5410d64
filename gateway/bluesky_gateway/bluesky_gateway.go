// Package bluesky_gateway normalizes a Bluesky author feed into items. Only
// posts the account authored itself count as activity; reposts and quote
// promotions carry a feed reason and are dropped.
package bluesky_gateway

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"pai/domain"
	"pai/driver/bluesky_client"
	appErrors "pai/utils/errors"
	"pai/utils/rate_limiter"
)

const (
	// feedPageSize is how many feed entries one sync pass requests.
	feedPageSize = 50
	// titleMaxRunes bounds the derived title; longer post texts are cut to
	// titleMaxRunes-3 runes plus an ellipsis marker.
	titleMaxRunes = 100
)

type BlueskyGateway struct {
	client  *bluesky_client.Client
	handle  string
	limiter *rate_limiter.HostRateLimiter
}

func NewBlueskyGateway(client *bluesky_client.Client, handle string, limiter *rate_limiter.HostRateLimiter) *BlueskyGateway {
	return &BlueskyGateway{client: client, handle: handle, limiter: limiter}
}

func (g *BlueskyGateway) Kind() domain.SourceKind {
	return domain.SourceKindBluesky
}

func (g *BlueskyGateway) SourceID() string {
	return g.handle
}

func (g *BlueskyGateway) FetchItems(ctx context.Context) ([]*domain.Item, error) {
	if g.limiter != nil {
		if err := g.limiter.WaitForHost(ctx, bluesky_client.DefaultBaseURL); err != nil {
			return nil, appErrors.RateLimitError("rate limit wait interrupted", err,
				appErrors.SourceContext(g.Kind().String(), g.handle))
		}
	}

	feed, err := g.client.GetAuthorFeed(ctx, g.handle, feedPageSize)
	if err != nil {
		return nil, g.classifyFetchError(err)
	}

	fetchedAt := time.Now().UTC()
	items := make([]*domain.Item, 0, len(feed.Feed))
	for _, entry := range feed.Feed {
		if entry.IsRepost() {
			continue
		}
		items = append(items, g.mapPost(entry.Post, fetchedAt))
	}

	return items, nil
}

// classifyFetchError keeps deadline expirations, transport and HTTP status
// failures, and undecodable response bodies distinguishable for callers.
func (g *BlueskyGateway) classifyFetchError(err error) error {
	errCtx := appErrors.SourceContext(g.Kind().String(), g.handle)
	var statusErr *bluesky_client.StatusError
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return appErrors.TimeoutError("author feed fetch timed out", err, errCtx)
	case errors.As(err, &statusErr), errors.As(err, &urlErr):
		return appErrors.ExternalAPIError("failed to fetch author feed", err, errCtx)
	default:
		return appErrors.ParseError("failed to decode author feed", err, errCtx)
	}
}

func (g *BlueskyGateway) mapPost(post bluesky_client.PostView, fetchedAt time.Time) *domain.Item {
	publishedAt := fetchedAt
	if !post.Record.CreatedAt.IsZero() {
		publishedAt = post.Record.CreatedAt.UTC()
	} else if !post.IndexedAt.IsZero() {
		publishedAt = post.IndexedAt.UTC()
	}

	return &domain.Item{
		ID:          post.URI,
		SourceKind:  domain.SourceKindBluesky,
		SourceID:    g.handle,
		Author:      g.handle,
		Title:       titleFromText(post.Record.Text),
		Summary:     post.Record.Text,
		URL:         postWebURL(g.handle, post.URI),
		PublishedAt: publishedAt,
	}
}

// postWebURL converts an AT URI like
// at://did:plc:abc/app.bsky.feed.post/3k44... into the public bsky.app
// permalink for the post.
func postWebURL(handle, atURI string) string {
	rkey := atURI
	if i := strings.LastIndex(atURI, "/"); i >= 0 {
		rkey = atURI[i+1:]
	}
	return "https://bsky.app/profile/" + handle + "/post/" + rkey
}

func titleFromText(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes-3]) + "..."
}
