// Package rss_source_gateway fetches RSS and Atom publications and
// normalizes their entries into items. Substack, Leaflet and BearBlog all
// speak RSS; they differ only in feed URL layout and source id derivation,
// so one gateway serves all three kinds.
package rss_source_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"pai/domain"
	appErrors "pai/utils/errors"
	"pai/utils/html_parser"
	"pai/utils/logger"
	"pai/utils/rate_limiter"
)

type RSSSourceGateway struct {
	kind     domain.SourceKind
	sourceID string
	feedURL  string
	parser   *gofeed.Parser
	limiter  *rate_limiter.HostRateLimiter
}

func newGateway(kind domain.SourceKind, sourceID, feedURL string, client *http.Client, limiter *rate_limiter.HostRateLimiter) *RSSSourceGateway {
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	}
	return &RSSSourceGateway{
		kind:     kind,
		sourceID: sourceID,
		feedURL:  feedURL,
		parser:   parser,
		limiter:  limiter,
	}
}

// NewSubstackGateway polls the newsletter feed at {base_url}/feed. The
// source id is the publication host, so items stay attributed to the same
// source even if the configured URL gains or loses a trailing slash.
func NewSubstackGateway(baseURL string, client *http.Client, limiter *rate_limiter.HostRateLimiter) *RSSSourceGateway {
	base := strings.TrimRight(baseURL, "/")
	return newGateway(domain.SourceKindSubstack, hostOf(base), base+"/feed", client, limiter)
}

// NewLeafletGateway polls the publication feed at {base_url}/rss under the
// operator-chosen source id.
func NewLeafletGateway(sourceID, baseURL string, client *http.Client, limiter *rate_limiter.HostRateLimiter) *RSSSourceGateway {
	base := strings.TrimRight(baseURL, "/")
	return newGateway(domain.SourceKindLeaflet, sourceID, base+"/rss", client, limiter)
}

// NewBearBlogGateway polls the blog feed at {base_url}/feed/ under the
// operator-chosen source id.
func NewBearBlogGateway(sourceID, baseURL string, client *http.Client, limiter *rate_limiter.HostRateLimiter) *RSSSourceGateway {
	base := strings.TrimRight(baseURL, "/")
	return newGateway(domain.SourceKindBearBlog, sourceID, base+"/feed/", client, limiter)
}

func (g *RSSSourceGateway) Kind() domain.SourceKind {
	return g.kind
}

func (g *RSSSourceGateway) SourceID() string {
	return g.sourceID
}

// FetchItems downloads the feed and maps every entry into an item. Entries
// without a usable id are skipped, never fatal.
func (g *RSSSourceGateway) FetchItems(ctx context.Context) ([]*domain.Item, error) {
	if g.limiter != nil {
		if err := g.limiter.WaitForHost(ctx, g.feedURL); err != nil {
			return nil, appErrors.RateLimitError("rate limit wait interrupted", err,
				appErrors.SourceContext(g.kind.String(), g.sourceID))
		}
	}

	feed, err := g.parser.ParseURLWithContext(g.feedURL, ctx)
	if err != nil {
		return nil, g.classifyFetchError(err)
	}

	fetchedAt := time.Now().UTC()
	items := make([]*domain.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := g.mapEntry(entry, fetchedAt)
		if item == nil {
			logger.SafeWarn("skipping feed entry without id or link",
				"kind", g.kind.String(), "source_id", g.sourceID, "title", entry.Title)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// classifyFetchError keeps deadline expirations, transport and HTTP status
// failures, and undecodable documents distinguishable for callers. gofeed
// surfaces non-2xx responses as HTTPError and transport failures as
// *url.Error; whatever remains means the body was not a feed we can read.
func (g *RSSSourceGateway) classifyFetchError(err error) error {
	errCtx := appErrors.SourceContext(g.kind.String(), g.sourceID)
	var httpErr gofeed.HTTPError
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return appErrors.TimeoutError("feed fetch timed out", err, errCtx)
	case errors.As(err, &httpErr), errors.As(err, &urlErr):
		return appErrors.ExternalAPIError("failed to fetch feed", err, errCtx)
	default:
		return appErrors.ParseError("failed to parse feed", err, errCtx)
	}
}

func (g *RSSSourceGateway) mapEntry(entry *gofeed.Item, fetchedAt time.Time) *domain.Item {
	id := entry.GUID
	if id == "" {
		id = entry.Link
	}
	if id == "" {
		return nil
	}

	publishedAt := fetchedAt
	if entry.PublishedParsed != nil {
		publishedAt = entry.PublishedParsed.UTC()
	} else if entry.UpdatedParsed != nil {
		publishedAt = entry.UpdatedParsed.UTC()
	}

	summary := collapse(entry.Description)
	if summary == "" {
		summary = html_parser.SummaryFromHTML(entry.Content)
	}

	// Feeds with permalink GUIDs sometimes omit <link>; the id is the best
	// web address we have then.
	link := entry.Link
	if link == "" {
		link = id
	}

	return &domain.Item{
		ID:          id,
		SourceKind:  g.kind,
		SourceID:    g.sourceID,
		Author:      entryAuthor(entry),
		Title:       strings.TrimSpace(entry.Title),
		Summary:     summary,
		URL:         link,
		ContentHTML: entry.Content,
		PublishedAt: publishedAt,
	}
}

func entryAuthor(entry *gofeed.Item) string {
	if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		return entry.Authors[0].Name
	}
	if entry.Author != nil {
		return entry.Author.Name
	}
	return ""
}

// collapse strips markup from plain-text-with-tags descriptions some feeds
// emit, falling back to the raw value when nothing survives.
func collapse(description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "<") {
		if s := html_parser.SummaryFromHTML(trimmed); s != "" {
			return s
		}
	}
	return trimmed
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
}
