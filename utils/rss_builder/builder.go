// Package rss_builder renders stored items back out as an RSS 2.0 channel.
// Shared by the HTTP feed endpoint and the CLI export command so both emit
// the same document for the same filter.
package rss_builder

import (
	"time"

	"github.com/gorilla/feeds"
	"github.com/microcosm-cc/bluemonday"

	"pai/domain"
)

const (
	channelTitle       = "Personal Activity Index"
	channelLink        = "https://personal-activity-index.local/"
	channelDescription = "Aggregated feed exported by the Personal Activity Index."
)

// Builder converts items into an RSS channel. Descriptions pass through a
// UGC sanitization policy because content_html is stored raw.
type Builder struct {
	policy *bluemonday.Policy
}

func NewBuilder() *Builder {
	return &Builder{policy: bluemonday.UGCPolicy()}
}

// Build assembles the channel. Items with no title fall back to their
// summary, then to the URL, mirroring how listing surfaces them.
func (b *Builder) Build(items []*domain.Item, now time.Time) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       channelTitle,
		Link:        &feeds.Link{Href: channelLink},
		Description: channelDescription,
		Created:     now,
	}

	for _, item := range items {
		title := item.Title
		if title == "" {
			title = item.Summary
		}
		if title == "" {
			title = item.URL
		}

		description := item.Summary
		if description == "" {
			description = item.ContentHTML
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			Title:       b.policy.Sanitize(title),
			Link:        &feeds.Link{Href: item.URL},
			Description: b.policy.Sanitize(description),
			Author:      &feeds.Author{Name: item.Author},
			Created:     item.PublishedAt,
		})
	}

	return feed
}

// ToRSS renders the channel as an RSS 2.0 document.
func (b *Builder) ToRSS(items []*domain.Item, now time.Time) (string, error) {
	return b.Build(items, now).ToRss()
}
