package rss_builder

import (
	"strings"
	"testing"
	"time"

	"pai/domain"
)

func TestBuildTitleFallbacks(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	items := []*domain.Item{
		{ID: "1", Title: "Real Title", Summary: "summary", URL: "https://example.com/1", PublishedAt: now},
		{ID: "2", Summary: "summary as title", URL: "https://example.com/2", PublishedAt: now},
		{ID: "3", URL: "https://example.com/3", PublishedAt: now},
	}

	feed := NewBuilder().Build(items, now)
	if len(feed.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(feed.Items))
	}
	if feed.Items[0].Title != "Real Title" {
		t.Errorf("title: got %q", feed.Items[0].Title)
	}
	if feed.Items[1].Title != "summary as title" {
		t.Errorf("summary fallback: got %q", feed.Items[1].Title)
	}
	if feed.Items[2].Title != "https://example.com/3" {
		t.Errorf("url fallback: got %q", feed.Items[2].Title)
	}
}

func TestBuildSanitizesMarkup(t *testing.T) {
	now := time.Now()
	items := []*domain.Item{{
		ID:          "evil",
		Title:       "ok title",
		Summary:     `click <script>alert("x")</script> here`,
		URL:         "https://example.com/evil",
		PublishedAt: now,
	}}

	feed := NewBuilder().Build(items, now)
	if strings.Contains(feed.Items[0].Description, "<script>") {
		t.Error("script tags must be stripped from descriptions")
	}
	if !strings.Contains(feed.Items[0].Description, "click") {
		t.Error("surrounding text should survive sanitization")
	}
}

func TestToRSSProducesValidChannel(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	items := []*domain.Item{{
		ID:          "at://did:plc:abc/app.bsky.feed.post/xyz",
		SourceKind:  domain.SourceKindBluesky,
		Title:       "a post",
		Summary:     "a post",
		URL:         "https://bsky.app/profile/alice.bsky.social/post/xyz",
		PublishedAt: now,
	}}

	doc, err := NewBuilder().ToRSS(items, now)
	if err != nil {
		t.Fatalf("to rss: %v", err)
	}
	for _, fragment := range []string{
		"<rss", "Personal Activity Index", "a post",
		"https://bsky.app/profile/alice.bsky.social/post/xyz",
	} {
		if !strings.Contains(doc, fragment) {
			t.Errorf("document missing %q", fragment)
		}
	}
}

func TestToRSSEmptyIndex(t *testing.T) {
	doc, err := NewBuilder().ToRSS(nil, time.Now())
	if err != nil {
		t.Fatalf("to rss: %v", err)
	}
	if !strings.Contains(doc, "<rss") {
		t.Error("empty index should still render a channel")
	}
}
