package bluesky_client

import (
	"encoding/json"
	"time"
)

// AuthorFeedResponse is the wire shape of app.bsky.feed.getAuthorFeed.
// Only the fields the index needs are decoded.
type AuthorFeedResponse struct {
	Feed   []FeedViewPost `json:"feed"`
	Cursor string         `json:"cursor,omitempty"`
}

// FeedViewPost wraps a post with feed-level context. Reason is set for
// reposts and similar non-authored entries; its contents do not matter,
// presence alone marks the entry as not originally authored.
type FeedViewPost struct {
	Post   PostView        `json:"post"`
	Reason json.RawMessage `json:"reason,omitempty"`
}

// IsRepost reports whether the entry appears in the feed for a reason other
// than original authorship.
func (p FeedViewPost) IsRepost() bool {
	return len(p.Reason) > 0 && string(p.Reason) != "null"
}

type PostView struct {
	URI       string     `json:"uri"`
	CID       string     `json:"cid"`
	Author    Author     `json:"author"`
	Record    PostRecord `json:"record"`
	IndexedAt time.Time  `json:"indexedAt"`
}

type Author struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
}

// PostRecord carries the authored content. CreatedAt is the author-supplied
// publication time.
type PostRecord struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
