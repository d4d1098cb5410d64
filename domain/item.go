package domain

import (
	"fmt"
	"strings"
	"time"
)

// SourceKind identifies the publishing platform an item originates from.
// The set of kinds is closed; anything else is a configuration error.
type SourceKind string

const (
	SourceKindSubstack SourceKind = "substack"
	SourceKindBluesky  SourceKind = "bluesky"
	SourceKindLeaflet  SourceKind = "leaflet"
	SourceKindBearBlog SourceKind = "bearblog"
)

// ParseSourceKind parses a case-insensitive kind name.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "substack":
		return SourceKindSubstack, nil
	case "bluesky":
		return SourceKindBluesky, nil
	case "leaflet":
		return SourceKindLeaflet, nil
	case "bearblog":
		return SourceKindBearBlog, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSourceKind, s)
	}
}

func (k SourceKind) String() string {
	return string(k)
}

// Item is the canonical normalized content record every source maps into.
// ID is unique across the store; for RSS sources it is the upstream GUID
// (falling back to the entry link), for Bluesky it is the AT URI.
type Item struct {
	ID          string     `json:"id"`
	SourceKind  SourceKind `json:"source_kind"`
	SourceID    string     `json:"source_id"`
	Author      string     `json:"author,omitempty"`
	Title       string     `json:"title,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url"`
	ContentHTML string     `json:"content_html,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ItemStats summarizes the store contents for status reporting.
type ItemStats struct {
	Total  int                `json:"total"`
	ByKind map[SourceKind]int `json:"by_kind"`
}
