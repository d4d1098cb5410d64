package sqlite_db

import (
	"database/sql"
	"fmt"
	"time"

	"pai/domain"
)

const itemColumns = "id, source_kind, source_id, author, title, summary, url, content_html, published_at, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item                         domain.Item
		kind                         string
		author, title, summary, body sql.NullString
		publishedAt, createdAt       string
	)

	err := row.Scan(&item.ID, &kind, &item.SourceID, &author, &title, &summary,
		&item.URL, &body, &publishedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	sourceKind, err := domain.ParseSourceKind(kind)
	if err != nil {
		return nil, fmt.Errorf("stored item %s: %w", item.ID, err)
	}
	item.SourceKind = sourceKind
	item.Author = author.String
	item.Title = title.String
	item.Summary = summary.String
	item.ContentHTML = body.String

	if item.PublishedAt, err = parseStoredTime(publishedAt); err != nil {
		return nil, fmt.Errorf("stored item %s published_at: %w", item.ID, err)
	}
	if item.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, fmt.Errorf("stored item %s created_at: %w", item.ID, err)
	}

	return &item, nil
}

// parseStoredTime accepts RFC 3339 (what the application writes) plus the
// "2006-01-02 15:04:05" form CURRENT_TIMESTAMP produces for rows inserted
// outside the application.
func parseStoredTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
