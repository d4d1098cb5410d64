package sqlite_db

import (
	"context"
	"fmt"
	"time"

	"pai/domain"
)

// UpsertItem inserts the item or overwrites the existing row with the same
// id. created_at is written only on first insert; conflicts keep the
// original value no matter what the incoming item carries, so repeated syncs
// never drift it.
func (r *SqliteRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, source_kind, source_id, author, title, summary, url, content_html, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			source_kind = excluded.source_kind,
			source_id = excluded.source_id,
			author = excluded.author,
			title = excluded.title,
			summary = excluded.summary,
			url = excluded.url,
			content_html = excluded.content_html,
			published_at = excluded.published_at`,
		item.ID,
		item.SourceKind.String(),
		item.SourceID,
		nullIfEmpty(item.Author),
		nullIfEmpty(item.Title),
		nullIfEmpty(item.Summary),
		item.URL,
		nullIfEmpty(item.ContentHTML),
		item.PublishedAt.UTC().Format(time.RFC3339),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert item %s: %w", item.ID, err)
	}

	return nil
}
