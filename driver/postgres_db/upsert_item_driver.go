package postgres_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pai/domain"
)

// UpsertItem inserts the item or overwrites the existing row with the same
// id. created_at keeps its first-insert value across updates.
func (r *PostgresRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	if r.db == nil {
		return errors.New("database connection not available")
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO items (id, source_kind, source_id, author, title, summary, url, content_html, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			source_kind = EXCLUDED.source_kind,
			source_id = EXCLUDED.source_id,
			author = EXCLUDED.author,
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			url = EXCLUDED.url,
			content_html = EXCLUDED.content_html,
			published_at = EXCLUDED.published_at
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.SourceKind.String(),
		item.SourceID,
		nullIfEmpty(item.Author),
		nullIfEmpty(item.Title),
		nullIfEmpty(item.Summary),
		item.URL,
		nullIfEmpty(item.ContentHTML),
		item.PublishedAt.UTC(),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("upsert item %s: %w", item.ID, err)
	}

	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
