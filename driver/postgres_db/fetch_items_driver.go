package postgres_db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"pai/domain"
)

const itemColumns = "id, source_kind, source_id, author, title, summary, url, content_html, published_at, created_at"

// ListItems returns items matching every condition in the filter, newest
// first with id as the tie-break.
func (r *PostgresRepository) ListItems(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.SourceKind != nil {
		conds = append(conds, "source_kind = "+arg(filter.SourceKind.String()))
	}
	if filter.SourceID != "" {
		conds = append(conds, "source_id = "+arg(filter.SourceID))
	}
	if filter.Since != nil {
		conds = append(conds, "published_at >= "+arg(filter.Since.UTC()))
	}
	if filter.Query != "" {
		pattern := arg("%" + strings.ToLower(filter.Query) + "%")
		conds = append(conds, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(summary) LIKE %s)", pattern, pattern))
	}

	query := "SELECT " + itemColumns + " FROM items"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY published_at DESC, id DESC LIMIT " + arg(filter.EffectiveLimit())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0, filter.EffectiveLimit())
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// GetItem fetches a single item by id. Returns domain.ErrItemNotFound when
// no row matches.
func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE id = $1", id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}

	return item, nil
}

// Stats counts stored items overall and per source kind.
func (r *PostgresRepository) Stats(ctx context.Context) (*domain.ItemStats, error) {
	rows, err := r.db.Query(ctx,
		"SELECT source_kind, COUNT(*) FROM items GROUP BY source_kind")
	if err != nil {
		return nil, fmt.Errorf("item stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.ItemStats{ByKind: make(map[domain.SourceKind]int)}
	for rows.Next() {
		var (
			kind  string
			count int
		)
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("item stats: %w", err)
		}
		sourceKind, err := domain.ParseSourceKind(kind)
		if err != nil {
			return nil, fmt.Errorf("item stats: %w", err)
		}
		stats.ByKind[sourceKind] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("item stats: %w", err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item                         domain.Item
		kind                         string
		author, title, summary, body *string
		publishedAt, createdAt       time.Time
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
	item.Author = deref(author)
	item.Title = deref(title)
	item.Summary = deref(summary)
	item.ContentHTML = deref(body)
	item.PublishedAt = publishedAt.UTC()
	item.CreatedAt = createdAt.UTC()

	return &item, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
