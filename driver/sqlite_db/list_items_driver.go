package sqlite_db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pai/domain"
)

// ListItems returns items matching every condition in the filter, newest
// first. Equal timestamps tie-break on id so pagination stays stable.
func (r *SqliteRepository) ListItems(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	var (
		conds []string
		args  []any
	)

	if filter.SourceKind != nil {
		conds = append(conds, "source_kind = ?")
		args = append(args, filter.SourceKind.String())
	}
	if filter.SourceID != "" {
		conds = append(conds, "source_id = ?")
		args = append(args, filter.SourceID)
	}
	if filter.Since != nil {
		conds = append(conds, "published_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339))
	}
	if filter.Query != "" {
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(summary) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		args = append(args, pattern, pattern)
	}

	query := "SELECT " + itemColumns + " FROM items"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY published_at DESC, id DESC LIMIT ?"
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, query, args...)
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
