package sqlite_db

import (
	"context"
	"fmt"

	"pai/domain"
)

// Stats counts stored items overall and per source kind.
func (r *SqliteRepository) Stats(ctx context.Context) (*domain.ItemStats, error) {
	rows, err := r.db.QueryContext(ctx,
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
