package sqlite_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pai/domain"
)

// GetItem fetches a single item by id. Returns domain.ErrItemNotFound when
// no row matches.
func (r *SqliteRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = ?", id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}

	return item, nil
}
