// Package item_storage_gateway adapts the database drivers to the storage
// port. One gateway serves both backends; the driver repositories already
// share query semantics, so the gateway only adds error classification and
// logging.
package item_storage_gateway

import (
	"context"
	"errors"

	"pai/domain"
	appErrors "pai/utils/errors"
	"pai/utils/logger"
)

// ItemRepository is implemented by driver/sqlite_db.SqliteRepository and
// driver/postgres_db.PostgresRepository.
type ItemRepository interface {
	UpsertItem(ctx context.Context, item *domain.Item) error
	ListItems(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	Stats(ctx context.Context) (*domain.ItemStats, error)
}

type ItemStorageGateway struct {
	repo ItemRepository
}

func NewItemStorageGateway(repo ItemRepository) *ItemStorageGateway {
	return &ItemStorageGateway{repo: repo}
}

func (g *ItemStorageGateway) UpsertItem(ctx context.Context, item *domain.Item) error {
	if err := g.repo.UpsertItem(ctx, item); err != nil {
		logger.SafeError("failed to upsert item", "id", item.ID, "error", err)
		return appErrors.DatabaseError("failed to store item", err,
			map[string]interface{}{"item_id": item.ID})
	}
	return nil
}

func (g *ItemStorageGateway) ListItems(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	items, err := g.repo.ListItems(ctx, filter)
	if err != nil {
		logger.SafeError("failed to list items", "error", err)
		return nil, appErrors.DatabaseError("failed to list items", err, nil)
	}
	return items, nil
}

func (g *ItemStorageGateway) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := g.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		logger.SafeError("failed to get item", "id", id, "error", err)
		return nil, appErrors.DatabaseError("failed to get item", err,
			map[string]interface{}{"item_id": id})
	}
	return item, nil
}

func (g *ItemStorageGateway) Stats(ctx context.Context) (*domain.ItemStats, error) {
	stats, err := g.repo.Stats(ctx)
	if err != nil {
		logger.SafeError("failed to compute item stats", "error", err)
		return nil, appErrors.DatabaseError("failed to compute item stats", err, nil)
	}
	return stats, nil
}
