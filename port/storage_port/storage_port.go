package storage_port

import (
	"context"

	"pai/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage_port.go -destination=../../mocks/mock_storage_port.go -package=mocks

// StoragePort is the persistence contract shared by the embedded sqlite
// backend and the managed postgres backend. Implementations must be safe for
// concurrent use; UpsertItem is keyed by item ID and preserves the row's
// original created_at on conflict.
type StoragePort interface {
	UpsertItem(ctx context.Context, item *domain.Item) error
	ListItems(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	Stats(ctx context.Context) (*domain.ItemStats, error)
}
