// Package item_stats_usecase reports store-wide item counts for the status
// endpoint and CLI.
package item_stats_usecase

import (
	"context"

	"pai/domain"
	"pai/port/storage_port"
)

type ItemStatsUsecase struct {
	storage storage_port.StoragePort
}

func NewItemStatsUsecase(storage storage_port.StoragePort) *ItemStatsUsecase {
	return &ItemStatsUsecase{storage: storage}
}

func (u *ItemStatsUsecase) Execute(ctx context.Context) (*domain.ItemStats, error) {
	return u.storage.Stats(ctx)
}
