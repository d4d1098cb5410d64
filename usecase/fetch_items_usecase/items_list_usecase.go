// Package fetch_items_usecase serves item queries against the storage port.
package fetch_items_usecase

import (
	"context"
	"time"

	"pai/domain"
	"pai/port/storage_port"
)

type FetchItemsListUsecase struct {
	storage storage_port.StoragePort
}

func NewFetchItemsListUsecase(storage storage_port.StoragePort) *FetchItemsListUsecase {
	return &FetchItemsListUsecase{storage: storage}
}

// Execute lists items matching params, newest first.
func (u *FetchItemsListUsecase) Execute(ctx context.Context, params FilterParams) ([]*domain.Item, error) {
	filter, err := params.ToListFilter(time.Now())
	if err != nil {
		return nil, err
	}
	return u.storage.ListItems(ctx, filter)
}
