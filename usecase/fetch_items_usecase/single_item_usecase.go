package fetch_items_usecase

import (
	"context"

	"pai/domain"
	"pai/port/storage_port"
	appErrors "pai/utils/errors"
)

type FetchSingleItemUsecase struct {
	storage storage_port.StoragePort
}

func NewFetchSingleItemUsecase(storage storage_port.StoragePort) *FetchSingleItemUsecase {
	return &FetchSingleItemUsecase{storage: storage}
}

func (u *FetchSingleItemUsecase) Execute(ctx context.Context, id string) (*domain.Item, error) {
	if id == "" {
		return nil, appErrors.ValidationError("item id is required", nil)
	}
	return u.storage.GetItem(ctx, id)
}
