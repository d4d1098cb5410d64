package fetch_items_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"pai/domain"
	"pai/mocks"
)

func TestFetchItemsListUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStoragePort(ctrl)
	u := NewFetchItemsListUsecase(storage)

	want := []*domain.Item{
		{ID: "a", SourceKind: domain.SourceKindSubstack, URL: "https://example.com/a",
			PublishedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)},
	}

	storage.EXPECT().ListItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
			if filter.SourceKind == nil || *filter.SourceKind != domain.SourceKindSubstack {
				t.Errorf("kind not translated: %v", filter.SourceKind)
			}
			if filter.Limit != 5 {
				t.Errorf("limit not passed through: %d", filter.Limit)
			}
			return want, nil
		})

	got, err := u.Execute(context.Background(), FilterParams{Kind: "substack", Limit: 5})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFetchItemsListUsecase_InvalidParamsNeverReachStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStoragePort(ctrl)
	u := NewFetchItemsListUsecase(storage)

	if _, err := u.Execute(context.Background(), FilterParams{Since: "garbage"}); err == nil {
		t.Error("expected validation error")
	}
}

func TestFetchSingleItemUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStoragePort(ctrl)
	u := NewFetchSingleItemUsecase(storage)

	t.Run("found", func(t *testing.T) {
		want := &domain.Item{ID: "item-1"}
		storage.EXPECT().GetItem(gomock.Any(), "item-1").Return(want, nil)

		got, err := u.Execute(context.Background(), "item-1")
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if got != want {
			t.Errorf("unexpected item: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		storage.EXPECT().GetItem(gomock.Any(), "missing").Return(nil, domain.ErrItemNotFound)

		_, err := u.Execute(context.Background(), "missing")
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("empty id rejected without storage call", func(t *testing.T) {
		if _, err := u.Execute(context.Background(), ""); err == nil {
			t.Error("expected validation error")
		}
	})
}
