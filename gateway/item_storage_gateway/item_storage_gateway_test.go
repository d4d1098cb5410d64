package item_storage_gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"pai/domain"
	appErrors "pai/utils/errors"
)

type failingRepository struct {
	err error
}

func (f *failingRepository) UpsertItem(context.Context, *domain.Item) error { return f.err }
func (f *failingRepository) ListItems(context.Context, domain.ListFilter) ([]*domain.Item, error) {
	return nil, f.err
}
func (f *failingRepository) GetItem(context.Context, string) (*domain.Item, error) {
	return nil, f.err
}
func (f *failingRepository) Stats(context.Context) (*domain.ItemStats, error) {
	return nil, f.err
}

func TestGatewayWrapsDriverErrors(t *testing.T) {
	driverErr := errors.New("disk I/O error")
	gw := NewItemStorageGateway(&failingRepository{err: driverErr})
	ctx := context.Background()

	item := &domain.Item{ID: "x", SourceKind: domain.SourceKindSubstack, URL: "https://example.com/x", PublishedAt: time.Now()}

	for name, call := range map[string]func() error{
		"UpsertItem": func() error { return gw.UpsertItem(ctx, item) },
		"ListItems":  func() error { _, err := gw.ListItems(ctx, domain.ListFilter{}); return err },
		"GetItem":    func() error { _, err := gw.GetItem(ctx, "x"); return err },
		"Stats":      func() error { _, err := gw.Stats(ctx); return err },
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			var appErr *appErrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != appErrors.ErrCodeDatabase {
				t.Errorf("code: got %s", appErr.Code)
			}
			if !errors.Is(err, driverErr) {
				t.Error("driver error should stay reachable through Unwrap")
			}
		})
	}
}

func TestGatewayPassesNotFoundThrough(t *testing.T) {
	gw := NewItemStorageGateway(&failingRepository{err: domain.ErrItemNotFound})

	_, err := gw.GetItem(context.Background(), "missing")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("not-found must stay a domain error, got %v", err)
	}
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		t.Error("not-found must not be wrapped as a database error")
	}
}
