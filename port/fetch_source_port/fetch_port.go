package fetch_source_port

import (
	"context"

	"pai/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_port.go -destination=../../mocks/mock_fetch_source_port.go -package=mocks

// FetchSourcePort produces the current normalized snapshot of one upstream
// feed. Implementations never retry internally and never fail the whole
// fetch for a single malformed entry; retry policy belongs to the
// orchestrator.
type FetchSourcePort interface {
	Kind() domain.SourceKind
	SourceID() string
	FetchItems(ctx context.Context) ([]*domain.Item, error)
}
