// Package sync_usecase orchestrates one sync pass: fetch every selected
// source in parallel and write the results through the storage port.
package sync_usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pai/domain"
	"pai/port/fetch_source_port"
	"pai/port/storage_port"
	appErrors "pai/utils/errors"
	"pai/utils/logger"
)

// Selection narrows a sync pass to a subset of configured sources. The zero
// value selects everything.
type Selection struct {
	Kind     *domain.SourceKind
	SourceID string
}

func (s Selection) restricted() bool {
	return s.Kind != nil || s.SourceID != ""
}

func (s Selection) matches(source fetch_source_port.FetchSourcePort) bool {
	if s.Kind != nil && source.Kind() != *s.Kind {
		return false
	}
	if s.SourceID != "" && source.SourceID() != s.SourceID {
		return false
	}
	return true
}

type SyncUsecase struct {
	sources       []fetch_source_port.FetchSourcePort
	storage       storage_port.StoragePort
	sourceTimeout time.Duration
	maxParallel   int
}

func NewSyncUsecase(sources []fetch_source_port.FetchSourcePort, storage storage_port.StoragePort, sourceTimeout time.Duration, maxParallel int) *SyncUsecase {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &SyncUsecase{
		sources:       sources,
		storage:       storage,
		sourceTimeout: sourceTimeout,
		maxParallel:   maxParallel,
	}
}

// Execute runs one pass over the selected sources. Each source gets its own
// deadline, and a failing source records its error in the report without
// stopping the others. The returned error is reserved for cases where the
// pass itself could not run, such as a narrowed selection matching nothing.
func (u *SyncUsecase) Execute(ctx context.Context, selection Selection) (*domain.SyncReport, error) {
	selected := make([]fetch_source_port.FetchSourcePort, 0, len(u.sources))
	for _, source := range u.sources {
		if selection.matches(source) {
			selected = append(selected, source)
		}
	}
	if len(selected) == 0 {
		// A narrowed pass over nothing is an operator mistake; an empty
		// sources file just means there is nothing to do yet.
		if selection.restricted() {
			return nil, fmt.Errorf("%w: no configured source matches the selection", domain.ErrSourceNotConfigured)
		}
		report := domain.NewSyncReport(uuid.New().String(), time.Now().UTC())
		report.FinishedAt = report.StartedAt
		logger.SafeInfo("sync pass skipped, no sources configured", "run_id", report.RunID)
		return report, nil
	}

	report := domain.NewSyncReport(uuid.New().String(), time.Now().UTC())
	logger.SafeInfo("sync pass started", "run_id", report.RunID, "sources", len(selected))

	var mu sync.Mutex
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(u.maxParallel)

	for _, source := range selected {
		g.Go(func() error {
			ref := domain.SourceRef{Kind: source.Kind(), SourceID: source.SourceID()}
			count, err := u.syncSource(groupCtx, source)
			if err != nil {
				logger.SafeError("source sync failed",
					"run_id", report.RunID, "kind", ref.Kind.String(), "source_id", ref.SourceID,
					"error_code", string(appErrors.CodeOf(err)), "error", err)
			} else {
				logger.SafeInfo("source sync finished",
					"run_id", report.RunID, "kind", ref.Kind.String(), "source_id", ref.SourceID, "items", count)
			}

			mu.Lock()
			report.Outcomes[ref] = domain.SourceOutcome{ItemCount: count, Err: err}
			mu.Unlock()
			return nil
		})
	}

	// Goroutines record failures in the report instead of returning them.
	g.Wait()

	report.FinishedAt = time.Now().UTC()
	logger.SafeInfo("sync pass finished",
		"run_id", report.RunID, "items", report.TotalItems(), "failed_sources", len(report.Failed()))
	return report, nil
}

func (u *SyncUsecase) syncSource(ctx context.Context, source fetch_source_port.FetchSourcePort) (int, error) {
	sourceCtx := ctx
	if u.sourceTimeout > 0 {
		var cancel context.CancelFunc
		sourceCtx, cancel = context.WithTimeout(ctx, u.sourceTimeout)
		defer cancel()
	}

	items, err := source.FetchItems(sourceCtx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, item := range items {
		if err := u.storage.UpsertItem(sourceCtx, item); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}
