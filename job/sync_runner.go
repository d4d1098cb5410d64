// Package job hosts the background sync runner that keeps the index fresh
// while the server is up.
package job

import (
	"context"
	"time"

	"pai/usecase/sync_usecase"
	"pai/utils/logger"
)

// PeriodicSyncRunner syncs all configured sources on startup and then every
// interval until the context is cancelled. Run it in its own goroutine.
func PeriodicSyncRunner(ctx context.Context, usecase *sync_usecase.SyncUsecase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce(ctx, usecase)

	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "stopping periodic sync job")
			return
		case <-ticker.C:
			runOnce(ctx, usecase)
		}
	}
}

func runOnce(ctx context.Context, usecase *sync_usecase.SyncUsecase) {
	report, err := usecase.Execute(ctx, sync_usecase.Selection{})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "scheduled sync pass failed", "error", err)
		return
	}
	logger.Logger.InfoContext(ctx, "scheduled sync pass completed",
		"run_id", report.RunID,
		"items", report.TotalItems(),
		"failed_sources", len(report.Failed()))
}
