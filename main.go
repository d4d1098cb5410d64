package main

import (
	"context"
	"fmt"

	"pai/config"
	"pai/di"
	"pai/job"
	"pai/rest"
	"pai/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("starting personal activity index", "version", config.Version)

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("failed to load configuration", "error", err)
		panic(err)
	}

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		logger.Logger.Warn("sources file not loaded, sync is disabled", "path", cfg.SourcesFile, "error", err)
		sources = &config.SourcesConfig{}
	}

	ctx := context.Background()
	container, err := di.NewApplicationComponents(ctx, cfg, sources)
	if err != nil {
		logger.Logger.Error("failed to initialize application", "error", err)
		panic(err)
	}
	defer container.Close()

	if cfg.Sync.JobEnabled {
		go job.PeriodicSyncRunner(ctx, container.SyncUsecase, cfg.Sync.JobInterval)
	}

	e := rest.NewServer(container, cfg)
	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("error starting server", "error", err)
		panic(err)
	}
}
