package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pai/job"
	"pai/rest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the query API server",
	Long: `Run the HTTP server exposing the query API:

  GET /v1/health       status, version, and item counts
  GET /v1/items        filtered item listing
  GET /v1/items/:id    single item by id
  GET /v1/rss.xml      the index re-exported as RSS`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	container, err := newComponents(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	if cfg.Sync.JobEnabled {
		go job.PeriodicSyncRunner(cmd.Context(), container.SyncUsecase, cfg.Sync.JobInterval)
	}

	e := rest.NewServer(container, cfg)
	return e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
}
