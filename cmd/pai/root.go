package main

import (
	"github.com/spf13/cobra"

	"pai/config"
	"pai/di"
	"pai/utils/logger"
)

var (
	cfg     *config.Config
	sources *config.SourcesConfig
)

var rootCmd = &cobra.Command{
	Use:   "pai",
	Short: "Personal activity index",
	Long: `pai aggregates personal publishing activity from Substack, Bluesky,
Leaflet and BearBlog into a single queryable index.

Example usage:
  pai sync                     # Fetch all configured sources
  pai sync --source bluesky    # Fetch one source kind
  pai list --since 7d          # Show the last week of activity
  pai export --format rss      # Re-export the index as RSS
  pai serve                    # Run the query API server
  pai db-check                 # Verify the storage backend`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger()

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		sources, err = config.LoadSources(cfg.SourcesFile)
		if err != nil {
			// Query-only commands work without a sources file.
			logger.SafeWarn("sources file not loaded", "path", cfg.SourcesFile, "error", err)
			sources = &config.SourcesConfig{}
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// newComponents opens the storage backend and wires the usecases for one
// command invocation. Callers must Close the returned container.
func newComponents(cmd *cobra.Command) (*di.ApplicationComponents, error) {
	return di.NewApplicationComponents(cmd.Context(), cfg, sources)
}
