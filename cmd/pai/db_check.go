package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dbCheckCmd = &cobra.Command{
	Use:   "db-check",
	Short: "Verify the storage backend",
	Long: `Open the configured storage backend, verify its schema, and print
item counts. Exits non-zero when the backend is unreachable or the schema is
incomplete.`,
	RunE: runDBCheck,
}

func init() {
	rootCmd.AddCommand(dbCheckCmd)
}

func runDBCheck(cmd *cobra.Command, args []string) error {
	container, err := newComponents(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.VerifySchema(cmd.Context()); err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	stats, err := container.ItemStatsUsecase.Execute(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "backend: %s\n", cfg.Database.Backend)
	fmt.Fprintf(out, "schema:  ok\n")
	fmt.Fprintf(out, "items:   %d\n", stats.Total)
	for kind, count := range stats.ByKind {
		fmt.Fprintf(out, "  %-10s %d\n", kind, count)
	}
	return nil
}
