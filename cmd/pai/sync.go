package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"pai/domain"
	"pai/usecase/sync_usecase"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch configured sources and store their items",
	Long: `Fetch every configured source in parallel and write the normalized
items into the index. Re-running is safe; items are keyed by their upstream
id.

Examples:
  pai sync                          # All configured sources
  pai sync --source substack        # Only the newsletter
  pai sync --source leaflet --id my-pub   # One leaflet publication`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("source", "", "restrict to one source kind (substack, bluesky, leaflet, bearblog)")
	syncCmd.Flags().String("id", "", "restrict to one source id within the kind")
}

func runSync(cmd *cobra.Command, args []string) error {
	selection := sync_usecase.Selection{}

	if kindName, _ := cmd.Flags().GetString("source"); kindName != "" {
		kind, err := domain.ParseSourceKind(kindName)
		if err != nil {
			return err
		}
		selection.Kind = &kind
	}
	selection.SourceID, _ = cmd.Flags().GetString("id")

	container, err := newComponents(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	report, err := container.SyncUsecase.Execute(cmd.Context(), selection)
	if err != nil {
		return err
	}

	refs := make([]domain.SourceRef, 0, len(report.Outcomes))
	for ref := range report.Outcomes {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].SourceID < refs[j].SourceID
	})

	out := cmd.OutOrStdout()
	for _, ref := range refs {
		outcome := report.Outcomes[ref]
		if outcome.Err != nil {
			fmt.Fprintf(out, "%-10s %-30s FAILED: %v\n", ref.Kind, ref.SourceID, outcome.Err)
		} else {
			fmt.Fprintf(out, "%-10s %-30s %d items\n", ref.Kind, ref.SourceID, outcome.ItemCount)
		}
	}
	fmt.Fprintf(out, "\nrun %s: %d items from %d sources, %d failed (%.1fs)\n",
		report.RunID, report.TotalItems(), report.SourceCount(), len(report.Failed()),
		report.FinishedAt.Sub(report.StartedAt).Seconds())

	if len(report.Failed()) > 0 {
		return fmt.Errorf("%d source(s) failed", len(report.Failed()))
	}
	return nil
}
