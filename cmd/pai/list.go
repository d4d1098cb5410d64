package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pai/usecase/fetch_items_usecase"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored items",
	Long: `List items from the index, newest first.

Examples:
  pai list                          # Most recent items
  pai list --kind bluesky           # One source kind
  pai list --since 24h --limit 50   # Last day of activity
  pai list --query compilers        # Substring match on title or summary`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd)
}

// addFilterFlags registers the query surface shared by list and export.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("kind", "", "source kind (substack, bluesky, leaflet, bearblog)")
	cmd.Flags().String("id", "", "source id within the kind")
	cmd.Flags().String("since", "", "only items published after this time (RFC 3339 or relative like 24h, 7d, 2w)")
	cmd.Flags().String("query", "", "case-insensitive substring match on title or summary")
	cmd.Flags().Int("limit", 0, "maximum items to return")
}

func filterParamsFromFlags(cmd *cobra.Command) fetch_items_usecase.FilterParams {
	params := fetch_items_usecase.FilterParams{}
	params.Kind, _ = cmd.Flags().GetString("kind")
	params.SourceID, _ = cmd.Flags().GetString("id")
	params.Since, _ = cmd.Flags().GetString("since")
	params.Query, _ = cmd.Flags().GetString("query")
	params.Limit, _ = cmd.Flags().GetInt("limit")
	return params
}

func runList(cmd *cobra.Command, args []string) error {
	container, err := newComponents(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	items, err := container.FetchItemsListUsecase.Execute(cmd.Context(), filterParamsFromFlags(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PUBLISHED\tKIND\tSOURCE\tTITLE\tURL")
	for _, item := range items {
		title := item.Title
		if title == "" {
			title = item.Summary
		}
		if runes := []rune(title); len(runes) > 60 {
			title = string(runes[:57]) + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.PublishedAt.Format("2006-01-02 15:04"),
			item.SourceKind, item.SourceID, title, item.URL)
	}
	return w.Flush()
}
