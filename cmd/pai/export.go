package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pai/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored items",
	Long: `Export items matching a filter to stdout or a file.

Formats:
  json    one JSON array
  ndjson  one JSON object per line
  rss     an RSS 2.0 channel

Examples:
  pai export --format json > activity.json
  pai export --format rss --since 30d --output feed.xml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addFilterFlags(exportCmd)

	exportCmd.Flags().String("format", "json", "output format (json, ndjson, rss)")
	exportCmd.Flags().String("output", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "ndjson", "rss":
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	container, err := newComponents(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	items, err := container.FetchItemsListUsecase.Execute(cmd.Context(), filterParamsFromFlags(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "ndjson":
		return writeNDJSON(out, items)
	default:
		doc, err := container.RSSBuilder.ToRSS(items, time.Now())
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, doc)
		return err
	}
}

func writeNDJSON(out io.Writer, items []*domain.Item) error {
	enc := json.NewEncoder(out)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
