// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-convert/internal/history"
	"github.com/pdiddy/office-convert/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions from the journal",
	Long: `History lists conversions recorded in the SQLite journal, newest first.
Journaling is enabled by --history or the history key in office-convert.yaml.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" {
		return fmt.Errorf("no history journal configured: set --history or history in office-convert.yaml")
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	opts, err := queryOptions(cmd)
	if err != nil {
		return err
	}
	entries, err := store.Recent(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-11s  %5s  %-50s\n", "When", "Status", "Family", "Code", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 104))
	for _, e := range entries {
		output := e.Output
		if len(output) > 50 {
			output = "..." + output[len(output)-47:]
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-11s  %5d  %-50s\n",
			e.ConvertedAt.Local().Format(time.DateTime), e.Status, e.Family, e.Code, output)
		if e.Error != "" {
			fmt.Fprintf(os.Stdout, "%-20s  %s\n", "", e.Error)
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// queryOptions builds the journal filter from the history flags. Sources
// are journaled as absolute paths, so --source is made absolute too.
func queryOptions(cmd *cobra.Command) (history.QueryOptions, error) {
	limit, _ := cmd.Flags().GetInt("limit")
	batch, _ := cmd.Flags().GetString("batch")
	status, _ := cmd.Flags().GetString("status")
	source, _ := cmd.Flags().GetString("source")

	opts := history.QueryOptions{
		Batch:  batch,
		Status: types.ConversionStatus(status),
		Limit:  limit,
	}
	if source != "" {
		abs, err := filepath.Abs(source)
		if err != nil {
			return opts, fmt.Errorf("resolving %s: %w", source, err)
		}
		opts.Source = abs
	}
	return opts, nil
}

func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 20, "maximum number of entries")
	cmd.Flags().String("batch", "", "only entries from this batch")
	cmd.Flags().String("status", "", "only entries with this status: converted or failed")
	cmd.Flags().String("source", "", "only entries converted from this file")
	cmd.Flags().Bool("json", false, "output as JSON")
}

func init() {
	addHistoryFlags(historyCmd)
	rootCmd.AddCommand(historyCmd)
}
