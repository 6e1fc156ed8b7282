// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/macs-engine/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously recorded MACS computations",
	Long: `History lists MACS values recorded by compute --record, most recent first.
Rows can be filtered by target nuclide and library.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("target", "", "filter by target nuclide")
	historyCmd.Flags().String("library", "", "filter by library name")
	historyCmd.Flags().Int("limit", 0, "maximum number of rows (default 20)")
	historyCmd.Flags().String("data-dir", "", "directory for the history database (default data/)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	library, _ := cmd.Flags().GetString("library")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := store.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := s.List(context.Background(), store.QueryOptions{
		Target:  target,
		Library: library,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded results.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-10s  %-14s  %-8s  %-12s  %s\n",
		"Target", "Reaction", "Library", "T(keV)", "MACS(mb)", "Computed")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 76))
	for _, r := range results {
		computed := ""
		if !r.ComputedAt.IsZero() {
			computed = r.ComputedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-10s  %-14s  %8.1f  %12.6f  %s\n",
			r.Target, r.Reaction, r.Library, r.TemperatureKeV, r.MACSMillibarns, computed)
	}
	return nil
}
