// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/macs-engine/internal/exfor"
	"github.com/pdiddy/macs-engine/internal/report"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List candidate archive sections for a nuclide and reaction",
	Long: `Sections queries the EXFOR listing endpoint and prints every measurement
section the archive holds for the (target, reaction) pair, in archive order.
With --library the listing is filtered to that library; the first row is
then the section compute would resolve.`,
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().String("target", "", "target nuclide (e.g. Mo-94)")
	sectionsCmd.Flags().String("reaction", "n,g", "reaction channel (e.g. n,g)")
	sectionsCmd.Flags().String("library", "", "filter to one library, exact archive spelling")
	sectionsCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	sectionsCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	reaction, _ := cmd.Flags().GetString("reaction")
	library, _ := cmd.Flags().GetString("library")

	client := exfor.NewClient(archiveConfig(cmd))

	quantity := viper.GetString("archive.quantity")
	if quantity == "" {
		quantity = exfor.QuantitySIG
	}

	sections, err := client.ListSections(target, reaction, quantity)
	if err != nil {
		return err
	}
	if library != "" {
		sections = exfor.SelectByLibrary(sections, library)
	}

	report.FormatSections(sections, os.Stdout)
	return nil
}
