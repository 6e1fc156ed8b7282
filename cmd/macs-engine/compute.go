// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/macs-engine/internal/exfor"
	"github.com/pdiddy/macs-engine/internal/macs"
	"github.com/pdiddy/macs-engine/internal/report"
	"github.com/pdiddy/macs-engine/internal/store"
	"github.com/pdiddy/macs-engine/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "macs-engine/0.1"
	defaultDataDir   = "data"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute MACS values for a nuclide, reaction, and library",
	Long: `Compute resolves one cross-section dataset from the EXFOR archive (listing
candidate sections, filtering by library, fetching the first match's point
series) and computes the Maxwellian-averaged cross section at each requested
temperature. Archive lookups are issued once; nothing is retried or cached.`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().String("target", "", "target nuclide (e.g. Mo-94)")
	computeCmd.Flags().String("reaction", "n,g", "reaction channel (e.g. n,g)")
	computeCmd.Flags().String("library", "", "evaluated-data library name, exact archive spelling (e.g. JEFF-3.1)")
	computeCmd.Flags().Float64("mass", 0, "atomic mass number of the target (e.g. 94)")
	computeCmd.Flags().String("temperatures", "30", "thermal energies kT in keV, comma-separated (e.g. 8,25,30,90)")
	computeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	computeCmd.Flags().Bool("json", false, "output results as JSON")
	computeCmd.Flags().Bool("yaml", false, "output results as YAML")
	computeCmd.Flags().Bool("record", false, "append results to the history database")
	computeCmd.Flags().String("data-dir", "", "directory for the history database (default data/)")
	computeCmd.MarkFlagRequired("target")
	computeCmd.MarkFlagRequired("library")
	computeCmd.MarkFlagRequired("mass")

	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	reaction, _ := cmd.Flags().GetString("reaction")
	library, _ := cmd.Flags().GetString("library")
	mass, _ := cmd.Flags().GetFloat64("mass")
	tempList, _ := cmd.Flags().GetString("temperatures")
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	record, _ := cmd.Flags().GetBool("record")

	temperatures, err := parseTemperatures(tempList)
	if err != nil {
		return err
	}

	client := exfor.NewClient(archiveConfig(cmd))

	fmt.Fprintf(os.Stderr, "Downloading %s data for %s(%s)...\n", library, target, reaction)
	dataset, err := client.ResolveDataset(target, reaction, library)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Downloaded %d data points\n", len(dataset.Points))

	energies := dataset.EnergiesMeV()
	crossSections := dataset.CrossSections()

	results := make([]types.MACSResult, 0, len(temperatures))
	for _, temp := range temperatures {
		value, err := macs.Calculate(energies, crossSections, mass, temp)
		if err != nil {
			return err
		}
		results = append(results, types.MACSResult{
			Target:         target,
			Reaction:       reaction,
			Library:        library,
			AtomicMass:     mass,
			TemperatureKeV: temp,
			MACSMillibarns: value,
			Points:         len(dataset.Points),
			MAT:            dataset.MAT,
			ComputedAt:     time.Now().UTC(),
		})
	}

	switch {
	case asJSON:
		if err := report.FormatJSON(results, os.Stdout); err != nil {
			return err
		}
	case asYAML:
		if err := report.FormatYAML(results, os.Stdout); err != nil {
			return err
		}
	default:
		report.FormatTable(results, os.Stdout)
	}

	if record {
		s, err := store.NewStore(historyConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Record(context.Background(), results); err != nil {
			return fmt.Errorf("recording results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Recorded %d result(s)\n", len(results))
	}
	return nil
}

// parseTemperatures splits a comma-separated keV list. Validation of the
// values themselves (positivity) belongs to the engine.
func parseTemperatures(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	temps := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature %q: %w", part, err)
		}
		temps = append(temps, t)
	}
	if len(temps) == 0 {
		return nil, fmt.Errorf("provide at least one temperature in keV")
	}
	return temps, nil
}

// archiveConfig builds the archive client settings from flags, falling back
// to config-file/env values.
func archiveConfig(cmd *cobra.Command) types.ArchiveConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("archive.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("archive.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.ArchiveConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		BaseURL:  viper.GetString("archive.base_url"),
		Quantity: viper.GetString("archive.quantity"),
	}
}

// historyConfig builds the history store settings from flags, falling back
// to config-file/env values.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("history.data_dir")
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return types.HistoryConfig{
		DataDir:    dataDir,
		MaxResults: viper.GetInt("history.max_results"),
	}
}
