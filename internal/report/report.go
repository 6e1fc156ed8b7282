// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders computed MACS values and archive section listings
// for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/macs-engine/internal/exfor"
	"github.com/pdiddy/macs-engine/pkg/types"
)

// FormatTable writes results as a human-readable temperature/MACS table to w.
func FormatTable(results []types.MACSResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}

	r0 := results[0]
	fmt.Fprintf(w, "=== MACS for %s %s(%s) ===\n", r0.Library, r0.Target, r0.Reaction)
	fmt.Fprintf(w, "%-8s  %s\n", "T(keV)", "MACS(mb)")
	fmt.Fprintln(w, strings.Repeat("-", 20))

	for _, r := range results {
		fmt.Fprintf(w, "%6.1f    %12.6f\n", r.TemperatureKeV, r.MACSMillibarns)
	}
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.MACSResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// FormatYAML writes results as YAML to w.
func FormatYAML(results []types.MACSResult, w io.Writer) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// FormatSections writes a candidate section listing to w, in archive order.
// The first row per library is the one dataset resolution would pick.
func FormatSections(sections []exfor.Section, w io.Writer) {
	if len(sections) == 0 {
		fmt.Fprintln(w, "No sections found.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-16s  %-4s  %-4s  %-8s  %-10s  %s\n",
		"SectID", "Library", "MT", "MF", "EvalID", "Date", "Author")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, s := range sections {
		author := s.Author
		if len(author) > 24 {
			author = author[:21] + "..."
		}
		fmt.Fprintf(w, "%-8d  %-16s  %-4d  %-4d  %-8d  %-10s  %s\n",
			s.SectID, s.LibName, s.MT, s.MF, s.EvalID, s.Date, author)
	}

	fmt.Fprintf(w, "\n%d sections\n", len(sections))
}
