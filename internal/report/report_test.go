// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/macs-engine/internal/exfor"
	"github.com/pdiddy/macs-engine/pkg/types"
)

func sampleResults() []types.MACSResult {
	return []types.MACSResult{
		{Target: "Mo-94", Reaction: "n,g", Library: "JEFF-3.1",
			AtomicMass: 94, TemperatureKeV: 8, MACSMillibarns: 142.512345, Points: 1200},
		{Target: "Mo-94", Reaction: "n,g", Library: "JEFF-3.1",
			AtomicMass: 94, TemperatureKeV: 30, MACSMillibarns: 101.3, Points: 1200},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResults(), &buf)
	out := buf.String()

	assert.Contains(t, out, "JEFF-3.1 Mo-94(n,g)")
	assert.Contains(t, out, "T(keV)")
	assert.Contains(t, out, "MACS(mb)")
	assert.Contains(t, out, "8.0")
	assert.Contains(t, out, "142.512345")
	assert.Contains(t, out, "30.0")
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	assert.Equal(t, "No results.\n", buf.String())
}

func TestFormatJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResults(), &buf))
	assert.Contains(t, buf.String(), `"macs_mb"`)
	assert.Contains(t, buf.String(), `"Mo-94"`)
}

func TestFormatYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResults(), &buf))

	var decoded []types.MACSResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Mo-94", decoded[0].Target)
	assert.Equal(t, 30.0, decoded[1].TemperatureKeV)
	assert.InDelta(t, 142.512345, decoded[0].MACSMillibarns, 1e-9)
}

func TestFormatSections(t *testing.T) {
	sections := []exfor.Section{
		{SectID: 5001, LibName: "JEFF-3.1", MT: 102, MF: 3, EvalID: 101,
			Date: "2005-05-01", Author: "JEFF team"},
		{SectID: 5002, LibName: "ENDF-B-VIII.1", MT: 102, MF: 3, EvalID: 202,
			Date: "2024-01-15", Author: "A very long author string that gets cut"},
	}

	var buf bytes.Buffer
	FormatSections(sections, &buf)
	out := buf.String()

	assert.Contains(t, out, "SectID")
	assert.Contains(t, out, "5001")
	assert.Contains(t, out, "JEFF-3.1")
	assert.Contains(t, out, "2 sections")
	// Long authors are truncated with an ellipsis.
	assert.Contains(t, out, "...")
	assert.False(t, strings.Contains(out, "gets cut"))
}

func TestFormatSectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatSections(nil, &buf)
	assert.Equal(t, "No sections found.\n", buf.String())
}
