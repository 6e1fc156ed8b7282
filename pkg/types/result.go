// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the macs-engine pipeline.
package types

import "time"

// MACSResult holds one Maxwellian-averaged cross section computed for a
// resolved dataset at a single thermal temperature.
type MACSResult struct {
	// Target is the target nuclide (e.g. "Mo-94").
	Target string `json:"target" yaml:"target"`

	// Reaction is the reaction channel (e.g. "n,g").
	Reaction string `json:"reaction" yaml:"reaction"`

	// Library is the evaluated-data library the dataset came from
	// (e.g. "JEFF-3.1").
	Library string `json:"library" yaml:"library"`

	// AtomicMass is the atomic mass number used for the reduced-mass factor.
	AtomicMass float64 `json:"atomic_mass" yaml:"atomic_mass"`

	// TemperatureKeV is the thermal energy kT in keV.
	TemperatureKeV float64 `json:"temperature_kev" yaml:"temperature_kev"`

	// MACSMillibarns is the computed Maxwellian-averaged cross section.
	MACSMillibarns float64 `json:"macs_mb" yaml:"macs_mb"`

	// Points is the number of (energy, cross section) samples integrated.
	Points int `json:"points" yaml:"points"`

	// MAT identifies the evaluated material the point series came from.
	MAT int `json:"mat,omitempty" yaml:"mat,omitempty"`

	// ComputedAt is when the value was calculated.
	ComputedAt time.Time `json:"computed_at" yaml:"computed_at"`
}
