// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package macs computes Maxwellian-averaged cross sections from a
// cross-section-vs-energy series by trapezoidal integration:
//
//	MACS = (2a²/(√π·(kT)²)) · ∫ σ(E)·E·exp(−aE/kT) dE
//
// where a = A/(1+A) is the reduced-mass factor and kT the thermal energy.
package macs

import (
	"fmt"
	"math"
)

// kB is the Boltzmann constant in MeV/K.
const kB = 8.617e-11

// ValidationError reports a violated precondition of Calculate. Reason
// names the constraint that failed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "macs: " + e.Reason
}

// trapezoidArea integrates f linearly between two samples.
func trapezoidArea(f func(e, sigma float64) float64, x1, x2, y1, y2 float64) float64 {
	return 0.5 * (f(x1, y1) + f(x2, y2)) * (x2 - x1)
}

// Calculate returns the Maxwellian-averaged cross section in millibarns.
//
// Energies are in MeV and assumed ascending; crossSections are in barns and
// pair with energies index-wise; atomicMass is the mass number A;
// temperatureKeV is the thermal energy kT in keV. A pure function: no state
// survives between calls.
//
// The series is integrated piecewise with the trapezoidal rule regardless
// of any interpolation scheme the source dataset declares. A single-point
// series has no trapezoid and yields 0 mb, which is well-formed, not an
// error.
func Calculate(energies, crossSections []float64, atomicMass, temperatureKeV float64) (float64, error) {
	if len(energies) != len(crossSections) {
		return 0, &ValidationError{Reason: fmt.Sprintf(
			"energy and cross section series must have the same length (got %d and %d)",
			len(energies), len(crossSections))}
	}
	if len(energies) == 0 {
		return 0, &ValidationError{Reason: "input series cannot be empty"}
	}
	if temperatureKeV <= 0 {
		return 0, &ValidationError{Reason: fmt.Sprintf(
			"temperature must be positive (got %g keV)", temperatureKeV)}
	}

	// Temperature round-trip through Kelvin: keV → MeV → K, then kT = kB·T.
	// Kept two-step rather than simplified to temperatureKeV*1e-3 so the
	// floating-point result matches reference values derived from the same
	// formula.
	temperatureK := (temperatureKeV * 1e-3) / kB
	kT := kB * temperatureK

	a := atomicMass / (1.0 + atomicMass)

	integrand := func(e, sigma float64) float64 {
		return sigma * e * math.Exp(-(a*e)/kT)
	}

	integral := 0.0
	for i := 1; i < len(energies); i++ {
		integral += trapezoidArea(integrand,
			energies[i-1], energies[i],
			crossSections[i-1], crossSections[i])
	}

	normalization := (2.0 * a * a) / (math.Sqrt(math.Pi) * kT * kT)
	macsBarns := normalization * integral

	return macsBarns * 1000.0, nil
}
