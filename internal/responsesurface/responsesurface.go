// Package responsesurface evaluates the quadratic response-surface
// polynomial giving the activation energy dG for an electrochemical
// half-reaction as a function of chloride concentration, temperature,
// and pH. The fitted polynomial takes Kelvin; DeltaG converts from
// Celsius at its boundary and never accepts a bare Kelvin argument.
package responsesurface

import (
	"fmt"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/units"
)

// OutOfValidatedRegionError reports that a response-surface evaluation
// produced a non-physical (<=0) activation energy, meaning the requested
// operating point lies outside the region the polynomial was fitted over.
type OutOfValidatedRegionError struct {
	Material    string
	Reaction    string
	ClMolar     float64
	TCelsius    float64
	PH          float64
	ComputedDeltaG float64
}

func (e *OutOfValidatedRegionError) Error() string {
	return fmt.Sprintf(
		"OutOfValidatedRegion at response_surface for %s/%s at Cl=%.3f M, T=%.1f C, pH=%.1f (computed deltaG=%.1f J/mol)",
		e.Material, e.Reaction, e.ClMolar, e.TCelsius, e.PH, e.ComputedDeltaG,
	)
}

// Kind identifies this error's kind.
func (e *OutOfValidatedRegionError) Kind() string { return "OutOfValidatedRegion" }

// DeltaGNoPH evaluates the quadratic polynomial without the pH
// interpolation step, converting T to Kelvin first. It does not check
// positivity; callers needing the validated, pH-corrected value should
// use DeltaG.
func DeltaGNoPH(coeffs catalog.ResponseSurfaceCoeffs, clMolar, tCelsius float64) float64 {
	tK := units.CelsiusToKelvin(tCelsius)
	return coeffs.P00 +
		coeffs.P10*clMolar +
		coeffs.P01*tK +
		coeffs.P20*clMolar*clMolar +
		coeffs.P11*clMolar*tK +
		coeffs.P02*tK*tK
}

// DeltaG evaluates the full activation energy including the pH linear
// interpolation between 0.9x and 1.1x the pH-free value, and fails
// explicitly if the result is non-physical.
func DeltaG(material, reaction string, coeffs catalog.ResponseSurfaceCoeffs, clMolar, tCelsius, pH float64) (float64, error) {
	noPH := DeltaGNoPH(coeffs, clMolar, tCelsius)
	dgMax := 1.1 * noPH
	dgMin := 0.9 * noPH

	phRange := coeffs.PHMax - coeffs.PHMin
	var dg float64
	if phRange == 0 {
		dg = dgMin
	} else {
		slope := (dgMax - dgMin) / phRange
		dg = slope*(pH-coeffs.PHMin) + dgMin
	}

	if dg <= 0 {
		return dg, &OutOfValidatedRegionError{
			Material: material, Reaction: reaction,
			ClMolar: clMolar, TCelsius: tCelsius, PH: pH,
			ComputedDeltaG: dg,
		}
	}
	return dg, nil
}
