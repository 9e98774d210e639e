// Package norsok wraps the NORSOK M-506 CO2/H2S internal corrosion rate
// model behind its full 18-parameter signature. Two paths exist: a pH_in
// bypass that evaluates the documented closed form directly, and an
// upstream in-situ pH calculation path that uses CalcIterations as an
// integer loop count, never a boolean.
package norsok

import (
	"fmt"
	"math"
)

// Input bundles the model's full 18-parameter call contract.
type Input struct {
	CO2Fraction          float64
	PressureBar          float64
	TemperatureC         float64
	VSuperficialGasMS    float64
	VSuperficialLiquidMS float64
	MassFlowGasKgHr      float64
	MassFlowLiquidKgHr   float64
	VolFlowGasM3Hr       float64
	VolFlowLiquidM3Hr    float64
	HoldupPct            float64
	ViscosityGasCP       float64
	ViscosityLiquidCP    float64
	RoughnessM           float64
	DiameterM            float64
	PHIn                 float64 // > 0 bypasses upstream pH calculation
	BicarbonateMgL       float64
	IonicStrengthMgL     float64
	CalcIterations        int // 1 = unsaturated, 2 = FeCO3-saturated; a loop count, never a boolean
}

// InputValidationError reports an out-of-range NORSOK input.
type InputValidationError struct {
	Reason string
}

func (e *InputValidationError) Error() string { return fmt.Sprintf("InputValidation: %s", e.Reason) }

// Kind identifies this error's kind.
func (e *InputValidationError) Kind() string { return "InputValidation" }

// Result is the outcome of a NORSOK corrosion-rate evaluation.
type Result struct {
	CorrosionRateMMYr float64
	PHUsed            float64
	FCO2              float64
	ShearStressPa     float64
	Kt                float64
	FPH               float64
	Warnings          []string
}

// ktTable is the NORSOK M-506 temperature correction factor, Kt(T),
// taken from the public standard (the vendored table implementation was
// not present in the retrieved pack; see DESIGN.md).
var ktTable = []struct{ TC, Kt float64 }{
	{5, 0.042}, {15, 0.076}, {20, 0.10}, {40, 0.60}, {60, 4.762},
	{80, 8.927}, {90, 10.695}, {120, 7.770}, {150, 5.203},
}

// Kt interpolates the temperature correction factor, clamping to the
// table's endpoints outside [5, 150] C.
func Kt(temperatureC float64) float64 {
	if temperatureC <= ktTable[0].TC {
		return ktTable[0].Kt
	}
	n := len(ktTable)
	if temperatureC >= ktTable[n-1].TC {
		return ktTable[n-1].Kt
	}
	for i := 1; i < n; i++ {
		if temperatureC <= ktTable[i].TC {
			lo, hi := ktTable[i-1], ktTable[i]
			frac := (temperatureC - lo.TC) / (hi.TC - lo.TC)
			return lo.Kt + frac*(hi.Kt-lo.Kt)
		}
	}
	return ktTable[n-1].Kt
}

// phShapeTable is the pH-only shape of the correction factor at the
// 20C reference point, taken from the public NORSOK M-506 standard's
// qualitative curve (monotone decreasing with pH, flattening above
// pH 5.5). The full two-dimensional (T, pH) table from the vendored
// implementation was not available; see DESIGN.md.
var phShapeTable = []struct{ PH, FPH float64 }{
	{3.5, 2.25}, {4.0, 1.40}, {4.5, 0.92}, {5.0, 0.65}, {5.5, 0.52}, {6.0, 0.48}, {6.5, 0.46},
}

// FPH computes the pH correction factor at temperatureC and pH, clamping
// pH to [3.5, 6.5] with a reported warning, never a silent extrapolation.
// Temperature modulates the pH-only shape by a mild factor (corrosion is
// more pH-sensitive at higher temperature), since the full 2-D table was
// not retrieved.
func FPH(temperatureC, pH float64) (float64, []string) {
	var warnings []string
	clamped := pH
	if clamped < 3.5 {
		warnings = append(warnings, fmt.Sprintf("pH %.2f below NORSOK M-506 minimum (3.5); clamped", pH))
		clamped = 3.5
	} else if clamped > 6.5 {
		warnings = append(warnings, fmt.Sprintf("pH %.2f above NORSOK M-506 maximum (6.5); clamped", pH))
		clamped = 6.5
	}

	n := len(phShapeTable)
	var shape float64
	switch {
	case clamped <= phShapeTable[0].PH:
		shape = phShapeTable[0].FPH
	case clamped >= phShapeTable[n-1].PH:
		shape = phShapeTable[n-1].FPH
	default:
		for i := 1; i < n; i++ {
			if clamped <= phShapeTable[i].PH {
				lo, hi := phShapeTable[i-1], phShapeTable[i]
				frac := (clamped - lo.PH) / (hi.PH - lo.PH)
				shape = lo.FPH + frac*(hi.FPH-lo.FPH)
				break
			}
		}
	}

	tClamped := math.Max(5, math.Min(150, temperatureC))
	tempFactor := 1.0 + 0.15*(tClamped-20.0)/130.0
	return shape * tempFactor, warnings
}

// FugacityOfCO2 approximates the CO2 fugacity from its mole fraction and
// total pressure, using the widely published high-pressure fugacity
// correction fCO2 = y_CO2 * P * 10^(0.0031*P) (de Waard & Lotz, as
// carried into NORSOK M-506's fCO2 term).
func FugacityOfCO2(co2Fraction, pressureBar float64) float64 {
	return co2Fraction * pressureBar * math.Pow(10, 0.0031*pressureBar)
}

// ShearStress computes wall shear stress for the multiphase flow using a
// mixture-density/Blasius-friction-factor model, grounded on the same
// Reynolds-based pipe-flow approach internal/masstransfer uses for
// single-phase flow. This substitutes for the vendored multiphase
// correlation, which was not present in the retrieved pack.
func ShearStress(in Input) float64 {
	const cpToPaS = 1e-3
	totalVol := in.VolFlowGasM3Hr + in.VolFlowLiquidM3Hr
	if totalVol <= 0 {
		return 0
	}
	rhoMix := (in.MassFlowGasKgHr + in.MassFlowLiquidKgHr) / totalVol
	vMix := in.VSuperficialGasMS + in.VSuperficialLiquidMS
	holdupFrac := in.HoldupPct / 100.0
	muMix := (holdupFrac*in.ViscosityLiquidCP + (1-holdupFrac)*in.ViscosityGasCP) * cpToPaS
	if muMix <= 0 || in.DiameterM <= 0 {
		return 0
	}
	re := rhoMix * vMix * in.DiameterM / muMix
	if re <= 0 {
		return 0
	}
	frictionFactor := 0.079 * math.Pow(re, -0.25)
	return frictionFactor * 0.5 * rhoMix * vMix * vMix
}

// insituPH estimates pH from CO2 partial pressure using the de Waard &
// Milliams approximation, then applies calcIterations as an integer loop
// count of refinement passes: pass 1 is the unsaturated estimate, each
// further pass nudges pH upward to approximate the buffering effect of
// dissolved bicarbonate and FeCO3 saturation (calcIterations=2 is the
// FeCO3-saturated case).
func insituPH(co2PartialPressureBar, bicarbonateMgL, ionicStrengthMgL float64, calcIterations int) float64 {
	if co2PartialPressureBar <= 0 {
		co2PartialPressureBar = 1e-6
	}
	pH := 3.82 - 0.5*math.Log10(co2PartialPressureBar)
	for i := 1; i < calcIterations; i++ {
		pH += 0.15 + 0.05*math.Log10(1+bicarbonateMgL/100.0) - 0.02*math.Log10(1+ionicStrengthMgL/1000.0)
	}
	return pH
}

// Evaluate computes the NORSOK M-506 CO2 corrosion rate for in.
func Evaluate(in Input) (Result, error) {
	if in.CO2Fraction < 0 || in.CO2Fraction > 1 {
		return Result{}, &InputValidationError{Reason: fmt.Sprintf("CO2 fraction %.4f out of range [0,1]", in.CO2Fraction)}
	}
	if in.TemperatureC < 5 || in.TemperatureC > 150 {
		return Result{}, &InputValidationError{Reason: fmt.Sprintf("temperature %.1f C out of NORSOK M-506 range [5,150]", in.TemperatureC)}
	}
	if in.CalcIterations < 1 {
		in.CalcIterations = 1
	}

	fco2 := FugacityOfCO2(in.CO2Fraction, in.PressureBar)
	if in.CO2Fraction == 0 || fco2 <= 0 {
		return Result{CorrosionRateMMYr: 0}, nil
	}
	shear := ShearStress(in)
	if shear <= 0 {
		shear = 1e-6
	}
	kt := Kt(in.TemperatureC)

	var pH float64
	var warnings []string
	if in.PHIn > 0 {
		pH = in.PHIn
	} else {
		co2Partial := in.CO2Fraction * in.PressureBar
		pH = insituPH(co2Partial, in.BicarbonateMgL, in.IonicStrengthMgL, in.CalcIterations)
	}

	fpH, phWarnings := FPH(in.TemperatureC, pH)
	warnings = append(warnings, phWarnings...)

	exponent := 0.146 + 0.0324*math.Log10(fco2)
	corrosionRate := kt * math.Pow(fco2, 0.62) * math.Pow(shear/19.0, exponent) * fpH

	return Result{
		CorrosionRateMMYr: corrosionRate, PHUsed: pH, FCO2: fco2,
		ShearStressPa: shear, Kt: kt, FPH: fpH, Warnings: warnings,
	}, nil
}
