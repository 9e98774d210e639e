package galvanic

import (
	"fmt"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/chemistry"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/units"
)

// Severity classifies the current ratio of a galvanic couple.
type Severity string

const (
	SeverityNegligible Severity = "Negligible"
	SeverityMinor      Severity = "Minor"
	SeverityModerate   Severity = "Moderate"
	SeveritySevere     Severity = "Severe"
)

func severityFromRatio(ratio float64) Severity {
	switch {
	case ratio <= 1:
		return SeverityNegligible
	case ratio <= 3:
		return SeverityMinor
	case ratio <= 10:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// Input bundles the environmental and geometric parameters for a
// galvanic couple solve.
type Input struct {
	AnodeID, CathodeID string
	TemperatureC        float64
	PH                  float64
	ChlorideMgL         float64
	AreaRatioCathodeOverAnode float64
	DissolvedOxygenMgL  *float64
	OrrLimitOverrideAm2 *float64
}

// Result is the outcome of a galvanic couple solve.
type Result struct {
	EMix               units.Potential
	IGalvanicAnodicACm2 float64 // the anodic branch current at E_mix, the quantity of interest
	INetACm2           float64 // diagnostic only; net current at E_mix, should be ~0
	CorrosionRateMMYr  float64
	CurrentRatio       float64
	Severity           Severity
	SolutionResistivityOhmM float64 // informational only; the mixed-potential solve assumes a zero-resistance electrolyte
	Warnings           []string
}

// InputValidationError reports an out-of-range galvanic-solver input.
type InputValidationError struct {
	Reason string
}

func (e *InputValidationError) Error() string { return fmt.Sprintf("InputValidation: %s", e.Reason) }

// Kind identifies this error's kind.
func (e *InputValidationError) Kind() string { return "InputValidation" }

const secondsPerYear = 3.1536e7
const cmToMm = 10.0

// Solve computes the mixed potential of the anode/cathode couple and the
// resulting corrosion rate on the anode.
func Solve(cat *catalog.Catalog, anode, cathode material.Material, in Input) (Result, error) {
	if catalog.NormalizeKey(anode.ID) == catalog.NormalizeKey(cathode.ID) {
		return Result{CurrentRatio: 1.0, Severity: SeverityNegligible, Warnings: []string{"anode and cathode are the same material; short-circuiting to current_ratio=1.0"}}, nil
	}

	anodeElectrode, err := BuildElectrode(cat, anode, in.TemperatureC, in.ChlorideMgL, in.PH, in.DissolvedOxygenMgL, in.OrrLimitOverrideAm2)
	if err != nil {
		return Result{}, err
	}
	cathodeElectrode, err := BuildElectrode(cat, cathode, in.TemperatureC, in.ChlorideMgL, in.PH, in.DissolvedOxygenMgL, in.OrrLimitOverrideAm2)
	if err != nil {
		return Result{}, err
	}

	areaRatio := in.AreaRatioCathodeOverAnode
	if areaRatio <= 0 {
		return Result{}, &InputValidationError{Reason: fmt.Sprintf("area_ratio must be positive, got %.3g", areaRatio)}
	}

	netFn := func(v float64) (float64, error) {
		p := units.NewPotential(v, units.SHE)
		iAnode, err := anodeElectrode.NetCurrent(p)
		if err != nil {
			return 0, err
		}
		iCathode, err := cathodeElectrode.NetCurrent(p)
		if err != nil {
			return 0, err
		}
		return iAnode + areaRatio*iCathode, nil
	}

	ecA := anodeElectrode.ECorrFree.To(units.SHE).VoltsValue
	ecC := cathodeElectrode.ECorrFree.To(units.SHE).VoltsValue
	lo, hi := ecA, ecC
	if lo > hi {
		lo, hi = hi, lo
	}
	lo -= 0.1
	hi += 0.1

	root, err := BracketedBisection(netFn, lo, hi, 100)
	if err != nil {
		return Result{}, err
	}
	eMix := units.NewPotential(root, units.SHE)

	iGalvanicAnodic, err := anodeElectrode.AnodicCurrent(eMix)
	if err != nil {
		return Result{}, err
	}
	iNet, err := netFn(root)
	if err != nil {
		return Result{}, err
	}

	isolatedECorr, err := anodeElectrode.SolveFreeCorrosionPotential()
	if err != nil {
		return Result{}, err
	}
	iIsolatedAnode, err := anodeElectrode.AnodicCurrent(isolatedECorr)
	if err != nil {
		return Result{}, err
	}
	ratio := 1.0
	if iIsolatedAnode != 0 {
		ratio = iGalvanicAnodic / iIsolatedAnode
	}

	comp := anode.Composition
	nElectrons := float64(comp.NElectrons)
	if nElectrons <= 0 {
		nElectrons = 2
	}
	mAtomic := AtomicMassForGrade(comp.GradeType)
	mEquiv := mAtomic / nElectrons
	rhoGCm3 := comp.DensityKgM3 / 1000.0

	corrosionRate := iGalvanicAnodic * mEquiv * secondsPerYear * cmToMm / (nElectrons * units.FaradayConstant * rhoGCm3)

	warnings := append([]string{}, anodeElectrode.Warnings...)
	warnings = append(warnings, cathodeElectrode.Warnings...)
	if areaRatio > 20 {
		warnings = append(warnings, fmt.Sprintf("area ratio %.1f is large; galvanic acceleration on the anode may be severe", areaRatio))
	}

	clM := chemistry.ChlorideMolarity(in.ChlorideMgL)
	var solutionResistivity float64
	if clM > 0 {
		solutionResistivity = 1.0 / chemistry.SolutionConductivity(in.TemperatureC, clM)
		if aWater := chemistry.WaterActivity(clM); aWater < 50.0 {
			warnings = append(warnings, fmt.Sprintf("water activity %.1f mol/L is well below pure water (55.55 mol/L); high chloride may alter passive-film stability beyond what this model captures", aWater))
		}
	}

	return Result{
		EMix:                eMix,
		IGalvanicAnodicACm2: iGalvanicAnodic, // the anodic branch at E_mix, never the net current
		INetACm2:            iNet,
		CorrosionRateMMYr:   corrosionRate,
		CurrentRatio:        ratio,
		Severity:            severityFromRatio(ratio),
		SolutionResistivityOhmM: solutionResistivity,
		Warnings:            warnings,
	}, nil
}

// AtomicMassForGrade approximates the dissolving species' atomic mass by
// grade family, for the Faraday rate conversion: Fe for steels and
// stainless grades, Ni for nickel alloys, Cu for every "nonferrous" grade.
// Titanium is catalogued as nonferrous and so also gets copper's mass.
func AtomicMassForGrade(gradeType string) float64 {
	switch gradeType {
	case "nickel":
		return 58.69
	case "nonferrous":
		return 63.55 // copper-nickel and similar; copper-dominated dissolution
	default:
		return 55.85 // iron, for carbon steel, austenitic/duplex/super-austenitic stainless
	}
}

