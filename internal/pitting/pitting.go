// Package pitting implements the dual-tier pitting risk assessor:
// Tier 1 (PREN/CPT/chloride-threshold, empirical, always available) and
// Tier 2 (E_pit vs E_mix, mechanistic, available for NRL-set materials
// with DO supplied), with tier-disagreement reporting.
package pitting

import (
	"fmt"
	"math"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/kinetics"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/redox"
	"corrosion-engine/internal/responsesurface"
	"corrosion-engine/internal/units"
)

// Susceptibility is the shared four-level risk scale used by both tiers.
type Susceptibility string

const (
	Low      Susceptibility = "low"
	Moderate Susceptibility = "moderate"
	High     Susceptibility = "high"
	Critical Susceptibility = "critical"
)

var susceptibilityRank = map[Susceptibility]int{Low: 0, Moderate: 1, High: 2, Critical: 3}

func worseOf(a, b Susceptibility) Susceptibility {
	if susceptibilityRank[a] >= susceptibilityRank[b] {
		return a
	}
	return b
}

// CalculatePREN computes the Pitting Resistance Equivalent Number:
// %Cr + 3.3*%Mo + 16*%N, uniformly across grade families.
func CalculatePREN(crPct, moPct, nPct float64, gradeType string) float64 {
	return crPct + 3.3*moPct + 16.0*nPct
}

// Tier1Result is the empirical pitting assessment, always available when
// the material's composition is in the catalog.
type Tier1Result struct {
	PREN              float64
	CPT_C             float64
	CPTIsEstimated    bool // true when no ASTM G48 tabulation exists and CPT was estimated from PREN
	ChlorideThresholdMgL float64
	MarginC           float64 // CPT - operating temperature
	Susceptibility    Susceptibility
	Warnings          []string
}

// cptCorrelationFallback maps grade family to the PREN-based CPT
// correlation (CPT = m*PREN + b), used only when no ASTM G48 tabulation
// exists.
var cptCorrelationFallback = map[string]struct{ M, B float64 }{
	"austenitic":       {1.0, -10.0},
	"duplex":           {1.0, -15.0},
	"superaustenitic":  {1.0, -5.0},
	"super_austenitic":  {1.0, -5.0},
}

func cptFallback(pren float64, gradeType string) float64 {
	corr, ok := cptCorrelationFallback[gradeType]
	if !ok {
		corr = cptCorrelationFallback["austenitic"]
	}
	return corr.M*pren + corr.B
}

// AssessTier1 evaluates the empirical pitting tier for m at the given
// operating point. It never fails for lack of a CPT tabulation; it falls
// back to a PREN-based estimate and flags the degradation with a
// warning.
func AssessTier1(cat *catalog.Catalog, m material.Material, temperatureC, clMgL, pH float64) Tier1Result {
	comp := m.Composition
	pren := CalculatePREN(comp.CrPct, comp.MoPct, comp.NPct, comp.GradeType)

	var warnings []string
	var cpt float64
	estimated := false
	if rec, ok := cat.LookupCPT(m.ID); ok {
		cpt = rec.CPT_C
	} else {
		cpt = cptFallback(pren, comp.GradeType)
		estimated = true
		warnings = append(warnings, fmt.Sprintf("no ASTM G48 CPT tabulation for %s; using PREN-based estimate %.1f C (+/-20C uncertainty)", m.ID, cpt))
	}
	marginC := cpt - temperatureC

	threshold := chlorideThreshold(cat, m, temperatureC, pH)

	var susc Susceptibility
	switch {
	case marginC > 20.0 && clMgL < threshold*0.5:
		susc = Low
	case marginC > 10.0 && clMgL < threshold:
		susc = Moderate
	case marginC > 0 || clMgL < threshold*1.5:
		susc = High
	default:
		susc = Critical
	}

	return Tier1Result{
		PREN: pren, CPT_C: cpt, CPTIsEstimated: estimated,
		ChlorideThresholdMgL: threshold, MarginC: marginC,
		Susceptibility: susc, Warnings: warnings,
	}
}

// chlorideThreshold applies the temperature and pH corrections to the
// catalog's 25C reference threshold, per ISO 18070:
// Cl(T) = Cl_25C * exp(-k*(T-25)) * pH_factor.
func chlorideThreshold(cat *catalog.Catalog, m material.Material, temperatureC, pH float64) float64 {
	rec, ok := cat.LookupChlorideThreshold(m.ID)
	if !ok {
		return 100.0 // conservative fallback when no threshold is tabulated
	}
	k := 0.05
	if coeff, ok := cat.LookupTemperatureCoefficient(m.Composition.GradeType); ok {
		k = coeff.TempCoefficientPerC
	}
	clT := rec.Threshold25CMgL * math.Exp(-k*(temperatureC-25.0))
	phFactor := math.Max(0.5, math.Min(1.5, (pH-4.0)/6.0+0.5))
	return clT * phFactor
}

// Tier2Unavailable explains why the mechanistic tier could not be
// evaluated; Tier 1 always still returns.
type Tier2Unavailable struct {
	Reason string
}

func (e *Tier2Unavailable) Error() string {
	return fmt.Sprintf("Tier2Unavailable: %s", e.Reason)
}

// Kind identifies this error's kind.
func (e *Tier2Unavailable) Kind() string { return "Tier2Unavailable" }

// Tier2Result is the mechanistic pitting assessment: E_pit from
// Butler-Volmer pitting kinetics vs E_mix from DO-derived redox
// potential.
type Tier2Result struct {
	EPit           units.Potential
	EMix           units.Potential
	DeltaEVolts    float64 // E_mix - E_pit
	Susceptibility Susceptibility
	Interpretation string
	Warnings       []string
}

const defaultThresholdACm2 = 1e-6

// AssessTier2 evaluates the mechanistic pitting tier for m, requiring m
// to carry a "Pitting" ReactionSpec and requiring DO to be supplied.
// Returns *Tier2Unavailable (not a generic error) on any condition that
// should degrade Tier 2 without failing the whole call.
func AssessTier2(cat *catalog.Catalog, m material.Material, temperatureC, clMgL, pH float64, doMgL *float64) (Tier2Result, error) {
	if err := m.RequireNRL(); err != nil {
		return Tier2Result{}, &Tier2Unavailable{Reason: fmt.Sprintf("material %s has no NRL Butler-Volmer coefficients", m.ID)}
	}
	spec, ok := m.Reactions["Pitting"]
	if !ok {
		return Tier2Result{}, &Tier2Unavailable{Reason: fmt.Sprintf("material %s has no pitting reaction coefficients", m.ID)}
	}
	if doMgL == nil {
		return Tier2Result{}, &Tier2Unavailable{Reason: "dissolved oxygen not supplied; E_mix cannot be computed"}
	}

	tK := units.CelsiusToKelvin(temperatureC)
	clM := (clMgL / 1000.0) / 35.45

	coeffs, ok := cat.LookupResponseSurface(m.ID, "Pitting")
	if !ok {
		return Tier2Result{}, &Tier2Unavailable{Reason: fmt.Sprintf("no response-surface coefficients for %s/Pitting", m.ID)}
	}
	deltaG, err := responsesurface.DeltaG(m.ID, "Pitting", coeffs, clM, temperatureC, pH)
	if err != nil {
		return Tier2Result{}, &Tier2Unavailable{Reason: fmt.Sprintf("pitting Butler-Volmer solve failed: %v", err)}
	}

	lambda0 := kinetics.EyringAttemptFrequency(tK)
	i0 := kinetics.ExchangeCurrentDensity(spec.Z, deltaG, tK, lambda0)

	threshold := spec.ThresholdICm2
	if threshold <= 0 {
		threshold = defaultThresholdACm2
	}

	gs, ok := cat.LookupGalvanicSeries(m.ID)
	if !ok {
		return Tier2Result{}, &Tier2Unavailable{Reason: fmt.Sprintf("no galvanic-series entry for %s to anchor E_N", m.ID)}
	}
	eN := units.NewPotential(gs.E_SHE_V, units.SHE)

	rt := units.GasConstant * tK
	eta := (rt / (spec.AlphaOrBeta * spec.Z * units.FaradayConstant)) * math.Log(threshold/i0)
	ePit := eN.Add(eta)

	effectiveDO := 0.01
	if *doMgL > 0.01 {
		effectiveDO = *doMgL
	}
	eMix, doWarnings := redox.DOToEh(effectiveDO, pH, temperatureC)

	deltaE := eMix.To(units.SHE).VoltsValue - ePit.To(units.SHE).VoltsValue

	var susc Susceptibility
	var interp string
	switch {
	case deltaE > 0.05:
		susc = Critical
		interp = fmt.Sprintf("CRITICAL: E_mix exceeds E_pit by %.0f mV; pitting is thermodynamically highly favorable", deltaE*1000)
	case deltaE > 0:
		susc = High
		interp = fmt.Sprintf("HIGH: E_mix exceeds E_pit by %.0f mV; pitting is thermodynamically favorable", deltaE*1000)
	case deltaE > -0.1:
		susc = Moderate
		interp = fmt.Sprintf("MODERATE: E_mix is %.0f mV below E_pit; small safety margin", -deltaE*1000)
	default:
		susc = Low
		interp = fmt.Sprintf("LOW: E_mix is %.0f mV below E_pit; large safety margin", -deltaE*1000)
	}

	return Tier2Result{
		EPit: ePit, EMix: eMix, DeltaEVolts: deltaE,
		Susceptibility: susc, Interpretation: interp, Warnings: doWarnings,
	}, nil
}

// Disagreement records that Tier 1 and Tier 2 differ by more than one
// risk step.
type Disagreement struct {
	Detected       bool
	Tier1          Susceptibility
	Tier2          Susceptibility
	Recommendation string
}

// Result is the combined pitting assessment returned to callers.
type Result struct {
	Tier1          Tier1Result
	Tier2          *Tier2Result // nil when Tier 2 is unavailable
	Tier2Unavailable string      // set instead of Tier2 when mechanistic evaluation did not run
	Disagreement   Disagreement
	OverallRisk    Susceptibility
}

// Assess runs both tiers and combines them. Tier 2 is attempted only
// when doMgL is non-nil; a Tier2Unavailable does not fail the call, it
// only removes the Tier 2 fields from Result.
func Assess(cat *catalog.Catalog, m material.Material, temperatureC, clMgL, pH float64, doMgL *float64) Result {
	tier1 := AssessTier1(cat, m, temperatureC, clMgL, pH)
	result := Result{Tier1: tier1, OverallRisk: tier1.Susceptibility}

	if doMgL == nil {
		return result
	}
	tier2, err := AssessTier2(cat, m, temperatureC, clMgL, pH, doMgL)
	if err != nil {
		result.Tier2Unavailable = err.Error()
		return result
	}
	result.Tier2 = &tier2
	result.OverallRisk = worseOf(tier1.Susceptibility, tier2.Susceptibility)

	rank1 := susceptibilityRank[tier1.Susceptibility]
	rank2 := susceptibilityRank[tier2.Susceptibility]
	diff := rank1 - rank2
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		result.Disagreement = Disagreement{
			Detected: true, Tier1: tier1.Susceptibility, Tier2: tier2.Susceptibility,
			Recommendation: "Tier 2 is mechanistic; prefer it when available",
		}
	}
	return result
}
