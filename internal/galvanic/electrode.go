// Package galvanic builds per-material polarization behavior and solves
// for the mixed potential of a galvanic couple.
package galvanic

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

const clMolarMassGPerMol = 35.45

// clMgLToMolar converts a chloride concentration from mg/L to mol/L.
func clMgLToMolar(clMgL float64) float64 {
	return (clMgL / 1000.0) / clMolarMassGPerMol
}

// Electrode is the fully built set of evaluable half-reactions for one
// material under one set of environmental conditions.
type Electrode struct {
	Material  material.Material
	Cathodics []kinetics.Cathodic
	Anodics   []kinetics.Anodic
	ECorrFree units.Potential // free-corrosion potential from the galvanic series, used as the anodic anchor point
	Warnings  []string
}

// BuildElectrode constructs the polarization behavior for m at the given
// conditions. doMgL and orrDiffusionLimitOverrideAm2 are optional: a nil
// override leaves the ORR diffusion limit to the catalog, and a nil doMgL
// is taken as 0.01 mg/L, so the ORR branch is still built.
func BuildElectrode(cat *catalog.Catalog, m material.Material, tC, clMgL, pH float64, doMgL *float64, orrDiffusionLimitOverrideAm2 *float64) (Electrode, error) {
	if err := m.RequireNRL(); err != nil {
		return Electrode{}, err
	}
	tK := units.CelsiusToKelvin(tC)
	clM := clMgLToMolar(clMgL)
	lambda0 := kinetics.EyringAttemptFrequency(tK)

	gs, ok := cat.LookupGalvanicSeries(m.ID)
	if !ok {
		return Electrode{}, &InputValidationError{Reason: fmt.Sprintf("no galvanic series entry for %s", m.ID)}
	}
	ecorr := units.NewPotential(gs.E_SHE_V, units.SHE)

	e := Electrode{Material: m, ECorrFree: ecorr}

	effectiveDO := 0.01
	if doMgL != nil {
		effectiveDO = *doMgL
	}
	if effectiveDO < 0.01 {
		e.Warnings = append(e.Warnings, "DO clamped to 0.01 mg/L to avoid log(0) in Nernst equation")
		effectiveDO = 0.01
	}
	eORR, doWarnings := redox.DOToEh(effectiveDO, pH, tC)
	e.Warnings = append(e.Warnings, doWarnings...)

	for name, spec := range m.Reactions {
		coeffs, ok := cat.LookupResponseSurface(m.ID, name)
		if !ok {
			continue
		}
		deltaG, err := responsesurface.DeltaG(m.ID, name, coeffs, clM, tC, pH)
		if err != nil {
			return Electrode{}, err
		}
		i0 := kinetics.ExchangeCurrentDensity(spec.Z, deltaG, tK, lambda0)

		if spec.Cathodic {
			var eN units.Potential
			var diffLim float64
			switch name {
			case "ORR":
				eN = eORR
				diffLim = orrLimitCm2(cat, orrDiffusionLimitOverrideAm2, tC)
			case "HER":
				eN = units.NewPotential(-(2.303*units.GasConstant*tK/units.FaradayConstant)*pH, units.SHE)
			default:
				eN = ecorr
			}
			e.Cathodics = append(e.Cathodics, kinetics.Cathodic{
				ENernst: eN, I0: i0, Alpha: spec.AlphaOrBeta, Z: spec.Z, TKelvin: tK, DiffusionLimit: diffLim,
			})
		} else {
			e.Anodics = append(e.Anodics, kinetics.Anodic{
				ENernst: ecorr, I0: i0, Beta: spec.AlphaOrBeta, Z: spec.Z, TKelvin: tK,
				Kind: spec.KineticsKind(), FilmResistance: spec.FilmResistance,
			})
		}
	}
	return e, nil
}

// orrLimitCm2 converts the ORR diffusion limit (A/m^2 from the catalog,
// or an explicit mass-transfer override) to A/cm^2.
func orrLimitCm2(cat *catalog.Catalog, overrideAm2 *float64, tC float64) float64 {
	const am2ToACm2 = 1e-4
	if overrideAm2 != nil {
		return *overrideAm2 * am2ToACm2
	}
	rec, ok := cat.NearestORRDiffusionLimit("seawater", tC)
	if !ok {
		return 0
	}
	return rec.ILimAm2 * am2ToACm2
}

// NetCurrent returns the total current density (A/cm^2) at potential e:
// sum of all cathodic branches plus sum of all anodic branches.
func (e Electrode) NetCurrent(p units.Potential) (float64, error) {
	total := 0.0
	for _, c := range e.Cathodics {
		total += c.Evaluate(p)
	}
	for _, a := range e.Anodics {
		i, err := a.Evaluate(p)
		if err != nil {
			return 0, err
		}
		total += i
	}
	return total, nil
}

// AnodicCurrent returns the sum of only the anodic branches at potential
// e, the quantity of corrosion interest. Distinct from NetCurrent.
func (e Electrode) AnodicCurrent(p units.Potential) (float64, error) {
	total := 0.0
	for _, a := range e.Anodics {
		i, err := a.Evaluate(p)
		if err != nil {
			return 0, err
		}
		total += i
	}
	return total, nil
}

// SolveFreeCorrosionPotential finds E_corr for this isolated electrode:
// the root of NetCurrent(E) = 0, bracketed around the galvanic-series
// free-corrosion potential.
func (e Electrode) SolveFreeCorrosionPotential() (units.Potential, error) {
	f := func(v float64) (float64, error) {
		return e.NetCurrent(units.NewPotential(v, e.ECorrFree.Ref))
	}
	root, err := BracketedBisection(f, e.ECorrFree.VoltsValue-0.3, e.ECorrFree.VoltsValue+0.3, 100)
	if err != nil {
		return units.Potential{}, err
	}
	return units.NewPotential(root, e.ECorrFree.Ref), nil
}

// SolveNonConvergenceError reports that a root-finder could not bracket or
// converge on a solution.
type SolveNonConvergenceError struct {
	LowerBracket, UpperBracket float64
	ResidualLower, ResidualUpper float64
}

func (e *SolveNonConvergenceError) Error() string {
	return fmt.Sprintf("SolverNonConvergence: bracket [%.4f, %.4f] V, residuals [%.3e, %.3e]",
		e.LowerBracket, e.UpperBracket, e.ResidualLower, e.ResidualUpper)
}

// Kind identifies this error's kind.
func (e *SolveNonConvergenceError) Kind() string { return "SolverNonConvergence" }

// BracketedBisection finds a root of f in [lo, hi] via bisection, bounded
// to maxIter iterations.
func BracketedBisection(f func(float64) (float64, error), lo, hi float64, maxIter int) (float64, error) {
	fLo, err := f(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := f(hi)
	if err != nil {
		return 0, err
	}
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return 0, &SolveNonConvergenceError{LowerBracket: lo, UpperBracket: hi, ResidualLower: fLo, ResidualUpper: fHi}
	}
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		fMid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fMid == 0 || (hi-lo)/2 < 1e-9 {
			return mid, nil
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi, fHi = mid, fMid
		}
	}
	return (lo + hi) / 2, nil
}
