// Package pourbaix evaluates simplified E-pH (Pourbaix) diagrams for a
// fixed set of elements using tabulated standard electrode potentials and
// the Nernst equation. It is a simplified thermodynamic engineering
// estimate, not a PHREEQC-grade speciation model.
package pourbaix

import (
	"fmt"
	"math"

	"corrosion-engine/internal/units"
)

// Region classifies a point on the E-pH plane.
type Region string

const (
	Immunity    Region = "immunity"
	Passivation Region = "passivation"
	Corrosion   Region = "corrosion"
)

// Point is one (pH, E) coordinate, E in volts vs SHE.
type Point struct {
	PH float64
	E  float64
}

// Boundary is one equilibrium line between two stability regions.
type Boundary struct {
	Type     string // e.g. "immunity_corrosion", "corrosion_passivation"
	Equation string
	Points   []Point
}

// reaction describes one literature half-reaction used to build a
// boundary line, with standard potentials from Pourbaix (1974)/
// Bard-Parsons-Jordan (1985).
type reaction struct {
	Type        string
	Equation    string
	E0VSHE      float64 // zero value means "pH-only estimate, no tabulated E0"
	HasE0       bool
	PHDependent bool
	NElectrons  float64
	NProtons    float64
}

// elementReactions holds the immunity/corrosion and corrosion/passivation
// boundary reactions for each supported element.
var elementReactions = map[string][]reaction{
	"Fe": {
		{Type: "immunity_corrosion", Equation: "Fe -> Fe2+ + 2e-", E0VSHE: -0.447, HasE0: true, NElectrons: 2},
		{Type: "corrosion_passivation", Equation: "3Fe2+ + 4H2O -> Fe3O4 + 8H+ + 2e-", E0VSHE: 0.98, HasE0: true, PHDependent: true, NElectrons: 2, NProtons: 8},
	},
	"Cr": {
		{Type: "immunity_corrosion", Equation: "Cr -> Cr3+ + 3e-", E0VSHE: -0.744, HasE0: true, NElectrons: 3},
		{Type: "corrosion_passivation", Equation: "2Cr3+ + 3H2O -> Cr2O3 + 6H+", HasE0: false, PHDependent: true, NElectrons: 3, NProtons: 6},
	},
	"Ni": {
		{Type: "immunity_corrosion", Equation: "Ni -> Ni2+ + 2e-", E0VSHE: -0.257, HasE0: true, NElectrons: 2},
		{Type: "corrosion_passivation", Equation: "Ni2+ + 2H2O -> Ni(OH)2 + 2H+", HasE0: false, PHDependent: true, NElectrons: 2, NProtons: 2},
	},
	"Cu": {
		{Type: "immunity_corrosion", Equation: "Cu -> Cu2+ + 2e-", E0VSHE: 0.340, HasE0: true, NElectrons: 2},
		{Type: "corrosion_passivation", Equation: "2Cu2+ + H2O -> Cu2O + 2H+", E0VSHE: 0.203, HasE0: true, PHDependent: true, NElectrons: 2, NProtons: 2},
	},
	"Ti": {
		{Type: "immunity_corrosion", Equation: "Ti -> Ti3+ + 3e-", E0VSHE: -1.630, HasE0: true, NElectrons: 3},
		{Type: "corrosion_passivation", Equation: "Ti3+ + 2H2O -> TiO2 + 4H+ + e-", HasE0: false, PHDependent: true, NElectrons: 1, NProtons: 4},
	},
	"Al": {
		{Type: "immunity_corrosion", Equation: "Al -> Al3+ + 3e-", E0VSHE: -1.662, HasE0: true, NElectrons: 3},
		{Type: "corrosion_passivation", Equation: "2Al3+ + 3H2O -> Al2O3 + 6H+", HasE0: false, PHDependent: true, NElectrons: 3, NProtons: 6},
	},
}

// UnsupportedElementError reports an element outside the fixed set this
// evaluator carries tabulated potentials for.
type UnsupportedElementError struct {
	Element string
}

func (e *UnsupportedElementError) Error() string {
	return fmt.Sprintf("InputValidation: element %q not supported for Pourbaix evaluation; supported: Fe, Cr, Ni, Cu, Ti, Al", e.Element)
}

// Kind identifies this error's kind.
func (e *UnsupportedElementError) Kind() string { return "InputValidation" }

// WaterLines holds the two water-stability boundaries shared by every
// diagram: O2/H2O (upper) and H+/H2 (lower).
type WaterLines struct {
	O2Evolution []Point
	H2Evolution []Point
}

// Diagram is the full evaluated Pourbaix diagram for one element.
type Diagram struct {
	Element              string
	TemperatureC         float64
	SolubleConcentrationM float64
	Boundaries           []Boundary
	WaterLines           WaterLines
	PHGrid               []float64
	EGrid                []float64
	RegionGrid           [][]Region // RegionGrid[i][j] is the region at (EGrid[i], PHGrid[j])
}

// boundaryPotential evaluates one reaction's E-pH boundary at a single
// pH via the Nernst equation.
func boundaryPotential(r reaction, pH, tK, solubleConcM float64) (float64, bool) {
	rt := units.GasConstant * tK
	if !r.PHDependent {
		eCorr := (rt / (r.NElectrons * units.FaradayConstant)) * math.Log(solubleConcM)
		return r.E0VSHE + eCorr, true
	}
	phCorrection := -(rt / units.FaradayConstant) * (r.NProtons / r.NElectrons) * 2.303 * pH
	if r.HasE0 {
		return r.E0VSHE + phCorrection, true
	}
	// No tabulated E0 for this oxide: use the literature-typical
	// passivation-onset slope (-59 mV/pH at 25C) anchored at 0.5 V_SHE
	// at pH 0.
	return -0.059*pH + 0.5, true
}

// buildBoundaries evaluates every reaction for element across phGrid.
func buildBoundaries(element string, tK, solubleConcM float64, phGrid []float64) []Boundary {
	var boundaries []Boundary
	for _, r := range elementReactions[element] {
		var pts []Point
		for _, pH := range phGrid {
			e, ok := boundaryPotential(r, pH, tK, solubleConcM)
			if ok {
				pts = append(pts, Point{PH: pH, E: e})
			}
		}
		boundaries = append(boundaries, Boundary{Type: r.Type, Equation: r.Equation, Points: pts})
	}
	return boundaries
}

// waterStabilityLines computes the O2/H2O and H+/H2 boundaries:
// E = 1.229 - 0.0591*pH and E = 0 - 0.0591*pH.
func waterStabilityLines(tK float64, phGrid []float64) WaterLines {
	phFactor := -(units.GasConstant * tK / units.FaradayConstant) * 2.303
	var wl WaterLines
	for _, pH := range phGrid {
		wl.H2Evolution = append(wl.H2Evolution, Point{PH: pH, E: 0.0 + phFactor*pH})
		wl.O2Evolution = append(wl.O2Evolution, Point{PH: pH, E: 1.229 + phFactor*pH})
	}
	return wl
}

// interpolateBoundary linearly interpolates a boundary's E value at pH,
// returning ok=false when pH falls outside the boundary's tabulated
// range.
func interpolateBoundary(points []Point, pH float64) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	if pH < points[0].PH || pH > points[len(points)-1].PH {
		return 0, false
	}
	for i := 1; i < len(points); i++ {
		if pH <= points[i].PH {
			p0, p1 := points[i-1], points[i]
			if p1.PH == p0.PH {
				return p0.E, true
			}
			frac := (pH - p0.PH) / (p1.PH - p0.PH)
			return p0.E + frac*(p1.E-p0.E), true
		}
	}
	return points[len(points)-1].E, true
}

// ClassifyPoint classifies a single (pH, E) point into immunity,
// passivation, or corrosion.
func ClassifyPoint(boundaries []Boundary, pH, e float64) Region {
	var immunityE, passivationE float64
	haveImmunity, havePassivation := false, false
	for _, b := range boundaries {
		switch b.Type {
		case "immunity_corrosion":
			if v, ok := interpolateBoundary(b.Points, pH); ok {
				immunityE, haveImmunity = v, true
			}
		case "corrosion_passivation":
			if v, ok := interpolateBoundary(b.Points, pH); ok {
				passivationE, havePassivation = v, true
			}
		}
	}
	if haveImmunity && e < immunityE {
		return Immunity
	}
	if haveImmunity && havePassivation && immunityE <= e && e < passivationE {
		return Passivation
	}
	return Corrosion
}

// linspace returns n evenly spaced points in [lo, hi] inclusive.
func linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// Evaluate builds the full Pourbaix diagram for element.
func Evaluate(element string, temperatureC, solubleConcentrationM, phMin, phMax, eMin, eMax float64, gridPoints int) (Diagram, error) {
	if _, ok := elementReactions[element]; !ok {
		return Diagram{}, &UnsupportedElementError{Element: element}
	}
	if gridPoints < 2 {
		gridPoints = 50
	}
	tK := units.CelsiusToKelvin(temperatureC)
	phGrid := linspace(phMin, phMax, gridPoints)
	eGrid := linspace(eMin, eMax, gridPoints)

	boundaries := buildBoundaries(element, tK, solubleConcentrationM, phGrid)
	waterLines := waterStabilityLines(tK, phGrid)

	regionGrid := make([][]Region, len(eGrid))
	for i, e := range eGrid {
		row := make([]Region, len(phGrid))
		for j, pH := range phGrid {
			row[j] = ClassifyPoint(boundaries, pH, e)
		}
		regionGrid[i] = row
	}

	return Diagram{
		Element: element, TemperatureC: temperatureC, SolubleConcentrationM: solubleConcentrationM,
		Boundaries: boundaries, WaterLines: waterLines,
		PHGrid: phGrid, EGrid: eGrid, RegionGrid: regionGrid,
	}, nil
}
