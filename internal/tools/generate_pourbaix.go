package tools

import (
	"corrosion-engine/internal/pourbaix"
)

// GeneratePourbaixInput is the generate_pourbaix operation's input.
type GeneratePourbaixInput struct {
	Element               string
	TemperatureC          float64
	SolubleConcentrationM float64
	PHMin, PHMax          float64
	EMin, EMax            float64
	GridPoints            int

	// PointPH, PointE optionally classify one user-supplied (pH, E) point.
	PointPH, PointE *float64
}

// GeneratePourbaixOutput wraps pourbaix.Diagram with provenance and the
// optional classified point.
type GeneratePourbaixOutput struct {
	pourbaix.Diagram
	PointRegion pourbaix.Region
	HasPoint    bool
	Provenance  Envelope
}

// GeneratePourbaix evaluates the simplified E-pH diagram for Element.
func GeneratePourbaix(in GeneratePourbaixInput) (GeneratePourbaixOutput, error) {
	diagram, err := pourbaix.Evaluate(
		in.Element, in.TemperatureC, in.SolubleConcentrationM,
		in.PHMin, in.PHMax, in.EMin, in.EMax, in.GridPoints,
	)
	if err != nil {
		return GeneratePourbaixOutput{}, err
	}

	out := GeneratePourbaixOutput{
		Diagram: diagram,
		Provenance: newEnvelope(
			"pourbaix_nernst_evaluator", "low-medium",
			[]string{"Pourbaix (1974) Atlas of Electrochemical Equilibria", "Bard, Parsons, Jordan (1985) Standard Potentials in Aqueous Solution"},
			[]string{"no activity coefficients, no complex-species speciation; engineering estimate, not PHREEQC-grade"},
			nil,
		),
	}
	if in.PointPH != nil && in.PointE != nil {
		out.HasPoint = true
		out.PointRegion = pourbaix.ClassifyPoint(diagram.Boundaries, *in.PointPH, *in.PointE)
	}
	return out, nil
}
