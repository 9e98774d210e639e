package tools

import (
	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/pitting"
)

// CalculatePRENInput is the calculate_pren operation's input: either a
// material id to look up, or an explicit composition to compute from
// directly.
type CalculatePRENInput struct {
	MaterialID string // if non-empty, composition is looked up from the catalog and Composition is ignored

	CrPct, MoPct, NPct float64
	GradeType          string
}

// CalculatePRENOutput is the PREN value plus its interpretation band
// (low/medium/high/very high).
type CalculatePRENOutput struct {
	PREN            float64
	InterpretationBand string
	Provenance      Envelope
}

func prenBand(pren float64) string {
	switch {
	case pren < 25:
		return "low (avoid for seawater service)"
	case pren < 35:
		return "medium (acceptable for moderate-temperature chloride service)"
	case pren < 45:
		return "high (good for seawater up to ~80 C)"
	default:
		return "very high (excellent pitting resistance)"
	}
}

// CalculatePREN computes PREN either from a resolved material's catalog
// composition or from an explicit composition.
func CalculatePREN(cat *catalog.Catalog, in CalculatePRENInput) (CalculatePRENOutput, error) {
	crPct, moPct, nPct, gradeType := in.CrPct, in.MoPct, in.NPct, in.GradeType
	var sources []string
	if in.MaterialID != "" {
		m, err := material.Resolve(cat, in.MaterialID)
		if err != nil {
			return CalculatePRENOutput{}, err
		}
		crPct, moPct, nPct, gradeType = m.Composition.CrPct, m.Composition.MoPct, m.Composition.NPct, m.Composition.GradeType
		sources = append(sources, m.Composition.Source)
	}

	pren := pitting.CalculatePREN(crPct, moPct, nPct, gradeType)

	return CalculatePRENOutput{
		PREN:               pren,
		InterpretationBand: prenBand(pren),
		Provenance: newEnvelope(
			"pren_calculator", "high", sources,
			[]string{"PREN = %Cr + 3.3*%Mo + 16*%N"},
			nil,
		),
	}, nil
}
