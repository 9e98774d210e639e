package tools

import (
	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/pitting"
)

// AssessLocalizedInput is the assess_localized operation's input.
type AssessLocalizedInput struct {
	MaterialID         string
	TemperatureC       float64
	ChlorideMgL        float64
	PH                 float64
	DissolvedOxygenMgL *float64
}

// AssessLocalizedOutput wraps pitting.Result with provenance and the
// recommendation text emitted on tier disagreement.
type AssessLocalizedOutput struct {
	pitting.Result
	Recommendations []string
	Provenance      Envelope
}

// AssessLocalized runs the dual-tier pitting assessor for a single
// material.
func AssessLocalized(cat *catalog.Catalog, in AssessLocalizedInput) (AssessLocalizedOutput, error) {
	m, err := material.Resolve(cat, in.MaterialID)
	if err != nil {
		return AssessLocalizedOutput{}, err
	}

	result := pitting.Assess(cat, m, in.TemperatureC, in.ChlorideMgL, in.PH, in.DissolvedOxygenMgL)

	var warnings []string
	warnings = append(warnings, result.Tier1.Warnings...)
	if result.Tier2 != nil {
		warnings = append(warnings, result.Tier2.Warnings...)
	}

	var recs []string
	if result.Disagreement.Detected {
		recs = append(recs, result.Disagreement.Recommendation)
	}
	if result.Tier1.CPTIsEstimated {
		recs = append(recs, "CPT is PREN-estimated, not tabulated; confirm with ASTM G48 testing before final material selection")
	}

	sources := []string{m.Composition.Source}
	if rec, ok := cat.LookupCPT(m.ID); ok {
		sources = append(sources, rec.Source)
	}
	if rec, ok := cat.LookupChlorideThreshold(m.ID); ok {
		sources = append(sources, rec.Source)
	}

	confidence := "high"
	if result.Tier2 == nil {
		confidence = "medium" // Tier-1-only, empirical correlation rather than mechanistic
	}

	return AssessLocalizedOutput{
		Result:          result,
		Recommendations: recs,
		Provenance: newEnvelope(
			"dual_tier_pitting_assessor", confidence, sources,
			[]string{"ISO 18070 chloride thresholds are for the tabulated test solution, not the caller's exact brine"},
			warnings,
		),
	}, nil
}
