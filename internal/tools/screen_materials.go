package tools

import (
	"fmt"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/pitting"
)

// ScreenEnvironment is the structured environment description
// screen_materials and screen_materials_batch assess candidates against.
// Screening reuses the engine's own dual-tier pitting assessor rather
// than a separate compatibility model. Description is carried through
// for the caller's record only.
type ScreenEnvironment struct {
	Description        string
	TemperatureC        float64
	ChlorideMgL         float64
	PH                  float64
	DissolvedOxygenMgL  *float64
}

// ScreenMaterialsInput is the screen_materials operation's input.
type ScreenMaterialsInput struct {
	Environment ScreenEnvironment
	Candidates  []string
	Application string
}

// CompatibilityTag is the three-level screening verdict.
type CompatibilityTag string

const (
	Acceptable    CompatibilityTag = "acceptable"
	Marginal      CompatibilityTag = "marginal"
	NotRecommended CompatibilityTag = "not_recommended"
)

// CandidateScreen is one candidate material's screening result.
type CandidateScreen struct {
	MaterialID    string
	Compatibility CompatibilityTag
	Notes         string
	Error         string // set instead of the above when the candidate could not be resolved/assessed
}

// ScreenMaterialsOutput is the per-candidate screening result set.
type ScreenMaterialsOutput struct {
	Results    []CandidateScreen
	Provenance Envelope
}

func compatibilityFromSusceptibility(s pitting.Susceptibility) CompatibilityTag {
	switch s {
	case pitting.Low, pitting.Moderate:
		return Acceptable
	case pitting.High:
		return Marginal
	default:
		return NotRecommended
	}
}

// ScreenMaterials screens each candidate against Environment using the
// engine's own dual-tier pitting assessment.
func ScreenMaterials(cat *catalog.Catalog, in ScreenMaterialsInput) ScreenMaterialsOutput {
	var results []CandidateScreen
	var allWarnings []string
	for _, id := range in.Candidates {
		m, err := material.Resolve(cat, id)
		if err != nil {
			results = append(results, CandidateScreen{MaterialID: id, Error: err.Error()})
			continue
		}
		assessment := pitting.Assess(cat, m, in.Environment.TemperatureC, in.Environment.ChlorideMgL, in.Environment.PH, in.Environment.DissolvedOxygenMgL)
		tag := compatibilityFromSusceptibility(assessment.OverallRisk)

		notes := fmt.Sprintf("PREN=%.1f, CPT=%.0f C (margin %.0f C vs %.0f C operating), overall_risk=%s",
			assessment.Tier1.PREN, assessment.Tier1.CPT_C, assessment.Tier1.MarginC, in.Environment.TemperatureC, assessment.OverallRisk)
		if in.Application != "" {
			notes = fmt.Sprintf("%s; application=%s", notes, in.Application)
		}
		results = append(results, CandidateScreen{MaterialID: m.ID, Compatibility: tag, Notes: notes})
		allWarnings = append(allWarnings, assessment.Tier1.Warnings...)
	}

	return ScreenMaterialsOutput{
		Results: results,
		Provenance: newEnvelope(
			"catalog_driven_material_screen", "medium", nil,
			[]string{"compatibility is derived from this engine's own Tier-1/Tier-2 pitting assessment, not a handbook semantic search"},
			allWarnings,
		),
	}
}
