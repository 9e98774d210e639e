package tools

import (
	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/material"
)

// GetMaterialPropertiesInput is the get_material_properties operation's
// input.
type GetMaterialPropertiesInput struct {
	MaterialID string
}

// GetMaterialPropertiesOutput is the full resolved catalog record for one
// material.
type GetMaterialPropertiesOutput struct {
	material.Material
	CPT             *catalog.CPTRecord
	GalvanicSeries  *catalog.GalvanicSeriesRecord
	ChlorideThreshold *catalog.ChlorideThresholdRecord
	Provenance      Envelope
}

// GetMaterialProperties resolves id and assembles every catalog record
// the engine holds for it.
func GetMaterialProperties(cat *catalog.Catalog, in GetMaterialPropertiesInput) (GetMaterialPropertiesOutput, error) {
	m, err := material.Resolve(cat, in.MaterialID)
	if err != nil {
		return GetMaterialPropertiesOutput{}, err
	}

	out := GetMaterialPropertiesOutput{Material: m}
	sources := []string{m.Composition.Source}
	if rec, ok := cat.LookupCPT(m.ID); ok {
		out.CPT = &rec
		sources = append(sources, rec.Source)
	}
	if rec, ok := cat.LookupGalvanicSeries(m.ID); ok {
		out.GalvanicSeries = &rec
		sources = append(sources, rec.Source)
	}
	if rec, ok := cat.LookupChlorideThreshold(m.ID); ok {
		out.ChlorideThreshold = &rec
		sources = append(sources, rec.Source)
	}

	out.Provenance = newEnvelope("catalog_lookup", "high", sources, nil, nil)
	return out, nil
}
