package tools

import (
	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/galvanic"
	"corrosion-engine/internal/material"
	"corrosion-engine/internal/units"
)

// PredictAeratedChlorideInput is the predict_aerated_chloride operation's
// input. This operation always evaluates one material's own free
// corrosion (its polarization curve solved for net(E)=0), so MaterialID
// is required.
type PredictAeratedChlorideInput struct {
	MaterialID          string
	TemperatureC        float64
	ChlorideMgL         float64
	PH                  float64
	DissolvedOxygenMgL  *float64
	VelocityMS          *float64
	PipeDiameterM       *float64
	PipeLengthM         *float64
}

// PredictAeratedChlorideOutput is the standalone free-corrosion rate in
// aerated chloride service, with provenance.
type PredictAeratedChlorideOutput struct {
	EMix              units.Potential
	CorrosionRateMMYr float64
	Warnings          []string
	Provenance        Envelope
}

// PredictAeratedChloride solves the free-standing electrode's own
// polarization curve (net(E) = 0) under aerated chloride conditions and
// converts the anodic current at that potential to a corrosion rate via
// Faraday's law.
func PredictAeratedChloride(cat *catalog.Catalog, in PredictAeratedChlorideInput) (PredictAeratedChlorideOutput, error) {
	m, err := material.Resolve(cat, in.MaterialID)
	if err != nil {
		return PredictAeratedChlorideOutput{}, err
	}
	if err := m.RequireNRL(); err != nil {
		return PredictAeratedChlorideOutput{}, err
	}

	var orrOverride *float64
	if in.VelocityMS != nil && in.PipeDiameterM != nil {
		lim, err := aeratedLimitingCurrentAm2(*in.VelocityMS, *in.PipeDiameterM, in.PipeLengthM, in.TemperatureC, in.DissolvedOxygenMgL)
		if err != nil {
			return PredictAeratedChlorideOutput{}, err
		}
		orrOverride = &lim
	}

	electrode, err := galvanic.BuildElectrode(cat, m, in.TemperatureC, in.ChlorideMgL, in.PH, in.DissolvedOxygenMgL, orrOverride)
	if err != nil {
		return PredictAeratedChlorideOutput{}, err
	}
	eMix, err := electrode.SolveFreeCorrosionPotential()
	if err != nil {
		return PredictAeratedChlorideOutput{}, err
	}
	iAnodic, err := electrode.AnodicCurrent(eMix)
	if err != nil {
		return PredictAeratedChlorideOutput{}, err
	}

	comp := m.Composition
	nElectrons := float64(comp.NElectrons)
	if nElectrons <= 0 {
		nElectrons = 2
	}
	mAtomic := galvanic.AtomicMassForGrade(comp.GradeType)
	mEquiv := mAtomic / nElectrons
	rhoGCm3 := comp.DensityKgM3 / 1000.0

	const secondsPerYear = 3.1536e7
	const cmToMm = 10.0
	corrosionRate := iAnodic * mEquiv * secondsPerYear * cmToMm / (nElectrons * units.FaradayConstant * rhoGCm3)

	sources := []string{comp.Source}
	if gs, ok := cat.LookupGalvanicSeries(m.ID); ok {
		sources = append(sources, gs.Source)
	}

	return PredictAeratedChlorideOutput{
		EMix:              eMix,
		CorrosionRateMMYr: corrosionRate,
		Warnings:          electrode.Warnings,
		Provenance: newEnvelope(
			"aerated_chloride_free_corrosion", "medium", sources,
			[]string{"single-metal free corrosion; no galvanic coupling to a dissimilar metal"},
			electrode.Warnings,
		),
	}, nil
}
