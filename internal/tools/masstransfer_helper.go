package tools

import (
	"corrosion-engine/internal/chemistry"
	"corrosion-engine/internal/masstransfer"
	"corrosion-engine/internal/redox"
)

// aeratedLimitingCurrentAm2 computes the flow-driven oxygen-diffusion
// limiting current (A/m^2) for a pipe of diameter/length carrying aerated
// water at velocityMS. Shared by assess_galvanic and
// predict_aerated_chloride, the two operations that accept an optional
// {v, D, L, geometry} flow override.
func aeratedLimitingCurrentAm2(velocityMS, diameterM float64, lengthM *float64, temperatureC float64, doMgL *float64) (float64, error) {
	effectiveDO := redox.DOSaturation(temperatureC)
	if doMgL != nil {
		effectiveDO = *doMgL
	}
	cO2MolM3 := (effectiveDO / 32.0) // mg/L -> mol/m^3 (1 mg/L O2 = 1/32 mol/m^3)

	l := diameterM * 200.0 // representative downstream length when not supplied
	if lengthM != nil && *lengthM > 0 {
		l = *lengthM
	}

	params := masstransfer.FlowParams{
		Geometry:       masstransfer.Pipe,
		VelocityMS:     velocityMS,
		CharLengthM:    diameterM,
		DensityKgM3:    1025.0, // seawater-representative; the engine does not model brine density separately
		ViscosityPaS:   chemistry.WaterKinematicViscosity(temperatureC) * 1025.0,
		DiffusivityM2S: chemistry.OxygenDiffusivityInWater(temperatureC),
	}
	const nElectronsORR = 4.0
	iLim, err := masstransfer.LimitingCurrent(params, l, nElectronsORR, cO2MolM3)
	if err != nil {
		return 0, err
	}
	return iLim, nil
}
