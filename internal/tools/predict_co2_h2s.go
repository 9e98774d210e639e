package tools

import (
	"corrosion-engine/internal/norsok"
)

// PredictCO2H2SInput is the predict_co2_h2s operation's input: the full
// 18-parameter NORSOK M-506 signature.
type PredictCO2H2SInput struct {
	norsok.Input
}

// PredictCO2H2SOutput wraps norsok.Result with provenance.
type PredictCO2H2SOutput struct {
	norsok.Result
	Provenance Envelope
}

// PredictCO2H2S evaluates the NORSOK M-506 CO2 corrosion rate model.
func PredictCO2H2S(in PredictCO2H2SInput) (PredictCO2H2SOutput, error) {
	result, err := norsok.Evaluate(in.Input)
	if err != nil {
		return PredictCO2H2SOutput{}, err
	}
	return PredictCO2H2SOutput{
		Result: result,
		Provenance: newEnvelope(
			"norsok_m506_co2", "medium",
			[]string{"NORSOK M-506 (2005), Edition 2"},
			[]string{"the published Kt(T) table point set and a pH-only correction-factor shape stand in for the vendored two-dimensional (T, pH) table; see DESIGN.md"},
			result.Warnings,
		),
	}, nil
}
