package tools

import (
	"corrosion-engine/internal/redox"
	"corrosion-engine/internal/units"
)

// DOToEhInput is the do_to_eh conversion's input.
type DOToEhInput struct {
	DOMgL, PH, TemperatureC float64
}

// DOToEhOutput is the redox potential (V vs SHE) with provenance.
type DOToEhOutput struct {
	EhVoltsSHE float64
	Warnings   []string
	Provenance Envelope
}

// DOToEh converts dissolved oxygen to redox potential via the ORR Nernst
// equation.
func DOToEh(in DOToEhInput) DOToEhOutput {
	eh, warnings := redox.DOToEh(in.DOMgL, in.PH, in.TemperatureC)
	return DOToEhOutput{
		EhVoltsSHE: eh.To(units.SHE).VoltsValue,
		Warnings:   warnings,
		Provenance: newEnvelope("do_eh_nernst_conversion", "high", nil, []string{"ORR equilibrium (O2 + 2H2O + 4e- -> 4OH-) at the stated pH/T"}, warnings),
	}
}

// EhToDOInput is the eh_to_do conversion's input.
type EhToDOInput struct {
	EhVoltsSHE, PH, TemperatureC float64
}

// EhToDOOutput is the dissolved-oxygen concentration (mg/L) with
// provenance.
type EhToDOOutput struct {
	DOMgL      float64
	Warnings   []string
	Provenance Envelope
}

// EhToDO is the inverse of DOToEh.
func EhToDO(in EhToDOInput) EhToDOOutput {
	doMgL, warnings := redox.EhToDO(units.NewPotential(in.EhVoltsSHE, units.SHE), in.PH, in.TemperatureC)
	return EhToDOOutput{
		DOMgL:      doMgL,
		Warnings:   warnings,
		Provenance: newEnvelope("eh_do_nernst_conversion", "high", nil, []string{"ORR equilibrium (O2 + 2H2O + 4e- -> 4OH-) at the stated pH/T"}, warnings),
	}
}

// ORPToEhInput is the orp_to_eh conversion's input. Ref names the
// reference electrode the ORP reading was taken against ("SHE", "SCE",
// "AgAgCl").
type ORPToEhInput struct {
	ORPMV float64
	Ref   string
}

// ORPToEhOutput is the Eh (V vs SHE) with provenance.
type ORPToEhOutput struct {
	EhVoltsSHE float64
	Provenance Envelope
}

func parseReference(name string) (units.Reference, []string) {
	switch name {
	case "", "SHE":
		return units.SHE, nil
	case "SCE":
		return units.SCE, nil
	case "AgAgCl", "Ag/AgCl":
		return units.AgAgClSatKCl, nil
	default:
		return units.SHE, []string{"unrecognized reference electrode " + name + "; defaulted to SHE"}
	}
}

// ORPToEh converts an ORP meter reading vs Ref to Eh vs SHE.
func ORPToEh(in ORPToEhInput) ORPToEhOutput {
	ref, warnings := parseReference(in.Ref)
	eh := redox.ORPToEh(in.ORPMV, ref)
	assumptions := []string{"reference-electrode conversion applied"}
	return ORPToEhOutput{
		EhVoltsSHE: eh.To(units.SHE).VoltsValue,
		Provenance: newEnvelope("orp_eh_reference_conversion", "high", nil, assumptions, warnings),
	}
}

// EhToORPInput is the eh_to_orp conversion's input.
type EhToORPInput struct {
	EhVoltsSHE float64
	Ref        string
}

// EhToORPOutput is the ORP reading (mV vs Ref) with provenance.
type EhToORPOutput struct {
	ORPMV      float64
	Provenance Envelope
}

// EhToORP is the inverse of ORPToEh.
func EhToORP(in EhToORPInput) EhToORPOutput {
	ref, warnings := parseReference(in.Ref)
	orp := redox.EhToORP(units.NewPotential(in.EhVoltsSHE, units.SHE), ref)
	assumptions := []string{"reference-electrode conversion applied"}
	return EhToORPOutput{
		ORPMV:      orp,
		Provenance: newEnvelope("eh_orp_reference_conversion", "high", nil, assumptions, warnings),
	}
}
