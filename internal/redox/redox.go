// Package redox converts between dissolved oxygen concentration,
// thermodynamic redox potential (Eh, via the Nernst equation for the
// oxygen reduction reaction), and ORP meter readings referenced to a
// named reference electrode.
package redox

import (
	"math"

	"corrosion-engine/internal/chemistry"
	"corrosion-engine/internal/units"
)

// E0ORRvsSHE is the standard potential of the oxygen reduction reaction
// (O2 + 2H2O + 4e- -> 4OH-) at pH 0, 25 C, in volts vs SHE.
const E0ORRvsSHE = 1.229

const mwO2 = 32.0

// epsilonDO is the minimum dissolved-oxygen concentration used internally
// to avoid a log(0) singularity in the Nernst equation.
const epsilonDO = 0.01

// henryConstantO2 returns the temperature-dependent Henry's law constant
// for O2, in mol/(L*atm), derived from the Garcia-Benson DO saturation
// model.
func henryConstantO2(temperatureC float64) float64 {
	doSatMgL := chemistry.DOSaturationGarciaBenson(temperatureC, 0.0)
	const pO2Atm = 0.2095
	return doSatMgL / (pO2Atm * mwO2 * 1000)
}

// DOSaturation returns the air-equilibrium DO concentration (mg/L) at
// temperatureC, 1 atm.
func DOSaturation(temperatureC float64) float64 {
	return chemistry.DOSaturationGarciaBenson(temperatureC, 0.0)
}

// DOToEh converts a dissolved-oxygen concentration to redox potential
// (V vs SHE) via the ORR Nernst equation, returning any non-fatal
// warnings (DO below detection, DO above saturation).
func DOToEh(doMgL, pH, temperatureC float64) (units.Potential, []string) {
	var warnings []string
	kH := henryConstantO2(temperatureC)
	cO2MolL := doMgL / (mwO2 * 1000)
	pO2 := cO2MolL / kH

	if doMgL < epsilonDO {
		warnings = append(warnings, "DO < 0.01 mg/L (anaerobic conditions); Eh computed from ORR equilibrium may not apply where HER or sulfate reduction dominate")
		pO2 = math.Max(pO2, 1e-10)
	}

	doSat := DOSaturation(temperatureC)
	if doMgL > 1.1*doSat {
		warnings = append(warnings, "DO exceeds saturation by more than 10%; may indicate supersaturation or measurement error")
	}

	tK := temperatureC + 273.15
	rt4F := (units.GasConstant * tK) / (4.0 * units.FaradayConstant)
	eh := E0ORRvsSHE - (2.303*units.GasConstant*tK/units.FaradayConstant)*pH + rt4F*math.Log(pO2)

	return units.NewPotential(eh, units.SHE), warnings
}

// EhToDO is the inverse of DOToEh: solves the Nernst equation for p_O2,
// then converts to DO via Henry's law.
func EhToDO(eh units.Potential, pH, temperatureC float64) (float64, []string) {
	var warnings []string
	ehSHE := eh.To(units.SHE).VoltsValue

	tK := temperatureC + 273.15
	rt4F := (units.GasConstant * tK) / (4.0 * units.FaradayConstant)
	phTerm := (2.303 * units.GasConstant * tK / units.FaradayConstant) * pH
	lnPO2 := (ehSHE - E0ORRvsSHE + phTerm) / rt4F
	pO2 := math.Exp(lnPO2)

	if pO2 > 1.0 {
		warnings = append(warnings, "computed p_O2 exceeds 1 atm; this Eh is too oxidizing for ORR equilibrium and has been capped")
		pO2 = 1.0
	}
	if pO2 < 1e-10 {
		warnings = append(warnings, "computed p_O2 is negligible; this Eh indicates anaerobic/reducing conditions")
	}

	kH := henryConstantO2(temperatureC)
	cO2MolL := kH * pO2
	doMgL := cO2MolL * mwO2 * 1000
	return doMgL, warnings
}

// ORPToEh converts an ORP meter reading (mV vs ref) to Eh (V vs SHE).
func ORPToEh(orpMV float64, ref units.Reference) units.Potential {
	orpV := orpMV / 1000.0
	return units.NewPotential(orpV, ref).To(units.SHE)
}

// EhToORP converts Eh (V vs SHE) to an ORP reading (mV) vs ref.
func EhToORP(eh units.Potential, ref units.Reference) float64 {
	return eh.To(ref).VoltsValue * 1000.0
}
