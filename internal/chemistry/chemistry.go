// Package chemistry implements the solution-chemistry building blocks the
// kinetics and redox packages need: dissolved oxygen saturation
// (Garcia-Benson), salinity estimation from chloride, NaCl solution
// conductivity and water activity, and the small set of NaCl solution
// properties the mass-transfer correlations draw on.
package chemistry

import "math"

// ChlorideMolarity converts a chloride concentration from mg/L to mol/L
// using the chloride ion's molar mass (35.45 g/mol).
func ChlorideMolarity(chlorideMgL float64) float64 {
	const molarMassClGPerMol = 35.45
	return chlorideMgL / 1000.0 / molarMassClGPerMol
}

// DOSaturationGarciaBenson computes the dissolved-oxygen saturation
// concentration (mg/L) at 1 atm via the Garcia & Gordon (1992) polynomial,
// the model recommended by the LakeMetabolizer reference implementation
// this is grounded on.
func DOSaturationGarciaBenson(temperatureC, salinityPSU float64) float64 {
	ts := math.Log((298.15 - temperatureC) / (273.15 + temperatureC))

	const (
		a0 = 2.00907
		a1 = 3.22014
		a2 = 4.05010
		a3 = 4.94457
		a4 = -0.256847
		a5 = 3.88767
		b0 = -6.24523e-3
		b1 = -7.37614e-3
		b2 = -1.03410e-2
		b3 = -8.17083e-3
		c0 = -4.88682e-7
	)

	lnC := a0 + a1*ts + a2*ts*ts + a3*math.Pow(ts, 3) + a4*math.Pow(ts, 4) + a5*math.Pow(ts, 5) +
		salinityPSU*(b0+b1*ts+b2*ts*ts+b3*math.Pow(ts, 3)) +
		c0*salinityPSU*salinityPSU

	const mglPerMlL = 1.42905
	return math.Exp(lnC) * mglPerMlL
}

// EstimateSalinityFromChloride estimates salinity (PSU) from chloride
// concentration using the constant-composition principle: standard
// seawater (35 PSU) contains 19,354 mg/L chloride.
func EstimateSalinityFromChloride(chlorideMgL float64) float64 {
	const seawaterClMgL = 19354.0
	const seawaterSalinityPSU = 35.0
	return (chlorideMgL / seawaterClMgL) * seawaterSalinityPSU
}

// WaterKinematicViscosity returns an approximate kinematic viscosity of
// water (m^2/s) at temperatureC, using the Vogel-Fulcher-Tammann-style fit
// commonly used for engineering-grade mass-transfer correlations. Used by
// the mass-transfer package when a caller supplies temperature but not a
// measured viscosity.
func WaterKinematicViscosity(temperatureC float64) float64 {
	// mu (mPa*s) per the Vogel equation, density taken as ~1000 kg/m^3
	// for dilute brine at engineering accuracy.
	muMPaS := 2.414e-5 * math.Pow(10, 247.8/(temperatureC+133.15)) * 1000
	const rho = 1000.0
	return (muMPaS / 1000.0) / rho
}

// OxygenDiffusivityInWater returns an approximate molecular diffusivity of
// dissolved O2 in water (m^2/s) at temperatureC, via the Stokes-Einstein
// temperature scaling anchored to the well-known 25 C reference value of
// 2.1e-9 m^2/s.
func OxygenDiffusivityInWater(temperatureC float64) float64 {
	const dRef = 2.1e-9
	const tRefK = 298.15
	tK := temperatureC + 273.15
	muRef := WaterKinematicViscosity(25.0) * 1000.0
	muT := WaterKinematicViscosity(temperatureC) * 1000.0
	return dRef * (tK / tRefK) * (muRef / muT)
}

// SolutionConductivity returns the electrical conductivity (S/m) of a
// NaCl solution at temperatureC with chlorideM mol/L chloride, via the
// Wadsworth (2012) polynomial fit (J. Solution Chem. 41:715-729).
// chlorideM must be positive; the polynomial's log term is undefined at
// zero concentration.
func SolutionConductivity(temperatureC, chlorideM float64) float64 {
	if chlorideM <= 0 {
		return 0
	}
	t := temperatureC

	const b0 = -0.014
	lambda0 := 66591.0 + 2172.2*t + 9.1584*t*t
	s := 37515.0 + (-3471.9)*t + 69.11*t*t + (-1.0777)*t*t*t
	e := -23.47 * t * t
	j1 := 46091.0 + 8760.0*t + (-352.06)*t*t + 3.8403*t*t*t
	j2 := -77300.0 + (-10646.0)*t + 481.02*t*t + (-4.9759)*t*t*t
	j3 := 98097.0 + 5539.6*t + (-242.12)*t*t + 2.6452*t*t*t
	j4 := -68419.0 + (-1014.3)*t + 43.97*t*t + (-0.4871)*t*t*t
	const j5 = 22654.0
	const j6 = -2799.6

	c := chlorideM
	kMicroSCm := b0 + lambda0*c - s*math.Pow(c, 1.5) + e*c*c*math.Log(c) +
		j1*c*c + j2*math.Pow(c, 2.5) + j3*math.Pow(c, 3) +
		j4*math.Pow(c, 3.5) + j5*math.Pow(c, 4) + j6*math.Pow(c, 4.5)

	const microSCmToSM = 1.0e-6 / 0.01
	return kMicroSCm * microSCmToSM
}

// WaterActivity returns the activity of water (mol/L) in a NaCl solution
// with chlorideM mol/L chloride, via an empirical activity-coefficient
// correlation anchored to pure water's 55.55 mol/L. Lower water activity
// at high chloride indicates the brine increasingly departs from ideal
// dilute-solution behavior.
func WaterActivity(chlorideM float64) float64 {
	const molarMassNaClKgPerMol = 0.05844
	const molarMassH2OKgPerMol = 0.018015
	const waterDensityKgPerL = 0.997
	const molarityOfWater = 55.55

	massNaClPerL := molarMassNaClKgPerMol * chlorideM
	massH2OPerL := molarMassH2OKgPerMol * (waterDensityKgPerL / molarMassH2OKgPerMol)
	massPercentNaCl := massNaClPerL / (massNaClPerL + massH2OPerL) * 100

	const d1 = 1.0001
	const d2 = -0.0064603
	densityNaClSolKgPerL := d1 / (1.0 + d2*massPercentNaCl)

	massSolutionKg := densityNaClSolKgPerL
	massSolventKg := massSolutionKg - massNaClPerL
	molalityClKgMol := chlorideM / massSolventKg

	const c1 = 1.0001
	const c2 = -0.065634
	const c3 = -0.033533
	activityCoeff := (c1 + c2*molalityClKgMol) / (1.0 + c3*molalityClKgMol)

	return molarityOfWater * activityCoeff
}
