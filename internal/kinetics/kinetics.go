// Package kinetics implements Butler-Volmer polarization for cathodic
// and anodic half-reactions, with Koutecky-Levich diffusion limiting and
// a Newton-Raphson correction for passive-film ohmic resistance.
package kinetics

import (
	"fmt"
	"math"

	"corrosion-engine/internal/units"
)

// CurrentFloor is the numerical floor (|i| >= 1e-50 A/cm^2) both reaction
// forms clamp to, so that mixed-potential solves never divide by or take
// the log of zero.
const CurrentFloor = 1e-50

// EyringAttemptFrequency returns lambda0 = kB*T/h, the Eyring rate-theory
// prefactor, at temperature tK.
func EyringAttemptFrequency(tK float64) float64 {
	const kB = 1.380649e-23
	const h = 6.62607015e-34
	return kB * tK / h
}

// ExchangeCurrentDensity computes i0 = z*F*lambda0*exp(-deltaG/(R*T_K)),
// the Boltzmann-prefactor exchange current density derived from an
// activation energy.
func ExchangeCurrentDensity(z float64, deltaGJMol, tK, lambda0 float64) float64 {
	return z * units.FaradayConstant * lambda0 * math.Exp(-deltaGJMol/(units.GasConstant*tK))
}

// Kind distinguishes the three anodic reaction roles.
type Kind int

const (
	Oxidation Kind = iota
	Passivation
	Pitting
)

// Cathodic is a cathodic half-reaction (ORR, HER): its anodic branch is
// zero by construction, and its cathodic branch is bounded by a
// diffusion limit via Koutecky-Levich.
type Cathodic struct {
	ENernst        units.Potential
	I0             float64 // A/cm^2, positive magnitude
	Alpha          float64
	Z              float64
	TKelvin        float64
	DiffusionLimit float64 // A/cm^2, positive magnitude; 0 means "no limit"
}

// Evaluate returns the cathodic current density at potential e (A/cm^2,
// negative by convention).
func (c Cathodic) Evaluate(e units.Potential) float64 {
	eta := e.Sub(c.ENernst)
	iAct := -c.I0 * math.Exp(-c.Alpha*c.Z*units.FaradayConstant*eta/(units.GasConstant*c.TKelvin))
	if c.DiffusionLimit <= 0 {
		return clampFloor(iAct)
	}
	iLim := -c.DiffusionLimit
	// Koutecky-Levich on magnitudes, then restore sign.
	magAct := math.Abs(iAct)
	magLim := math.Abs(iLim)
	iTot := -(magAct * magLim) / (magAct + magLim)
	return clampFloor(iTot)
}

// Anodic is an anodic half-reaction (metal oxidation, passivation,
// pitting): its cathodic branch is zero by construction.
type Anodic struct {
	ENernst units.Potential
	I0      float64
	Beta    float64
	Z       float64
	TKelvin float64
	Kind    Kind
	FilmResistance float64 // ohm*cm^2, passive-film resistance; 0 for non-passivating reactions
}

// Evaluate returns the anodic current density at potential e (A/cm^2,
// positive by convention). Passivation reactions apply a short Newton
// correction for the implicit relation E_metal = E + i*R_film.
func (a Anodic) Evaluate(e units.Potential) (float64, error) {
	if a.Kind == Passivation && a.FilmResistance > 0 {
		return a.evaluateWithFilmResistance(e)
	}
	eta := e.Sub(a.ENernst)
	i := a.I0 * math.Exp(a.Beta*a.Z*units.FaradayConstant*eta/(units.GasConstant*a.TKelvin))
	return clampFloor(i), nil
}

// NewtonNonConvergenceError reports that the passive-film Newton
// correction failed to converge within the iteration budget.
type NewtonNonConvergenceError struct {
	Iterations int
	Residual   float64
}

func (e *NewtonNonConvergenceError) Error() string {
	return fmt.Sprintf("SolverNonConvergence at kinetics film-resistance Newton loop after %d iterations, residual=%.3e", e.Iterations, e.Residual)
}

// Kind identifies this error's kind.
func (e *NewtonNonConvergenceError) Kind() string { return "SolverNonConvergence" }

const maxFilmNewtonIterations = 20

// evaluateWithFilmResistance solves E_metal = E + i*R_film for i, given
// i(E_metal) = I0*exp(beta*z*F*(E_metal-E_N)/(R*T_K)), via Newton-Raphson.
func (a Anodic) evaluateWithFilmResistance(e units.Potential) (float64, error) {
	k := a.Beta * a.Z * units.FaradayConstant / (units.GasConstant * a.TKelvin)
	bareEta := e.Sub(a.ENernst)
	i := a.I0 * math.Exp(k*bareEta) // initial guess: no film drop

	f := 0.0
	for iter := 0; iter < maxFilmNewtonIterations; iter++ {
		eMetal := e.VoltsValue - i*a.FilmResistance
		eta := eMetal - a.ENernst.To(e.Ref).VoltsValue
		f = i - a.I0*math.Exp(k*eta)
		// df/di = 1 - I0*exp(k*eta)*k*(-R_film) = 1 + I0*exp(k*eta)*k*R_film
		df := 1 + a.I0*math.Exp(k*eta)*k*a.FilmResistance
		if df == 0 {
			return 0, &NewtonNonConvergenceError{Iterations: iter, Residual: f}
		}
		next := i - f/df
		if math.Abs(next-i) < 1e-18*math.Max(1, math.Abs(i)) {
			return clampFloor(next), nil
		}
		i = next
	}
	return 0, &NewtonNonConvergenceError{Iterations: maxFilmNewtonIterations, Residual: math.Abs(f)}
}

func clampFloor(i float64) float64 {
	if i >= 0 && i < CurrentFloor {
		return CurrentFloor
	}
	if i < 0 && i > -CurrentFloor {
		return -CurrentFloor
	}
	return i
}
