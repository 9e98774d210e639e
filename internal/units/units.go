// Package units carries the physical constants and reference-frame-tagged
// value types shared by every numerical package in this module. A
// Potential carries its reference electrode; crossing frames (vs SCE to
// vs SHE, Celsius to Kelvin) requires an explicit call into this package,
// never a bare float.
package units

import "fmt"

// FaradayConstant is F in C/mol.
const FaradayConstant = 96485.0

// GasConstant is R in J/mol/K.
const GasConstant = 8.314

// CelsiusToKelvin converts a Celsius temperature to Kelvin.
func CelsiusToKelvin(tC float64) float64 {
	return tC + 273.15
}

// KelvinToCelsius converts a Kelvin temperature to Celsius.
func KelvinToCelsius(tK float64) float64 {
	return tK - 273.15
}

// Reference identifies the reference electrode a Potential is measured
// against.
type Reference int

const (
	SHE Reference = iota
	SCE
	AgAgClSatKCl
)

func (r Reference) String() string {
	switch r {
	case SHE:
		return "SHE"
	case SCE:
		return "SCE"
	case AgAgClSatKCl:
		return "Ag/AgCl (sat KCl)"
	default:
		return "unknown reference"
	}
}

// sheOffset is the potential of each reference electrode expressed vs SHE,
// in volts. A potential vs SHE is converted to another reference by
// subtracting that reference's offset; the inverse adds it back.
var sheOffset = map[Reference]float64{
	SHE:          0.0,
	SCE:          0.241,
	AgAgClSatKCl: 0.197,
}

// Potential is a voltage tagged with the reference electrode it was
// measured against. Sub converts its argument to the receiver's reference
// before subtracting; To converts between references explicitly.
type Potential struct {
	VoltsValue float64
	Ref        Reference
}

// NewPotential constructs a Potential tagged with ref.
func NewPotential(volts float64, ref Reference) Potential {
	return Potential{VoltsValue: volts, Ref: ref}
}

// Volts returns the raw numeric value, still tagged by Ref.
func (p Potential) Volts() float64 {
	return p.VoltsValue
}

// To converts p to the requested reference electrode.
func (p Potential) To(ref Reference) Potential {
	if p.Ref == ref {
		return p
	}
	vsSHE := p.VoltsValue + sheOffset[p.Ref]
	converted := vsSHE - sheOffset[ref]
	return Potential{VoltsValue: converted, Ref: ref}
}

// Sub returns p - q in volts, converting q to p's reference first.
func (p Potential) Sub(q Potential) float64 {
	return p.VoltsValue - q.To(p.Ref).VoltsValue
}

// Add returns a new Potential offset by deltaVolts, in the same reference.
func (p Potential) Add(deltaVolts float64) Potential {
	return Potential{VoltsValue: p.VoltsValue + deltaVolts, Ref: p.Ref}
}

func (p Potential) String() string {
	return fmt.Sprintf("%.4f V vs %s", p.VoltsValue, p.Ref)
}
