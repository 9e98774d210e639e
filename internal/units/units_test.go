package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCelsiusKelvinRoundTrip(t *testing.T) {
	for _, tC := range []float64{-10, 0, 25, 80, 150} {
		tK := CelsiusToKelvin(tC)
		require.InDelta(t, tC, KelvinToCelsius(tK), 1e-12)
	}
}

func TestPotentialRoundTripSHEviaSCE(t *testing.T) {
	p := NewPotential(-0.35, SHE)
	roundTripped := p.To(SCE).To(SHE)
	require.InDelta(t, p.VoltsValue, roundTripped.VoltsValue, 1e-6)
}

func TestPotentialConversionOffsets(t *testing.T) {
	// E(SCE) = +0.241 V vs SHE: a potential of 0 V vs SCE is +0.241 V vs SHE.
	p := NewPotential(0, SCE)
	require.InDelta(t, 0.241, p.To(SHE).VoltsValue, 1e-9)

	agAgCl := NewPotential(0, AgAgClSatKCl)
	require.InDelta(t, 0.197, agAgCl.To(SHE).VoltsValue, 1e-9)
}

func TestPotentialSubConvertsReference(t *testing.T) {
	a := NewPotential(0.1, SHE)
	b := NewPotential(0.1, SCE) // = 0.341 V vs SHE
	require.InDelta(t, 0.1-0.341, a.Sub(b), 1e-9)
}
