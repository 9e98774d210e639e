package responsesurface

import (
	"math"
	"testing"

	"corrosion-engine/internal/catalog"

	"github.com/stretchr/testify/require"
)

func coeffs() catalog.ResponseSurfaceCoeffs {
	return catalog.ResponseSurfaceCoeffs{
		Material: "SS316", Reaction: "ORR",
		P00: 6100, P10: -900, P01: 160, P20: -52, P11: -11, P02: -0.055,
		PHMin: 0, PHMax: 14,
	}
}

func TestDeltaGPositiveInsideFittedRegion(t *testing.T) {
	dg, err := DeltaG("SS316", "ORR", coeffs(), 0.536, 25, 8)
	require.NoError(t, err)
	require.Greater(t, dg, 0.0)
}

func TestDeltaGUsesKelvinNotCelsius(t *testing.T) {
	c := coeffs()
	// The polynomial is dominated by p01*T_K and p02*T_K^2 terms; feeding
	// Celsius directly (a documented historical bug) would produce a very
	// different, much smaller magnitude than feeding Kelvin.
	viaKelvin := DeltaGNoPH(c, 0.5, 25)
	wrongIfCelsius := c.P00 + c.P10*0.5 + c.P01*25 + c.P20*0.25 + c.P11*0.5*25 + c.P02*25*25
	require.False(t, math.Abs(wrongIfCelsius-viaKelvin) <= 1.0,
		"expected %v and %v to differ by more than 1.0", wrongIfCelsius, viaKelvin)
}

func TestDeltaGFailsExplicitlyWhenNonPhysical(t *testing.T) {
	bad := catalog.ResponseSurfaceCoeffs{
		Material: "Test", Reaction: "ORR",
		P00: -50000, P10: 0, P01: 0, P20: 0, P11: 0, P02: 0,
		PHMin: 0, PHMax: 14,
	}
	_, err := DeltaG("Test", "ORR", bad, 0.5, 25, 8)
	require.Error(t, err)
	var oov *OutOfValidatedRegionError
	require.ErrorAs(t, err, &oov)
	require.Contains(t, err.Error(), "OutOfValidatedRegion")
}

func TestDeltaGPHInterpolationBounds(t *testing.T) {
	c := coeffs()
	noPH := DeltaGNoPH(c, 0.5, 25)
	atMin, err := DeltaG("SS316", "ORR", c, 0.5, 25, c.PHMin)
	require.NoError(t, err)
	require.InDelta(t, 0.9*noPH, atMin, 1e-6)

	atMax, err := DeltaG("SS316", "ORR", c, 0.5, 25, c.PHMax)
	require.NoError(t, err)
	require.InDelta(t, 1.1*noPH, atMax, 1e-6)
}
