package chemistry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDOSaturationFreshwater25C(t *testing.T) {
	do := DOSaturationGarciaBenson(25.0, 0.0)
	require.InDelta(t, 8.26, do, 0.1)
}

func TestDOSaturationSeawaterLowerThanFreshwater(t *testing.T) {
	fresh := DOSaturationGarciaBenson(25.0, 0.0)
	salt := DOSaturationGarciaBenson(25.0, 35.0)
	require.Less(t, salt, fresh)
}

func TestEstimateSalinityFromChlorideSeawater(t *testing.T) {
	s := EstimateSalinityFromChloride(19354.0)
	require.InDelta(t, 35.0, s, 0.01)
}

func TestWaterViscosityDecreasesWithTemperature(t *testing.T) {
	mu5 := WaterKinematicViscosity(5)
	mu40 := WaterKinematicViscosity(40)
	require.Less(t, mu40, mu5)
}

func TestChlorideMolaritySeawater(t *testing.T) {
	m := ChlorideMolarity(19354.0)
	require.InDelta(t, 0.546, m, 0.01)
}

func TestSolutionConductivityIncreasesWithChloride(t *testing.T) {
	low := SolutionConductivity(25.0, ChlorideMolarity(5000))
	high := SolutionConductivity(25.0, ChlorideMolarity(19354))
	require.Greater(t, high, low)
	require.Greater(t, high, 0.0)
}

func TestSolutionConductivityZeroChlorideIsZero(t *testing.T) {
	require.Equal(t, 0.0, SolutionConductivity(25.0, 0))
}

func TestWaterActivityDecreasesWithChloride(t *testing.T) {
	fresh := WaterActivity(0.001)
	brine := WaterActivity(ChlorideMolarity(19354))
	require.Less(t, brine, fresh)
	require.InDelta(t, 55.55, fresh, 1.0)
}
