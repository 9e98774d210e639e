package galvanic

import (
	"path/filepath"
	"runtime"
	"testing"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/material"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	_, thisFile, _, _ := runtime.Caller(0)
	dataDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "data")
	c, err := catalog.Load(dataDir)
	require.NoError(t, err)
	return c
}

func resolve(t *testing.T, cat *catalog.Catalog, id string) material.Material {
	m, err := material.Resolve(cat, id)
	require.NoError(t, err, id)
	return m
}

func TestSolveIdenticalMaterialShortCircuits(t *testing.T) {
	cat := testCatalog(t)
	hy80 := resolve(t, cat, "HY80")
	do := 6.0
	res, err := Solve(cat, hy80, hy80, Input{
		AnodeID: "HY80", CathodeID: "HY80", TemperatureC: 25, PH: 8.1,
		ChlorideMgL: 19000, AreaRatioCathodeOverAnode: 1, DissolvedOxygenMgL: &do,
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, res.CurrentRatio)
	require.Equal(t, SeverityNegligible, res.Severity)
	require.NotEmpty(t, res.Warnings)
}

func TestSolveSeverityEscalatesWithAreaRatio(t *testing.T) {
	cat := testCatalog(t)
	anode := resolve(t, cat, "HY80")
	cathode := resolve(t, cat, "SS316")
	do := 6.0

	var ratios []float64
	for _, areaRatio := range []float64{1, 10, 50} {
		res, err := Solve(cat, anode, cathode, Input{
			AnodeID: "HY80", CathodeID: "SS316", TemperatureC: 25, PH: 8.1,
			ChlorideMgL: 19000, AreaRatioCathodeOverAnode: areaRatio, DissolvedOxygenMgL: &do,
		})
		require.NoError(t, err)
		require.Greater(t, res.CorrosionRateMMYr, 0.0)
		ratios = append(ratios, res.CurrentRatio)
	}
	// current ratio must be non-decreasing as the cathode area advantage grows
	for i := 1; i < len(ratios); i++ {
		require.GreaterOrEqual(t, ratios[i], ratios[i-1])
	}
}

func TestSolveAnaerobicDoesNotCrashAndWarns(t *testing.T) {
	cat := testCatalog(t)
	anode := resolve(t, cat, "HY80")
	cathode := resolve(t, cat, "SS316")
	do := 0.0
	res, err := Solve(cat, anode, cathode, Input{
		AnodeID: "HY80", CathodeID: "SS316", TemperatureC: 15, PH: 7.5,
		ChlorideMgL: 19000, AreaRatioCathodeOverAnode: 5, DissolvedOxygenMgL: &do,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	require.GreaterOrEqual(t, res.CorrosionRateMMYr, 0.0)
}

func TestSolveReportsAnodicNotNetCurrent(t *testing.T) {
	cat := testCatalog(t)
	anode := resolve(t, cat, "HY80")
	cathode := resolve(t, cat, "SS316")
	do := 6.0
	res, err := Solve(cat, anode, cathode, Input{
		AnodeID: "HY80", CathodeID: "SS316", TemperatureC: 25, PH: 8.1,
		ChlorideMgL: 19000, AreaRatioCathodeOverAnode: 10, DissolvedOxygenMgL: &do,
	})
	require.NoError(t, err)
	require.NotEqual(t, res.INetACm2, res.IGalvanicAnodicACm2)
	require.InDelta(t, 0.0, res.INetACm2, 1e-6)
	require.Greater(t, res.IGalvanicAnodicACm2, 0.0)
}

func TestSolveReportsSolutionResistivity(t *testing.T) {
	cat := testCatalog(t)
	anode := resolve(t, cat, "HY80")
	cathode := resolve(t, cat, "SS316")
	do := 6.0
	res, err := Solve(cat, anode, cathode, Input{
		AnodeID: "HY80", CathodeID: "SS316", TemperatureC: 25, PH: 8.1,
		ChlorideMgL: 19354, AreaRatioCathodeOverAnode: 1, DissolvedOxygenMgL: &do,
	})
	require.NoError(t, err)
	require.Greater(t, res.SolutionResistivityOhmM, 0.0)
}

func TestSolveRejectsNonPositiveAreaRatio(t *testing.T) {
	cat := testCatalog(t)
	anode := resolve(t, cat, "HY80")
	cathode := resolve(t, cat, "SS316")
	_, err := Solve(cat, anode, cathode, Input{
		AnodeID: "HY80", CathodeID: "SS316", TemperatureC: 25, PH: 8.1,
		ChlorideMgL: 19000, AreaRatioCathodeOverAnode: 0,
	})
	require.Error(t, err)
}

func TestBracketedBisectionFindsKnownRoot(t *testing.T) {
	f := func(x float64) (float64, error) { return x - 0.3333, nil }
	root, err := BracketedBisection(f, -1, 1, 100)
	require.NoError(t, err)
	require.InDelta(t, 0.3333, root, 1e-6)
}

func TestBracketedBisectionFailsWithoutSignChange(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x + 1, nil }
	_, err := BracketedBisection(f, -1, 1, 100)
	require.Error(t, err)
}
