package tools

import (
	"path/filepath"
	"runtime"
	"testing"

	"corrosion-engine/internal/catalog"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	_, thisFile, _, _ := runtime.Caller(0)
	dataDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "data")
	c, err := catalog.Load(dataDir)
	require.NoError(t, err)
	return c
}

func TestAssessGalvanicCarriesProvenance(t *testing.T) {
	cat := testCatalog(t)
	out, err := AssessGalvanic(cat, AssessGalvanicInput{
		AnodeID: "HY80", CathodeID: "SS316",
		TemperatureC: 20, PH: 8.1, ChlorideMgL: 19000,
		AreaRatioCathodeOverAnode: 1.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Provenance.Sources)
	require.Equal(t, EngineVersion, out.Provenance.Version)
	require.Greater(t, out.CurrentRatio, 0.0)
}

func TestAssessGalvanicRejectsUnknownMaterial(t *testing.T) {
	cat := testCatalog(t)
	_, err := AssessGalvanic(cat, AssessGalvanicInput{
		AnodeID: "not-a-real-alloy", CathodeID: "SS316",
		TemperatureC: 20, PH: 8.1, ChlorideMgL: 19000,
		AreaRatioCathodeOverAnode: 1.0,
	})
	require.Error(t, err)
}

func TestAssessLocalizedFlagsDisagreementRecommendation(t *testing.T) {
	cat := testCatalog(t)
	doMgL := 8.0
	out, err := AssessLocalized(cat, AssessLocalizedInput{
		MaterialID: "SS316", TemperatureC: 30, ChlorideMgL: 19000, PH: 8.1,
		DissolvedOxygenMgL: &doMgL,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Provenance.ModelName)
	if out.Disagreement.Detected {
		require.NotEmpty(t, out.Recommendations)
	}
}

func TestCalculatePRENFromExplicitComposition(t *testing.T) {
	cat := testCatalog(t)
	out, err := CalculatePREN(cat, CalculatePRENInput{CrPct: 22.0, MoPct: 3.1, NPct: 0.17, GradeType: "duplex"})
	require.NoError(t, err)
	require.InDelta(t, 35.0, out.PREN, 0.2)
	require.Contains(t, out.InterpretationBand, "medium")
}

func TestCalculatePRENFromMaterialIDOverridesComposition(t *testing.T) {
	cat := testCatalog(t)
	out, err := CalculatePREN(cat, CalculatePRENInput{MaterialID: "SS316", CrPct: 0, MoPct: 0, NPct: 0})
	require.NoError(t, err)
	require.Greater(t, out.PREN, 0.0)
	require.NotEmpty(t, out.Provenance.Sources)
}

func TestScreenMaterialsNeverErrorsOnUnknownCandidate(t *testing.T) {
	cat := testCatalog(t)
	out := ScreenMaterials(cat, ScreenMaterialsInput{
		Environment: ScreenEnvironment{TemperatureC: 25, ChlorideMgL: 19000, PH: 8.1},
		Candidates:  []string{"SS316", "bogus-alloy"},
	})
	require.Len(t, out.Results, 2)
	require.Empty(t, out.Results[0].Error)
	require.NotEmpty(t, out.Results[1].Error)
}

func TestDOToEhAndEhToDORoundTrip(t *testing.T) {
	eh := DOToEh(DOToEhInput{DOMgL: 8.0, PH: 8.1, TemperatureC: 25})
	back := EhToDO(EhToDOInput{EhVoltsSHE: eh.EhVoltsSHE, PH: 8.1, TemperatureC: 25})
	require.InDelta(t, 8.0, back.DOMgL, 0.5)
}

func TestORPToEhDefaultsToSHEWithWarningOnUnknownReference(t *testing.T) {
	eh := DOToEh(DOToEhInput{DOMgL: 8.0, PH: 8.1, TemperatureC: 25})
	_ = eh
	orp := ORPToEh(ORPToEhInput{ORPMV: 200, Ref: "not-a-reference"})
	require.Equal(t, "orp_eh_reference_conversion", orp.Provenance.ModelName)
}

func TestPredictAeratedChlorideRequiresNRLCapableMaterial(t *testing.T) {
	cat := testCatalog(t)
	out, err := PredictAeratedChloride(cat, PredictAeratedChlorideInput{
		MaterialID: "SS316", TemperatureC: 25, ChlorideMgL: 19000, PH: 8.1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Provenance.Sources)
}
