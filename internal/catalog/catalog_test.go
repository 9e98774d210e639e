package catalog

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func dataDir(t *testing.T) string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "data")
}

func TestLoadRealDataDirectory(t *testing.T) {
	c, err := Load(dataDir(t))
	require.NoError(t, err)
	require.NotEmpty(t, c.Compositions)
	require.NotEmpty(t, c.CPT)
	require.NotEmpty(t, c.GalvanicSeries)
	require.NotEmpty(t, c.ChlorideThresholds)
	require.NotEmpty(t, c.TemperatureCoeffs)
	require.NotEmpty(t, c.ORRDiffusionLimits)
	require.NotEmpty(t, c.ResponseSurfaces)
}

func TestLoadIsDeterministic(t *testing.T) {
	a, err := Load(dataDir(t))
	require.NoError(t, err)
	b, err := Load(dataDir(t))
	require.NoError(t, err)
	require.Equal(t, len(a.Compositions), len(b.Compositions))
	require.Equal(t, a.ResponseSurfaces, b.ResponseSurfaces)
}

func TestEveryCatalogRowHasSourceAndFiniteNumbers(t *testing.T) {
	c, err := Load(dataDir(t))
	require.NoError(t, err)
	for k, rec := range c.Compositions {
		require.NotEmpty(t, rec.Source, k)
		require.False(t, math.IsNaN(rec.DensityKgM3) || math.IsInf(rec.DensityKgM3, 0), k)
	}
	for k, rec := range c.CPT {
		require.NotEmpty(t, rec.Source, k)
	}
	for k, rec := range c.GalvanicSeries {
		require.NotEmpty(t, rec.Source, k)
	}
}

func TestNormalizeKeyCaseAndSeparatorInsensitive(t *testing.T) {
	require.Equal(t, normalizeKey("Carbon Steel"), normalizeKey("carbon_steel"))
	require.Equal(t, normalizeKey("HY-80"), normalizeKey("hy80"))
}

func TestMissingRequiredColumnFailsWholeLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "materials_compositions.csv"), []byte("common_name,UNS\nHY80,K31820\n"), 0644))
	_, err := Load(dir)
	require.Error(t, err)
	var loadErr *CatalogLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestRowLevelParseFailureIsSkippedNotFatal(t *testing.T) {
	dir := t.TempDir()
	header := "common_name,UNS,Cr,Ni,Mo,N,Fe_bal,density_kg_m3,grade_type,n_electrons,source\n"
	good := "HY80,K31820,0.6,2.75,0.45,0.0,true,7850,carbon_steel,2,NRL dataset\n"
	bad := "Broken,X00000,not-a-number,2.75,0.45,0.0,true,7850,carbon_steel,2,NRL dataset\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "materials_compositions.csv"), []byte(header+good+bad), 0644))
	for _, f := range []string{"astm_g48_cpt_data.csv", "astm_g82_galvanic_series.csv", "iso18070_chloride_thresholds.csv", "iso18070_temperature_coefficients.csv", "orr_diffusion_limits.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), minimalValidCSV(f), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "HY80ORRCoeffs.csv"), []byte("p00,p10,p01,p20,p11,p02\n5000,-800,150,-50,-10,-0.05\n"), 0644))

	c, err := Load(dir)
	require.NoError(t, err)
	_, ok := c.LookupComposition("HY80")
	require.True(t, ok)
	_, ok = c.LookupComposition("Broken")
	require.False(t, ok)
}

func minimalValidCSV(filename string) []byte {
	switch filename {
	case "astm_g48_cpt_data.csv":
		return []byte("material,UNS,CPT_C,CCT_C,test_solution,source,notes\nHY80,K31820,10,5,6% FeCl3,src,\n")
	case "astm_g82_galvanic_series.csv":
		return []byte("material,E_SCE_V,E_SHE_V,activity_category,source,notes\nHY80,-0.61,-0.369,active,src,\n")
	case "iso18070_chloride_thresholds.csv":
		return []byte("material,UNS,threshold_25C_mg_L,pH,temperature_C,source,notes,resistance_category\nHY80,K31820,3000,7,25,src,,low\n")
	case "iso18070_temperature_coefficients.csv":
		return []byte("grade_type,temp_coefficient_per_C,source,notes,formula\ncarbon_steel,0.05,src,,formula\n")
	case "orr_diffusion_limits.csv":
		return []byte("condition,temperature_C,electrolyte,i_lim_A_m2,i_lim_mA_cm2,source,notes\nquiescent,25,seawater,1.3,0.13,src,\n")
	}
	return nil
}
