package pitting

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

func TestCalculatePRENAusteniticAndDuplex(t *testing.T) {
	austenitic := CalculatePREN(16.5, 2.0, 0.05, "austenitic")
	require.InDelta(t, 23.9, austenitic, 0.1)

	duplex := CalculatePREN(22.0, 3.1, 0.17, "duplex")
	require.InDelta(t, 35.0, duplex, 0.2)
}

func TestAssessTier1UsesTabulatedCPTWhenAvailable(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	res := AssessTier1(cat, m, 25, 19000, 8.1)
	require.False(t, res.CPTIsEstimated)
	require.Empty(t, res.Warnings)
	require.Greater(t, res.PREN, 0.0)
}

func TestAssessTier1FallsBackToPRENEstimateForUntabulatedMaterial(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "CarbonSteel")
	res := AssessTier1(cat, m, 25, 30000, 7.0)
	require.True(t, res.CPTIsEstimated)
	require.NotEmpty(t, res.Warnings)
}

func TestAssessTier1SusceptibilityEscalatesWithTemperature(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	low := AssessTier1(cat, m, 5, 3000, 7.0)
	high := AssessTier1(cat, m, 80, 200000, 7.0)
	require.LessOrEqual(t, susceptibilityRank[low.Susceptibility], susceptibilityRank[high.Susceptibility])
}

func TestAssessTier2UnavailableWithoutDO(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	_, err := AssessTier2(cat, m, 25, 19000, 8.1, nil)
	require.Error(t, err)
	var unavailable *Tier2Unavailable
	require.ErrorAs(t, err, &unavailable)
}

func TestAssessTier2UnavailableForNonNRLMaterial(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "2205")
	do := 8.0
	_, err := AssessTier2(cat, m, 25, 19000, 8.1, &do)
	require.Error(t, err)
}

func TestAssessTier2SucceedsForSS316WithDO(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	do := 8.0
	res, err := AssessTier2(cat, m, 25, 19000, 8.1, &do)
	require.NoError(t, err)
	require.NotEmpty(t, res.Interpretation)
	require.Contains(t, []Susceptibility{Low, Moderate, High, Critical}, res.Susceptibility)
}

func TestAssessCombinesTiersAndDetectsDisagreement(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	do := 8.0
	res := Assess(cat, m, 25, 19000, 8.1, &do)
	require.NotNil(t, res.Tier2)
	require.Equal(t, worseOf(res.Tier1.Susceptibility, res.Tier2.Susceptibility), res.OverallRisk)
}

func TestAssessWithoutDOOnlyReturnsTier1(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "SS316")
	res := Assess(cat, m, 25, 19000, 8.1, nil)
	require.Nil(t, res.Tier2)
	require.Equal(t, res.Tier1.Susceptibility, res.OverallRisk)
}

func TestAssessTier1WorksForUnknownMaterialWithComposition(t *testing.T) {
	cat := testCatalog(t)
	m := resolve(t, cat, "2205")
	res := AssessTier1(cat, m, 40, 50000, 7.0)
	require.NotZero(t, res.PREN)
}
