package material

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

func TestAliasResolution(t *testing.T) {
	cat := testCatalog(t)
	for _, alias := range []string{"316", "316L", "UNS S31600", "UNS S31603"} {
		m, err := Resolve(cat, alias)
		require.NoError(t, err, alias)
		require.Equal(t, "SS316", m.ID, alias)
		require.True(t, m.IsNRL, alias)
	}
	for _, alias := range []string{"HY-80", "HY-100"} {
		m, err := Resolve(cat, alias)
		require.NoError(t, err, alias)
		require.True(t, m.IsNRL, alias)
	}
}

func TestUnknownMaterialAcceptedForTier1OnlyIfComposed(t *testing.T) {
	cat := testCatalog(t)
	m, err := Resolve(cat, "2205")
	require.NoError(t, err)
	require.False(t, m.IsNRL)
	require.Error(t, m.RequireNRL())
}

func TestTrulyUnknownMaterialFails(t *testing.T) {
	cat := testCatalog(t)
	_, err := Resolve(cat, "Unobtainium-9000")
	require.Error(t, err)
}

func TestNRLSetHasAllSixAlloys(t *testing.T) {
	cat := testCatalog(t)
	for _, id := range []string{"HY80", "HY100", "SS316", "Ti", "I625", "CuNi"} {
		m, err := Resolve(cat, id)
		require.NoError(t, err, id)
		require.True(t, m.IsNRL, id)
		require.NotZero(t, len(m.Reactions), id)
	}
}
