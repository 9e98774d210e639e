package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFailsFastOnMissingDataDir(t *testing.T) {
	t.Setenv("CORROSION_DATA_DIR", "/path/does/not/exist")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaultsAndParsesOverrides(t *testing.T) {
	t.Setenv("CORROSION_DATA_DIR", t.TempDir())
	t.Setenv("CORROSION_LISTEN_ADDR", ":9090")
	t.Setenv("CORROSION_RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORROSION_RATE_LIMIT_BURST", "7")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, 7, cfg.RateLimitBurst)
	require.InDelta(t, 2.5, float64(cfg.RateLimit), 0.001)
}

func TestLoadRejectsNonNumericRateLimit(t *testing.T) {
	t.Setenv("CORROSION_DATA_DIR", t.TempDir())
	t.Setenv("CORROSION_RATE_LIMIT_RPS", "fast")
	_, err := Load()
	require.Error(t, err)
}
