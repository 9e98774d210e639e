// Package config loads the engine's environment-variable configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Config is the engine's runtime configuration.
type Config struct {
	DataDir           string
	ListenAddr        string
	PhreeqcOracleURL  string // optional; empty disables the oracle cross-check path
	RateLimit         rate.Limit
	RateLimitBurst    int
}

// Load reads a .env file if present (a missing file is not an error,
// matching godotenv's own convention) and then the process environment,
// failing fast on a missing or unreadable data directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	dataDir := os.Getenv("CORROSION_DATA_DIR")
	if dataDir == "" {
		return Config{}, fmt.Errorf("CORROSION_DATA_DIR is not set")
	}
	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		return Config{}, fmt.Errorf("CORROSION_DATA_DIR %q is not a readable directory: %w", dataDir, err)
	}

	addr := os.Getenv("CORROSION_LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	rps := 5.0
	if v := os.Getenv("CORROSION_RATE_LIMIT_RPS"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CORROSION_RATE_LIMIT_RPS must be a number: %w", err)
		}
		rps = parsed
	}

	burst := 10
	if v := os.Getenv("CORROSION_RATE_LIMIT_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("CORROSION_RATE_LIMIT_BURST must be an integer: %w", err)
		}
		burst = parsed
	}

	return Config{
		DataDir:          dataDir,
		ListenAddr:       addr,
		PhreeqcOracleURL: os.Getenv("CORROSION_PHREEQC_ORACLE_URL"),
		RateLimit:        rate.Limit(rps),
		RateLimitBurst:   burst,
	}, nil
}
