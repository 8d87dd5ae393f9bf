// Package config loads the handful of tunable constants the scheduler
// needs, from the process environment or a .env file, with defaults
// that match the behavior spec.md documents.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the scheduler's tunable constants.
type Config struct {
	// DefaultBattery is the battery level assumed for a robot whose
	// input omits one (6, "Missing battery_level defaults to 100").
	DefaultBattery int

	// ParallelEvaluation enables the worker-pool feasibility table fill
	// (5); sequential evaluation is always available regardless.
	ParallelEvaluation bool
}

// Default returns the configuration spec.md's behavior implies.
func Default() Config {
	return Config{
		DefaultBattery:     100,
		ParallelEvaluation: true,
	}
}

// Load reads WAREHOUSE_-prefixed environment variables, first loading a
// .env file from the working directory if one is present (a missing
// .env is not an error — godotenv.Load's own convention). Unset
// variables fall back to Default(). A set-but-malformed variable is
// reported as an error rather than silently ignored, since that is
// almost certainly an operator mistake.
func Load() (Config, error) {
	_ = godotenv.Load() // optional; absence is not an error

	cfg := Default()

	if raw, ok := os.LookupEnv("WAREHOUSE_DEFAULT_BATTERY"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: WAREHOUSE_DEFAULT_BATTERY: %w", err)
		}
		cfg.DefaultBattery = v
	}

	if raw, ok := os.LookupEnv("WAREHOUSE_PARALLEL"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: WAREHOUSE_PARALLEL: %w", err)
		}
		cfg.ParallelEvaluation = v
	}

	return cfg, nil
}
