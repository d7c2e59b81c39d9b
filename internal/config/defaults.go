package config

import (
	"runtime"
	"time"
)

// Timeout resolution chain (highest priority first):
//   1. CLI flag (--timeout)
//   2. Environment variable (BIGCALC_TIMEOUT)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills in configuration values that are still at
// their zero default based on hardware characteristics. User-specified
// values via flags or environment are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Timeout == 0 {
		cfg.Timeout = EstimateDefaultTimeout()
	}
	return cfg
}

// EstimateDefaultTimeout provides a heuristic default operation timeout.
// Trial-division primality and divide-and-conquer rendering on large
// operands are CPU-bound, so machines with fewer cores get more headroom.
func EstimateDefaultTimeout() time.Duration {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return 10 * time.Minute
	case numCPU <= 8:
		return 5 * time.Minute
	default:
		return 3 * time.Minute
	}
}
