package app

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"primefrac/internal/sieve"
)

// Config holds runtime options for building the app.
type Config struct {
	// Environment selects logger presentation (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Bound is the upper limit of the prime table. Factorization is only
	// complete for inputs whose prime factors stay at or below it.
	Bound int64 `env:"PRIMEFRAC_BOUND" env-default:"999999" yaml:"bound"`

	// Trace enables the diagnostic channel (sieve timing, factor
	// multisets, cancellation steps).
	Trace bool `env:"PRIMEFRAC_TRACE" env-default:"false" yaml:"trace"`
}

// Load reads configuration from the optional YAML file at path plus the
// process environment. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.Bound < 2 {
		return nil, fmt.Errorf("bound %d is below the smallest prime", cfg.Bound)
	}

	return &cfg, nil
}

// DefaultBound re-exports the sieve default for flag registration.
const DefaultBound = sieve.DefaultBound
