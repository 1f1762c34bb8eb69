package app

import (
	"io"

	"go.uber.org/zap"

	"primefrac/internal/domain"
	"primefrac/internal/logger"
	"primefrac/internal/report"
	"primefrac/internal/services/calc"
	"primefrac/internal/sieve"
)

// App bundles the engine pieces the CLI works with.
type App struct {
	Primes domain.PrimeList
	Calc   *calc.Service
	Log    *zap.Logger
}

// NewWire constructs the dependency graph from cfg. The prime table is
// built once here and shared, read-only, by everything downstream. out is
// where results are rendered; nil disables rendering.
func NewWire(cfg *Config, out io.Writer) (*App, error) {
	log, err := logger.New(cfg.Environment, cfg.Trace)
	if err != nil {
		return nil, err
	}

	primes := sieve.Generate(cfg.Bound, log)

	var fm *report.Formatter
	if out != nil {
		fm = report.New(out)
	}

	return &App{
		Primes: primes,
		Calc:   calc.New(primes, log, fm),
		Log:    log,
	}, nil
}
