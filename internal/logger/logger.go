package logger

import "go.uber.org/zap"

const (
	// DevelopmentEnvironment selects the human-readable console encoder.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects the JSON encoder.
	ProductionEnvironment = "production"
)

// New builds a logger for the given environment. trace lowers the level
// to Debug, which is where the engine's diagnostic channel (sieve timing,
// factor multisets, cancellation steps) is emitted.
func New(environment string, trace bool) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	level := zap.InfoLevel
	if trace {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
