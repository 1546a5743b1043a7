package nurbs

import (
	"fmt"
	"log/slog"
	"math"
)

// Config configures an [Engine].
type Config struct {
	// Tolerance is how far outside of a geometry's parameter domain an
	// evaluation may be before it is rejected. Parameters within the slack
	// are clamped to the domain.
	Tolerance float64
	// Epsilon is the threshold below which knot spans and weights count as
	// zero.
	Epsilon float64
	// Logger receives the engine's diagnostics. If nil, [slog.Default] is
	// used.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration using [Tolerance] and [Epsilon].
func DefaultConfig() Config {
	return Config{
		Tolerance: Tolerance,
		Epsilon:   Epsilon,
	}
}

// Validate checks that Tolerance > Epsilon > 0.
func (cfg Config) Validate() error {
	switch {
	case math.IsNaN(cfg.Epsilon) || cfg.Epsilon <= 0:
		return fmt.Errorf("epsilon %g must be positive: %w", cfg.Epsilon, ErrInvalidConfig)
	case math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance <= cfg.Epsilon:
		return fmt.Errorf("tolerance %g must be finite and greater than epsilon %g: %w",
			cfg.Tolerance, cfg.Epsilon, ErrInvalidConfig)
	}
	return nil
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}
