package solver

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Option customizes a Generator at construction. Option constructors never
// panic at runtime. WithRand ignores a nil argument and keeps the default
// PRNG; WithSeed and WithLogger always replace the default, even when given
// a zero value.
type Option func(cfg *config)

// config holds the resolved construction-time settings for a Generator.
type config struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// newConfig applies opts over a default config: a time-independent (seed 1)
// RNG and a no-op logger.
//
// Complexity: O(len(opts)).
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:    rand.New(rand.NewSource(1)),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand seeded with seed and assigns it as the
// Generator's PRNG source. Use this for reproducible runs: the same seed,
// catalog, and dimensions always collapse to the same grid.
//
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets an explicit *rand.Rand source for randomness, overriding
// the default seed. If rng is nil, this option is a no-op.
//
// Complexity: O(1).
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithLogger sets the zerolog.Logger Run uses for its per-cycle diagnostic
// line when called with silent == false. Without this option, Run logs
// nothing (zerolog.Nop()).
//
// Complexity: O(1).
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
