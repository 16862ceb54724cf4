// Package builder centralizes the configuration shared by all graph
// constructors: random source and vertex ID scheme.
//
// The key type is BuilderOption, a function that mutates a
// builderConfig. Use newBuilderConfig to obtain defaults, then apply
// options in order; later options override earlier ones.
package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a vertex index to its identifier.
type IDFn func(index int) string

// DefaultIDFn names vertices by their decimal index: "0", "1", ….
func DefaultIDFn(index int) string { return strconv.Itoa(index) }

// BuilderOption customizes the behavior of a graph constructor.
// Option constructors never panic at runtime and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders.
// It is not safe for concurrent mutation; each BuildGraph invocation
// resolves its own config.
type builderConfig struct {
	rng  *rand.Rand // optional RNG; nil means deterministic-only constructors
	idFn IDFn       // function mapping index → vertex ID
}

// newBuilderConfig returns a config with defaults (no RNG, decimal
// IDs), then applies each option in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:  nil,
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed derives a deterministic RNG from seed. Seed 0 selects a
// fixed default stream, so the zero value stays reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		s := seed
		if s == 0 {
			s = 1
		}
		cfg.rng = rand.New(rand.NewSource(s))
	}
}
