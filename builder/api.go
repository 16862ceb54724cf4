// File: api.go
// Role: The single public entry point for graph construction.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves the config, runs constructors in order.
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic at runtime.
//   - Determinism: same inputs, options, seed, and constructor order
//     produce identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

// Constructor applies a deterministic graph mutation using the
// resolved builder configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. A constructor error is wrapped with
// "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
