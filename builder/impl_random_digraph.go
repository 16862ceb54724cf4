// File: impl_random_digraph.go
// Role: RandomDigraph(n, p) — directed Erdős–Rényi G(n, p).
//
// Canonical model:
//   - Include each ordered pair (i,j), i≠j, independently with
//     probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource); the
//     degenerate p ∈ {0,1} cases are deterministic and need no RNG.
//
// Determinism:
//   - Stable vertex order (i asc) and trial order (i asc, j asc) give
//     identical graphs for a fixed seed.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

const (
	methodRandomDigraph      = "RandomDigraph"
	minRandomDigraphVertices = 1
	probMin                  = 0.0
	probMax                  = 1.0
)

// RandomDigraph returns a Constructor that samples a directed
// Erdős–Rényi graph over n vertices with edge probability p.
func RandomDigraph(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early; fail fast with zero side effects.
		if n < minRandomDigraphVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDigraph, n, minRandomDigraphVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomDigraph, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDigraph, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomDigraph, ids[i], err)
			}
		}

		// 3) Bernoulli trials over ordered pairs in stable order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomDigraph, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
