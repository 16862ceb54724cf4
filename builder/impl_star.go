// File: impl_star.go
// Role: Star(n) — center 0 with spokes 0→1 … 0→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Spokes emitted in ascending index order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that builds the out-star S_n: vertex 0
// points at every other vertex.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}

		center := cfg.idFn(0)
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, center, err)
		}
		for i := 1; i < n; i++ {
			spoke := cfg.idFn(i)
			if err := g.AddEdge(center, spoke); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, center, spoke, err)
			}
		}

		return nil
	}
}
