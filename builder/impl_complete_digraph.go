// File: impl_complete_digraph.go
// Role: CompleteDigraph(n) — every ordered pair (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices added in ascending index order; edges emitted in
//     ascending (i,j) order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

const (
	methodCompleteDigraph   = "CompleteDigraph"
	minCompleteDigraphNodes = 1
)

// CompleteDigraph returns a Constructor that builds the complete
// directed graph on n vertices: u→v for all u ≠ v.
func CompleteDigraph(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteDigraphNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCompleteDigraph, n, minCompleteDigraphNodes, ErrTooFewVertices)
		}

		// Precompute the ID slice once in deterministic index order.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteDigraph, ids[i], err)
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCompleteDigraph, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
