// File: impl_path.go
// Role: Path(n) — the directed path 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices added via cfg.idFn in ascending index order.
//   - Edges emitted in ascending index order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		prev := cfg.idFn(0)
		if err := g.AddVertex(prev); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, prev, err)
		}
		for i := 1; i < n; i++ {
			cur := cfg.idFn(i)
			if err := g.AddEdge(prev, cur); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, prev, cur, err)
			}
			prev = cur
		}

		return nil
	}
}
