// File: impl_kary_tree.go
// Role: KaryTree(arity, depth) — the complete arity-ary out-tree.
//
// Contract:
//   - arity ≥ 1, depth ≥ 1 (else ErrInvalidArity).
//   - Vertices are indexed level by level (root 0, then its children
//     left to right, and so on), the layout the broadcast tests expect.
//
// Complexity: O(arity^depth) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
)

const methodKaryTree = "KaryTree"

// KaryTree returns a Constructor that builds the complete arity-ary
// tree of the given depth, edges directed away from the root.
func KaryTree(arity, depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if arity < 1 || depth < 1 {
			return fmt.Errorf("%s: arity=%d depth=%d: %w", methodKaryTree, arity, depth, ErrInvalidArity)
		}

		root := cfg.idFn(0)
		if err := g.AddVertex(root); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodKaryTree, root, err)
		}

		level := []string{root}
		next := 1
		for d := 0; d < depth; d++ {
			nextLevel := make([]string, 0, len(level)*arity)
			for _, u := range level {
				for b := 0; b < arity; b++ {
					child := cfg.idFn(next)
					next++
					if err := g.AddEdge(u, child); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodKaryTree, u, child, err)
					}
					nextLevel = append(nextLevel, child)
				}
			}
			level = nextLevel
		}

		return nil
	}
}
