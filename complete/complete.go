// Package complete implements the tree-completion stage of the k-MTM
// pipeline.
package complete

import (
	"errors"

	"github.com/katalvlaran/telecast/bfs"
	"github.com/katalvlaran/telecast/core"
	"github.com/katalvlaran/telecast/packing"
	"github.com/katalvlaran/telecast/pmcover"
)

// Sentinel errors for tree completion.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("complete: graph is nil")

	// ErrRootNotFound is returned when the root vertex is absent.
	ErrRootNotFound = errors.New("complete: root vertex not found")

	// ErrBadK is returned when k is not positive.
	ErrBadK = errors.New("complete: k must be positive")
)

// Complete stitches packs and cover edges into one multicast tree
// rooted at root. Missing shortest paths are skipped silently; the
// returned graph always contains at least the root.
//
// Validation errors: ErrGraphNil, ErrRootNotFound, ErrBadK.
func Complete(
	g *core.Graph,
	root string,
	packs []packing.Pack,
	coverEdges []pmcover.Key,
	coverMap map[string][]string,
	k int,
) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, ErrRootNotFound
	}
	if k <= 0 {
		return nil, ErrBadK
	}

	tree := core.NewGraph()
	_ = tree.AddVertex(root)

	// Case A — many trees: ρ packs suffice on their own; attach only
	// the first ρ representatives and ignore cover edges entirely.
	if rho := packing.Rho(k); len(packs) >= rho {
		for _, p := range packs[:rho] {
			stitchPath(tree, g, root, p.Rep())
		}

		return tree, nil
	}

	// Case B — few trees: stitch packs in full, then cover edges.
	for _, p := range packs {
		rep := p.Rep()
		if !stitchPath(tree, g, root, rep) {
			// No route to the representative: skip the whole pack.
			continue
		}
		for _, term := range p[1:] {
			stitchPath(tree, g, rep, term)
		}
	}

	for _, key := range coverEdges {
		// The cover edge only helps if its source is already reachable
		// in the tree under construction.
		if !tree.HasVertex(key.A) || !g.HasVertex(key.C) {
			continue
		}
		_ = tree.AddEdge(key.A, key.C)
		for _, term := range coverMap[key.C] {
			if !g.HasVertex(term) {
				continue
			}
			stitchPath(tree, g, key.C, term)
		}
	}

	return tree, nil
}

// stitchPath adds the fewest-hop from→to path of g to the tree and
// reports whether a path existed. A degenerate single-vertex path adds
// just the vertex.
func stitchPath(tree, g *core.Graph, from, to string) bool {
	path, err := bfs.ShortestPath(g, from, to)
	if err != nil {
		return false
	}
	if len(path) == 1 {
		_ = tree.AddVertex(path[0])

		return true
	}
	for i := 1; i < len(path); i++ {
		_ = tree.AddEdge(path[i-1], path[i])
	}

	return true
}
