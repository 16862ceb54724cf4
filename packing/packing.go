// Package packing implements the greedy packing stage of the k-MTM
// approximation pipeline.
package packing

import (
	"github.com/katalvlaran/telecast/bfs"
	"github.com/katalvlaran/telecast/core"
)

// GreedyPacking extracts up to ρ = ⌈√k⌉ vertex-disjoint depth-capped
// subtrees, each covering between one and ρ still-uncovered terminals,
// and returns their terminal lists in selection order.
//
// Validation errors: ErrGraphNil, ErrRootNotFound, ErrBadDepth, ErrBadK,
// ErrTerminalNotFound. Every terminal is itself a candidate root whose
// BFS discovers it at depth 0, so valid input always yields at least
// one pack.
func GreedyPacking(g *core.Graph, root string, terminals []string, k, maxDepth int) ([]Pack, error) {
	packs, _, err := GreedyPackingTrace(g, root, terminals, k, maxDepth)

	return packs, err
}

// GreedyPackingTrace runs GreedyPacking and additionally returns the
// set of vertices consumed by the discovery subtrees, root included,
// so callers can assert disjointness against it.
func GreedyPackingTrace(g *core.Graph, root string, terminals []string, k, maxDepth int) ([]Pack, map[string]struct{}, error) {
	// 1) Validate inputs up front; these are the only hard failures.
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, nil, ErrRootNotFound
	}
	if maxDepth <= 0 {
		return nil, nil, ErrBadDepth
	}
	if k <= 0 || k > len(terminals) {
		return nil, nil, ErrBadK
	}
	remaining := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		if t == root || !g.HasVertex(t) {
			return nil, nil, ErrTerminalNotFound
		}
		remaining[t] = struct{}{}
	}

	// 2) Greedy rounds: at most ρ packs.
	var (
		rho      = Rho(k)
		packs    = make([]Pack, 0, rho)
		used     = map[string]struct{}{root: {}}
		vertices = g.Vertices()
		free     = func(id string) bool { _, ok := used[id]; return !ok }
	)
	for len(packs) < rho && len(remaining) > 0 {
		bestCover, bestVisited := scanCandidates(g, vertices, used, remaining, rho, maxDepth, free)
		if len(bestCover) == 0 {
			break
		}

		packs = append(packs, Pack(bestCover))
		for _, v := range bestVisited {
			used[v] = struct{}{}
		}
		for _, t := range bestCover {
			delete(remaining, t)
		}
	}

	return packs, used, nil
}

// scanCandidates evaluates every unused vertex as a pack root and
// returns the cover and visited set of the best one. Each candidate
// BFS stops as soon as it has discovered limit terminals, so a pack
// holds at most ρ terminals and consumes only the vertices discovered
// up to that point. Candidates are scanned in canonical vertex order;
// only a strictly larger cover displaces the incumbent, so ties keep
// the earlier candidate.
func scanCandidates(
	g *core.Graph,
	vertices []string,
	used map[string]struct{},
	remaining map[string]struct{},
	limit, maxDepth int,
	free func(string) bool,
) (bestCover, bestVisited []string) {
	isRemaining := func(id string) bool { _, ok := remaining[id]; return ok }

	for _, c := range vertices {
		if _, ok := used[c]; ok {
			continue
		}

		found := 0
		res, err := bfs.BFS(g, c,
			bfs.WithMaxDepth(maxDepth),
			bfs.WithFilterVertex(free),
			bfs.WithStopWhen(func(id string) bool {
				if isRemaining(id) {
					found++
				}

				return found >= limit
			}),
		)
		if err != nil {
			// Candidates come from g.Vertices(), so BFS cannot reject them.
			continue
		}

		cover := make([]string, 0, found)
		for _, v := range res.Order {
			if isRemaining(v) {
				cover = append(cover, v)
			}
		}
		if len(cover) > len(bestCover) {
			bestCover = cover
			bestVisited = res.Order
		}
	}

	return bestCover, bestVisited
}
