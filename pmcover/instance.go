// File: instance.go
// Role: Derive the partition-matroid cover instance from the graph and
// the greedy packs.
//
// Determinism:
//   - Sources a and entry vertices c are visited in canonical order, so
//     Instance.Keys comes out sorted by LessKey without a final sort and
//     CoverMap writes happen in a fixed order.
//   - Per-c coverage is computed once and shared by every (·,c) key.

package pmcover

import (
	"github.com/katalvlaran/telecast/bfs"
	"github.com/katalvlaran/telecast/core"
	"github.com/katalvlaran/telecast/packing"
)

// BuildInstance constructs the cover instance left over after greedy
// packing: A = {root} ∪ terminals appearing in packs, C = V \ A, and
// for every graph edge a→c with a ∈ A, c ∈ C the set of terminals
// reachable from c within maxDepth hops without leaving C. Every
// a ∈ A receives budget ⌈√k⌉. Keys with empty coverage are dropped.
//
// Validation errors: ErrGraphNil, ErrRootNotFound, ErrBadDepth, ErrBadK,
// ErrTerminalNotFound.
func BuildInstance(g *core.Graph, root string, terminals []string, packs []packing.Pack, maxDepth, k int) (*Instance, error) {
	// 1) Validate inputs up front; these are the only hard failures.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, ErrRootNotFound
	}
	if maxDepth <= 0 {
		return nil, ErrBadDepth
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	termSet := make(TerminalSet, len(terminals))
	for _, t := range terminals {
		if t == root || !g.HasVertex(t) {
			return nil, ErrTerminalNotFound
		}
		termSet[t] = struct{}{}
	}

	// 2) Split V into A (root + pack terminals) and the residual C.
	inA := map[string]struct{}{root: {}}
	for _, p := range packs {
		for _, t := range p {
			inA[t] = struct{}{}
		}
	}
	inC := func(id string) bool {
		_, ok := inA[id]

		return !ok
	}

	// 3) Budgets: every source in A gets the shared bound ρ.
	rho := packing.Rho(k)
	inst := &Instance{
		Keys:     make([]Key, 0),
		Sets:     make(map[Key]TerminalSet),
		Budgets:  make(map[string]int, len(inA)),
		CoverMap: make(map[string][]string),
	}
	sources := make([]string, 0, len(inA))
	for a := range inA {
		sources = append(sources, a)
		inst.Budgets[a] = rho
	}
	core.SortIDs(sources)

	// 4) For each crossing edge a→c, measure the coverage of c inside C.
	//    Coverage per c is independent of a; compute it once.
	coverage := make(map[string][]string)
	for _, a := range sources {
		succ, err := g.OutNeighbors(a)
		if err != nil {
			// sources are vertices of g; nothing else can reach here
			return nil, err
		}
		for _, c := range succ {
			if !inC(c) {
				continue
			}
			cover, cached := coverage[c]
			if !cached {
				cover = coverFrom(g, c, inC, termSet, maxDepth)
				coverage[c] = cover
			}
			if len(cover) == 0 {
				continue
			}

			key := Key{A: a, C: c}
			set := make(TerminalSet, len(cover))
			for _, t := range cover {
				set[t] = struct{}{}
			}
			inst.Keys = append(inst.Keys, key)
			inst.Sets[key] = set
			inst.CoverMap[c] = cover
		}
	}

	return inst, nil
}

// coverFrom runs the depth-capped BFS from c restricted to C and
// returns the discovered terminals in discovery order.
func coverFrom(g *core.Graph, c string, inC func(string) bool, termSet TerminalSet, maxDepth int) []string {
	res, err := bfs.BFS(g, c, bfs.WithMaxDepth(maxDepth), bfs.WithFilterVertex(inC))
	if err != nil {
		return nil
	}

	var cover []string
	for _, v := range res.Order {
		if _, ok := termSet[v]; ok {
			cover = append(cover, v)
		}
	}

	return cover
}
