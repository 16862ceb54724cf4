// Package converters implements core.Graph ⇄ gonum adapters.
package converters

import (
	"errors"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/telecast/core"
)

// Sentinel errors for conversions.
var (
	// ErrGraphNil is returned if a nil graph is passed either way.
	ErrGraphNil = errors.New("converters: graph is nil")
)

// ToGonum copies g into a fresh simple.DirectedGraph. Node IDs are
// assigned 0..n-1 in the canonical vertex order of g; the returned
// index maps vertex IDs to gonum node IDs.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.DirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	dg := simple.NewDirectedGraph()
	vertices := g.Vertices()
	index := make(map[string]int64, len(vertices))
	for i, v := range vertices {
		index[v] = int64(i)
		dg.AddNode(simple.Node(int64(i)))
	}

	for _, u := range vertices {
		succ, err := g.OutNeighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range succ {
			dg.SetEdge(simple.Edge{F: simple.Node(index[u]), T: simple.Node(index[v])})
		}
	}

	return dg, index, nil
}

// Invert flips a vertex→node index into the node→vertex form FromGonum
// consumes.
func Invert(index map[string]int64) map[int64]string {
	ids := make(map[int64]string, len(index))
	for v, id := range index {
		ids[id] = v
	}

	return ids
}

// FromGonum copies a gonum directed graph into a fresh core.Graph.
// Vertex names come from ids; nodes without a mapping fall back to the
// decimal form of their gonum ID. Self-loops are skipped (core forbids
// them).
// Complexity: O(V log V + E).
func FromGonum(dg graph.Directed, ids map[int64]string) (*core.Graph, error) {
	if dg == nil {
		return nil, ErrGraphNil
	}

	name := func(id int64) string {
		if v, ok := ids[id]; ok {
			return v
		}

		return strconv.FormatInt(id, 10)
	}

	// Collect and sort node IDs so construction order is reproducible
	// regardless of gonum's iteration order.
	var nodeIDs []int64
	nodes := dg.Nodes()
	for nodes.Next() {
		nodeIDs = append(nodeIDs, nodes.Node().ID())
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	g := core.NewGraph(core.WithVerticesHint(len(nodeIDs)))
	for _, id := range nodeIDs {
		if err := g.AddVertex(name(id)); err != nil {
			return nil, err
		}
	}
	for _, uid := range nodeIDs {
		to := dg.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if vid == uid {
				continue
			}
			if err := g.AddEdge(name(uid), name(vid)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
