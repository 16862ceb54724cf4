package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/telecast/bfs"
	"github.com/katalvlaran/telecast/core"
)

// chain builds the directed path 0→1→…→n-1.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	ids := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(ids[i-1], ids[i])
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_DirectedOrder checks visit order on a directed fan plus chain.
func TestBFS_DirectedOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("r", "b"))
	require.NoError(t, g.AddEdge("r", "a"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("c", "r")) // back edge must not revisit

	res, err := bfs.BFS(g, "r")
	require.NoError(t, err)
	require.Equal(t, []string{"r", "a", "b", "c"}, res.Order)
	require.Equal(t, 0, res.Depth["r"])
	require.Equal(t, 1, res.Depth["a"])
	require.Equal(t, 2, res.Depth["c"])
	require.Equal(t, "a", res.Parent["c"])
	_, hasRootParent := res.Parent["r"]
	require.False(t, hasRootParent)
}

// TestBFS_MaxDepth verifies the hop cap: depth d admits exactly the
// vertices within d hops.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(5)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)

	// 0 means unlimited
	res, err = bfs.BFS(g, "0", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, res.Order, 5)
}

// TestBFS_FilterVertex verifies the vertex filter, including that the
// start vertex bypasses it.
func TestBFS_FilterVertex(t *testing.T) {
	g := chain(4)
	blocked := map[string]bool{"0": true, "2": true}

	res, err := bfs.BFS(g, "0", bfs.WithFilterVertex(func(id string) bool { return !blocked[id] }))
	require.NoError(t, err)
	// "0" is admitted as the start even though the filter rejects it;
	// "2" cuts the chain, so "3" is unreachable.
	require.Equal(t, []string{"0", "1"}, res.Order)
}

// TestBFS_StopWhen verifies the early-stop predicate halts the search.
func TestBFS_StopWhen(t *testing.T) {
	g := chain(6)

	res, err := bfs.BFS(g, "0", bfs.WithStopWhen(func(id string) bool { return id == "2" }))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)
}

// TestBFS_ContextCancel verifies a cancelled context aborts the walk.
func TestBFS_ContextCancel(t *testing.T) {
	g := chain(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestPathTo_ShortestPath covers path reconstruction and ErrNoPath.
func TestPathTo_ShortestPath(t *testing.T) {
	g := core.NewGraph()
	// two routes r→t: length 3 and length 2
	require.NoError(t, g.AddEdge("r", "a"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "t"))
	require.NoError(t, g.AddEdge("r", "c"))
	require.NoError(t, g.AddEdge("c", "t"))

	path, err := bfs.ShortestPath(g, "r", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"r", "c", "t"}, path)

	require.NoError(t, g.AddVertex("island"))
	_, err = bfs.ShortestPath(g, "r", "island")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	// paths are directed: t cannot reach r
	_, err = bfs.ShortestPath(g, "t", "r")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Determinism runs the same traversal twice and expects
// identical orders.
func TestBFS_Determinism(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "5"}, {"0", "3"}, {"3", "4"}, {"5", "4"}, {"4", "1"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	a, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	b, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	require.Equal(t, a.Order, b.Order)
}
