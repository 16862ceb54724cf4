package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/telecast/builder"
	"github.com/katalvlaran/telecast/converters"
	"github.com/katalvlaran/telecast/core"
)

// TestToGonum_Mapping checks the canonical-order node mapping and edge
// transfer.
func TestToGonum_Mapping(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("r", "a"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("r", "b"))

	dg, index, err := converters.ToGonum(g)
	require.NoError(t, err)

	// canonical order: a, b, r
	require.Equal(t, int64(0), index["a"])
	require.Equal(t, int64(1), index["b"])
	require.Equal(t, int64(2), index["r"])

	require.True(t, dg.HasEdgeFromTo(index["r"], index["a"]))
	require.True(t, dg.HasEdgeFromTo(index["a"], index["b"]))
	require.False(t, dg.HasEdgeFromTo(index["b"], index["a"]))

	_, _, err = converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrGraphNil)
}

// TestRoundTrip converts to gonum and back without losing anything.
func TestRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomDigraph(12, 0.3),
	)
	require.NoError(t, err)

	dg, index, err := converters.ToGonum(g)
	require.NoError(t, err)
	back, err := converters.FromGonum(dg, converters.Invert(index))
	require.NoError(t, err)

	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, u := range g.Vertices() {
		want, err := g.OutNeighbors(u)
		require.NoError(t, err)
		got, err := back.OutNeighbors(u)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// TestGonumAnalytics drives a gonum algorithm over a converted graph:
// a directed 3-cycle is one strongly connected component.
func TestGonumAnalytics(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("c", "d")) // dangling tail

	dg, _, err := converters.ToGonum(g)
	require.NoError(t, err)

	sccs := topo.TarjanSCC(dg)
	require.Len(t, sccs, 2)
}
