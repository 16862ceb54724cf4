package packing_test

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
	"github.com/katalvlaran/telecast/packing"
)

// ExampleGreedyPacking extracts disjoint shallow packs from a
// two-branch digraph.
func ExampleGreedyPacking() {
	g := core.NewGraph()
	g.AddEdge("r", "a")
	g.AddEdge("a", "t1")
	g.AddEdge("a", "t2")
	g.AddEdge("r", "b")
	g.AddEdge("b", "t3")

	packs, _ := packing.GreedyPacking(g, "r", []string{"t1", "t2", "t3"}, 3, 2)
	for _, p := range packs {
		fmt.Println(p)
	}
	// Output:
	// [t1 t2]
	// [t3]
}
