package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/telecast/core"
	"github.com/katalvlaran/telecast/simulate"
)

// ExampleSimulate counts telephone rounds on a small two-branch tree.
func ExampleSimulate() {
	tree := core.NewGraph()
	tree.AddEdge("r", "a")
	tree.AddEdge("a", "t1")
	tree.AddEdge("r", "b")
	tree.AddEdge("b", "t2")

	res, _ := simulate.Simulate(tree, "r", []string{"t1", "t2"})
	fmt.Printf("%d rounds (%s)\n", res.Rounds, res.Status)
	// Output:
	// 3 rounds (ok)
}
