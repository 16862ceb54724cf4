// Package simulate implements the telephone-model broadcast simulator.
package simulate

import (
	"time"

	"github.com/katalvlaran/telecast/core"
)

// stackItem pairs a vertex with its depth during the iterative depth
// computation.
type stackItem struct {
	id    string
	depth int
}

// Simulate runs the telephone-model broadcast on tree from root and
// reports the rounds needed to inform every terminal present in the
// tree. See the package documentation for the full contract.
func Simulate(tree *core.Graph, root string, terminals []string, opts ...Option) (Result, error) {
	// 1) Validate input and options; the only hard failures.
	if tree == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if !tree.HasVertex(root) {
		return Result{}, ErrRootNotFound
	}

	deadline := time.Now().Add(o.Timeout)
	expired := func() bool {
		select {
		case <-o.Ctx.Done():
			return true
		default:
		}

		return !time.Now().Before(deadline)
	}

	// 2) Keep only terminals that exist in the tree; nothing to inform
	//    means zero rounds.
	valid := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		if tree.HasVertex(t) && t != root {
			valid[t] = struct{}{}
		}
	}
	if len(valid) == 0 {
		return Result{Rounds: 0, Status: StatusOK}, nil
	}

	// 3) Precompute children lists once; every loop below reuses them.
	children := make(map[string][]string, tree.VertexCount())
	for _, v := range tree.Vertices() {
		succ, err := tree.OutNeighbors(v)
		if err != nil {
			return Result{}, err
		}
		children[v] = succ
	}

	// 4) Iterative depth computation (explicit stack, no recursion).
	depths, state := computeDepths(root, children, o, expired)
	if !state.done {
		return Result{Rounds: 0, Status: state.status}, nil
	}

	// 5) Bush shortcut: on a uniformly branching tree whose valid
	//    terminals are all leaves at one shared depth d ≥ 2, the
	//    per-round handoff reaches the leaf layer in exactly d rounds.
	if d, isBush := bushDepth(valid, children, depths); isBush {
		return Result{Rounds: d, Status: StatusOK}, nil
	}

	// 6) Round-by-round simulation.
	return runRounds(root, valid, children, o, expired), nil
}

// guard reports how a bounded phase ended.
type guard struct {
	done   bool
	status Status
}

// computeDepths walks the tree depth-first with an explicit stack,
// recording the depth of every reached vertex. Successors are pushed in
// reverse canonical order so vertices pop in canonical order.
func computeDepths(root string, children map[string][]string, o Options, expired func() bool) (map[string]int, guard) {
	depths := make(map[string]int, len(children))
	stack := []stackItem{{id: root, depth: 0}}
	iterations := 0

	for len(stack) > 0 {
		if iterations >= o.MaxIterations {
			return nil, guard{status: StatusIterationLimit}
		}
		if iterations%1024 == 0 && expired() {
			return nil, guard{status: StatusTimeout}
		}
		iterations++

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d, seen := depths[top.id]; seen && d <= top.depth {
			continue
		}
		depths[top.id] = top.depth
		succ := children[top.id]
		for i := len(succ) - 1; i >= 0; i-- {
			stack = append(stack, stackItem{id: succ[i], depth: top.depth + 1})
		}
	}

	return depths, guard{done: true}
}

// bushDepth reports whether the tree qualifies for the bush shortcut
// and, if so, the shared terminal depth. Qualifying requires every
// valid terminal to be a leaf reached at one common depth d ≥ 2 and
// every internal vertex to branch (out-degree ≥ 2): a single-child
// internal vertex means a handoff chain, where only the per-round
// simulation gives the exact answer.
func bushDepth(valid map[string]struct{}, children map[string][]string, depths map[string]int) (int, bool) {
	target := -1
	for t := range valid {
		if len(children[t]) != 0 {
			return 0, false
		}
		d, reached := depths[t]
		if !reached {
			return 0, false
		}
		if target == -1 {
			target = d
		} else if d != target {
			return 0, false
		}
	}
	if target < 2 {
		return 0, false
	}
	for _, succ := range children {
		if len(succ) == 1 {
			return 0, false
		}
	}

	return target, true
}

// runRounds executes the telephone rounds until all valid terminals are
// informed, progress stalls, or a guard trips.
func runRounds(root string, valid map[string]struct{}, children map[string][]string, o Options, expired func() bool) Result {
	informed := map[string]struct{}{root: {}}
	informedOrder := []string{root}
	remaining := len(valid)

	rounds := 0
	for remaining > 0 && rounds < o.MaxRounds {
		if expired() {
			return Result{Rounds: rounds, Status: StatusTimeout}
		}
		rounds++

		// Each informed node picks its first uninformed child; all
		// picks land simultaneously.
		var newlyInformed []string
		for _, u := range informedOrder {
			for _, v := range children[u] {
				if _, ok := informed[v]; !ok {
					newlyInformed = append(newlyInformed, v)

					break
				}
			}
		}

		progressed := false
		for _, v := range newlyInformed {
			if _, ok := informed[v]; ok {
				// Two parents picked v in the same round; it is
				// informed once.
				continue
			}
			informed[v] = struct{}{}
			informedOrder = append(informedOrder, v)
			progressed = true
			if _, ok := valid[v]; ok {
				remaining--
			}
		}
		if !progressed {
			// A full round with no new node: the rest is unreachable.
			break
		}
	}

	if remaining > 0 && rounds >= o.MaxRounds {
		return Result{Rounds: rounds, Status: StatusRoundLimit}
	}

	return Result{Rounds: rounds, Status: StatusOK}
}
