// Package bfs provides bounded breadth-first search over a directed
// core.Graph, returning visit order, hop depths, and parent links.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - WithMaxDepth caps expansion at a hop budget (0 = unlimited).
//   - WithFilterVertex restricts which vertices may be entered; the start
//     vertex is always admitted regardless of the filter.
//   - WithStopWhen halts the search as soon as a visited vertex satisfies
//     a caller predicate (early stop on terminal discovery).
//
// Why
//
//   - Every stage of the multicast pipeline is built on depth-capped BFS:
//     pack discovery scans candidate subtrees, the cover builder measures
//     reachable terminals inside the residual vertex set, and tree
//     completion stitches unweighted shortest paths via Result.PathTo.
//
// Determinism
//
//	Because core.OutNeighbors returns successors in canonical order and
//	BFS enqueues them in that order, the visit sequence is fully
//	reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth, Parent, and the visited set
//
// Usage
//
//	res, err := bfs.BFS(g, "r",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterVertex(func(id string) bool { return id != "blocked" }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation
//	}
//	path, err := res.PathTo("t") // start → t, fewest hops
package bfs
