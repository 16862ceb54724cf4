// Package complete stitches greedy packs and selected cover edges into
// a single multicast tree rooted at the broadcast source.
//
// What
//
//   - With at least ρ = ⌈√k⌉ packs ("many trees"), only the first ρ
//     pack representatives are attached, each by a fewest-hop
//     root→representative path; cover edges are ignored.
//   - With fewer packs ("few trees"), each pack contributes the
//     root→representative path plus representative→terminal paths, and
//     each selected cover edge (a→c) contributes the single edge a→c
//     plus c→terminal paths for the witnesses recorded in the cover map.
//   - Every path lookup is best-effort: a missing path skips that
//     contribution and never fails the construction. Cover-map entries
//     naming vertices outside the graph are ignored.
//
// The result is a fresh graph containing only the vertices and edges
// added by the procedure — a subgraph of the input, rooted at root.
// It is a DAG in practice but the simulator does not require in-degree
// one, so overlapping paths are simply united.
//
// Determinism
//
//	Packs and cover edges are walked in their given order and all path
//	queries ride the deterministic BFS, so the same inputs produce the
//	same tree.
//
// Complexity: O((#paths) · (V + E)) — one BFS per stitched path.
package complete
