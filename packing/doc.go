// Package packing extracts vertex-disjoint shallow subtrees ("packs")
// that cover many terminals, the first stage of the k-MTM pipeline.
//
// What
//
//   - GreedyPacking repeatedly scans all unused vertices, scores each
//     candidate by how many still-uncovered terminals its depth-capped
//     BFS subtree reaches inside the unused region, and keeps the best.
//   - ρ = ⌈√k⌉ is both the pack count bound and the pack-size target:
//     each candidate BFS stops at its ρ-th discovered terminal, so a
//     pack consumes only the vertices seen up to that point and later
//     rounds can still find disjoint packs nearby.
//   - Each pack is the list of terminals it covers, in BFS discovery
//     order.
//   - GreedyPackingTrace additionally reports the union of all
//     discovery subtrees (plus the root), which the cover-instance
//     builder needs to split the graph into covered and residual parts.
//
// Invariants
//
//   - Discovery subtrees of distinct packs share no vertex, and none
//     contains the root: every candidate BFS is restricted to vertices
//     not yet used.
//   - Pack terminal lists are non-empty and pairwise disjoint.
//   - len(packs) ≤ ρ.
//
// Edge cases
//
//   - k = 1: ρ = 1, so the candidate BFS stops at the first terminal
//     discovered and the pack holds exactly that terminal.
//   - A terminal that no other vertex reaches within the depth cap is
//     still its own candidate root and forms a single-terminal pack, so
//     valid input always yields at least one pack.
//
// Determinism
//
//	Candidates are scanned in the graph's canonical vertex order and a
//	strictly better score is required to displace the incumbent, so tie
//	scores keep the earlier candidate. Identical input yields identical
//	packs on every run.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time: O(ρ · V · (V + E)) — ρ rounds of a full candidate scan,
//     each candidate a bounded BFS.
//   - Memory: O(V).
package packing
