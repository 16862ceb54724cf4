// Package telecast approximates minimum-round multicast schedules for the
// directed k-Multicast Minimum Time (k-MTM) problem under the telephone
// broadcast model: each informed node may forward the message to at most
// one uninformed out-neighbor per round.
//
// 🚀 What is telecast?
//
//	A deterministic, thread-safe toolkit that brings together:
//
//	  • Core primitives: a directed graph with stable successor order
//	  • Greedy packing: vertex-disjoint shallow subtrees rich in terminals
//	  • PMCover: partition-matroid coverage in three flavors
//	    (eager ½-approx, lazy ½-approx, continuous-greedy 1−1/e)
//	  • Tree completion: stitching packs and cover edges into one tree
//	  • Simulation: an exact telephone-model round counter
//
// ✨ Why choose telecast?
//
//   - Reproducible — every iteration order is documented and stable;
//     randomized stages take explicit seeds
//   - Rock-solid   — algorithmic shortfalls are values, never panics
//   - Extensible   — functional options on every entry point
//
// Under the hood, everything is organized per pipeline stage:
//
//	core/       — directed Graph with deterministic enumeration
//	bfs/        — bounded breadth-first search and unweighted paths
//	packing/    — greedy extraction of ≤⌈√k⌉ disjoint packs
//	pmcover/    — cover-instance builder + Half/Lazy/Continuous selectors
//	complete/   — multicast-tree stitching over shortest paths
//	simulate/   — telephone-model broadcast simulator
//	builder/    — deterministic graph generators for tests and demos
//	converters/ — adapters to and from gonum graphs
//
// Quick ASCII example:
//
//	    r ──→ a ──→ t1
//	    │
//	    └──→ b ──→ t2
//
//	informing {t1,t2} from r takes 3 rounds: r→a, then r→b and a→t1,
//	then b→t2.
//
// See complete/pipeline_test.go for an end-to-end run of the pipeline.
//
//	go get github.com/katalvlaran/telecast
package telecast
