// Package builder provides deterministic digraph constructors for
// tests, benchmarks, and the pipeline demo.
//
// What
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...): creates the
//     core.Graph, resolves the builder configuration, and applies the
//     constructors in order.
//   - Topology factories: Path, Star, KaryTree, CompleteDigraph, and
//     RandomDigraph (directed Erdős–Rényi).
//   - Functional options resolve into an immutable configuration:
//     WithSeed / WithRand for stochastic constructors, WithIDScheme for
//     custom vertex naming (decimal IDs by default).
//
// Determinism
//
//	Vertices are added in ascending index order and edge trials run in
//	ascending (i, j) order, so the same inputs, options, and seed
//	produce an identical graph on every run and platform.
//
// Safety
//
//	Constructors never panic at runtime; they validate parameters early
//	and return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//	ErrNeedRandSource, ErrConstructFailed).
//
// Usage
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.RandomDigraph(100, 0.05),
//	)
package builder
