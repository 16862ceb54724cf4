// Package pmcover covers residual terminals by selecting graph edges
// (a→c) under per-source budgets — maximum coverage subject to a
// partition matroid — in three algorithmic flavors.
//
// What
//
//   - BuildInstance derives the cover instance from the graph and the
//     greedy packs: A = {root} ∪ pack terminals, C = V \ A, and for every
//     edge a→c crossing from A into C the set of terminals reachable
//     from c within the depth cap without leaving C. Budgets are
//     β(a) = ⌈√k⌉ for every a ∈ A.
//   - Half: eager greedy by maximum marginal gain; a ½-approximation
//     for submodular coverage under a partition matroid.
//   - Lazy: the same selection rule accelerated with a max-priority
//     queue of stale gain estimates; submodularity makes gains monotone
//     non-increasing, so Lazy reproduces Half key for key.
//   - Continuous: continuous greedy on the multilinear extension with
//     Monte Carlo gradient estimation, projected into the matroid
//     polytope and rounded greedily — a (1−1/e)-approximation.
//   - Covered reports how many distinct terminals a selection covers.
//
// Determinism
//
//	Instance.Keys is sorted (source, then target, canonical vertex
//	order), every selector iterates keys in that order, and ties always
//	keep the earlier key. Continuous draws all randomness from an
//	explicit seed; a fixed seed yields identical selections on every
//	run and platform.
//
// Complexity (m = |Keys|, k̄ = average coverage-set size)
//
//   - BuildInstance: O(Σ_{a∈A} deg(a) · (V + E)) bounded BFS work.
//   - Half: O(sel · m · k̄) where sel ≤ Σ budgets.
//   - Lazy: O(m log m) heap traffic plus recomputed gains.
//   - Continuous: O(iters · samples · m² · k̄) in the gradient phase.
//
// Usage
//
//	inst, err := pmcover.BuildInstance(g, root, terminals, packs, dstar, k)
//	sel := pmcover.Half(inst, kRem)          // or pmcover.Lazy(inst, kRem)
//	sel, err = pmcover.Continuous(inst, kRem,
//	    pmcover.WithIterations(50), pmcover.WithSamples(20), pmcover.WithSeed(7))
package pmcover
