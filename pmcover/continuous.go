// File: continuous.go
// Role: Continuous greedy + greedy rounding, the (1−1/e)-approximation.
//
// Determinism: all randomness flows from one explicit seed (seed 0 maps
// to a fixed default, so the zero value stays reproducible); gradient
// ties and fractional-weight ties resolve by ascending key index, which
// is sorted key order.

package pmcover

import (
	"math/rand"
	"sort"
)

// Continuous approximates maximum coverage under the partition matroid
// via continuous greedy on the multilinear extension: per iteration it
// estimates the gradient by Monte Carlo sampling, steps the fractional
// vector along the best budget-feasible direction, and finally rounds
// greedily by descending fractional weight until kRem terminals are
// covered. Returns ErrOptionViolation for invalid options.
//
// Complexity: O(iters · samples · m² · k̄) for m keys of average
// coverage size k̄.
func Continuous(inst *Instance, kRem int, opts ...Option) ([]Key, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := rngFromSeed(o.Seed)

	var (
		m  = len(inst.Keys)
		x  = make([]float64, m)
		dt = 1.0 / float64(o.Iterations)
	)

	// Continuous-greedy phase.
	grad := make([]float64, m)
	used := make(map[string]int, len(inst.Budgets))
	for iter := 0; iter < o.Iterations; iter++ {
		estimateGradient(inst, x, grad, o.Samples, rng)

		// Project the step into the matroid polytope: raise x along the
		// largest gradients that still fit their source budget.
		for a := range used {
			delete(used, a)
		}
		for _, i := range keysByDescending(grad) {
			a := inst.Keys[i].A
			if used[a] >= inst.budget(a) {
				continue
			}
			x[i] += dt
			if x[i] > 1.0 {
				x[i] = 1.0
			}
			used[a]++
		}
	}

	// Rounding phase: greedy by fractional weight under budgets.
	var (
		selected = make([]Key, 0)
		covered  = make(TerminalSet)
	)
	for a := range used {
		delete(used, a)
	}
	for _, i := range keysByDescending(x) {
		if len(covered) >= kRem {
			break
		}
		key := inst.Keys[i]
		if used[key.A] >= inst.budget(key.A) {
			continue
		}
		selected = append(selected, key)
		used[key.A]++
		for t := range inst.Sets[key] {
			covered[t] = struct{}{}
		}
	}

	return selected, nil
}

// estimateGradient fills grad with Monte Carlo estimates of ∂F/∂x_i:
// the expected marginal coverage of key i over random subsets drawn
// with inclusion probabilities x.
func estimateGradient(inst *Instance, x []float64, grad []float64, samples int, rng *rand.Rand) {
	m := len(inst.Keys)
	sample := make([]bool, m)
	for i := 0; i < m; i++ {
		gainSum := 0.0
		for s := 0; s < samples; s++ {
			for j := 0; j < m; j++ {
				sample[j] = rng.Float64() < x[j]
			}
			// Measure key i against R \ {i}, so each sample contributes
			// f(R ∪ {i}) − f(R \ {i}).
			sample[i] = false
			gainSum += float64(sampleMarginal(inst, sample, i))
		}
		grad[i] = gainSum / float64(samples)
	}
}

// sampleMarginal returns f(R ∪ {i}) − f(R) for the sampled subset R:
// the number of terminals of key i not covered by any sampled key.
func sampleMarginal(inst *Instance, sample []bool, i int) int {
	covered := make(TerminalSet)
	for j, in := range sample {
		if !in {
			continue
		}
		for t := range inst.Sets[inst.Keys[j]] {
			covered[t] = struct{}{}
		}
	}

	return marginal(inst.Sets[inst.Keys[i]], covered)
}

// keysByDescending returns key indices sorted by descending weight;
// equal weights keep ascending index order (sorted key order).
func keysByDescending(weight []float64) []int {
	order := make([]int, len(weight))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return weight[order[i]] > weight[order[j]] })

	return order
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use the fixed default seed; otherwise use the seed
// verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
