// File: half.go
// Role: Eager greedy ½-approximation under partition-matroid budgets.

package pmcover

// Half greedily selects keys by maximum marginal gain until kRem
// terminals are covered or no key adds coverage. The selection never
// exceeds any source budget; ties keep the earlier key in sorted
// order. Returns an empty, non-nil slice when kRem ≤ 0 or nothing is
// selectable.
//
// Guarantee: the result is an independent set of the partition matroid
// covering at least half of the optimum.
func Half(inst *Instance, kRem int) []Key {
	var (
		selected   = make([]Key, 0)
		isSelected = make(map[Key]struct{})
		covered    = make(TerminalSet)
		used       = make(map[string]int, len(inst.Budgets))
	)
	for len(covered) < kRem {
		// 1) Find the admissible key with maximum marginal gain.
		var (
			best     Key
			bestGain = 0
		)
		for _, key := range inst.Keys {
			if _, ok := isSelected[key]; ok {
				continue
			}
			if used[key.A] >= inst.budget(key.A) {
				continue
			}
			if gain := marginal(inst.Sets[key], covered); gain > bestGain {
				best = key
				bestGain = gain
			}
		}

		// 2) Stop once no key contributes new terminals.
		if bestGain == 0 {
			break
		}

		// 3) Select it and account the budget.
		selected = append(selected, best)
		isSelected[best] = struct{}{}
		used[best.A]++
		for t := range inst.Sets[best] {
			covered[t] = struct{}{}
		}
	}

	return selected
}
