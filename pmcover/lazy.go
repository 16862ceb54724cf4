// File: lazy.go
// Role: Lazy-greedy ½-approximation using a max-priority queue of gain
// estimates, in the container/heap idiom.
//
// Correctness: coverage is submodular, so true marginal gains only
// shrink as the covered set grows. A popped estimate that still equals
// the recomputed gain is therefore the current maximum, and Lazy
// selects exactly the keys Half would.

package pmcover

import "container/heap"

// lazyItem pairs a key with its (possibly stale) gain estimate.
type lazyItem struct {
	gain int
	key  Key
}

// lazyHeap is a max-heap over (gain, key); equal gains pop in sorted
// key order so that Lazy tie-breaks exactly like Half.
type lazyHeap []lazyItem

func (h lazyHeap) Len() int { return len(h) }

func (h lazyHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}

	return LessKey(h[i].key, h[j].key)
}

func (h lazyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *lazyHeap) Push(x any) { *h = append(*h, x.(lazyItem)) }

func (h *lazyHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Lazy selects the same keys as Half, recomputing marginal gains only
// when a stale estimate reaches the top of the queue. Initial estimates
// are the full coverage-set sizes, a valid upper bound.
// Returns an empty, non-nil slice when kRem ≤ 0 or nothing is selectable.
func Lazy(inst *Instance, kRem int) []Key {
	var (
		selected = make([]Key, 0)
		covered  = make(TerminalSet)
		used     = make(map[string]int, len(inst.Budgets))
	)

	// Seed the queue with optimistic estimates.
	h := make(lazyHeap, 0, len(inst.Keys))
	for _, key := range inst.Keys {
		h = append(h, lazyItem{gain: len(inst.Sets[key]), key: key})
	}
	heap.Init(&h)

	for len(covered) < kRem && h.Len() > 0 {
		it := heap.Pop(&h).(lazyItem)
		trueGain := marginal(inst.Sets[it.key], covered)

		switch {
		case trueGain == it.gain && used[it.key.A] < inst.budget(it.key.A):
			// Estimate is current: this is the true maximum. Select.
			selected = append(selected, it.key)
			used[it.key.A]++
			for t := range inst.Sets[it.key] {
				covered[t] = struct{}{}
			}
		case used[it.key.A] < inst.budget(it.key.A) && trueGain > 0:
			// Stale but still useful: refresh the estimate and requeue.
			heap.Push(&h, lazyItem{gain: trueGain, key: it.key})
		default:
			// Budget exhausted or nothing left to gain: drop the key.
		}
	}

	return selected
}
