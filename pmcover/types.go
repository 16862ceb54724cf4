// Package pmcover declares the cover-instance model, sentinel errors,
// and the functional options of the continuous selector.
package pmcover

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/telecast/core"
)

// Sentinel errors for cover-instance construction and selector options.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pmcover: graph is nil")

	// ErrRootNotFound is returned when the root vertex is absent.
	ErrRootNotFound = errors.New("pmcover: root vertex not found")

	// ErrBadK is returned when k is not positive.
	ErrBadK = errors.New("pmcover: k must be positive")

	// ErrBadDepth is returned when the depth cap is not positive.
	ErrBadDepth = errors.New("pmcover: depth cap must be positive")

	// ErrTerminalNotFound is returned when a terminal is outside the
	// graph or equals the root.
	ErrTerminalNotFound = errors.New("pmcover: terminal not in graph or equals root")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// to Continuous.
	ErrOptionViolation = errors.New("pmcover: invalid option supplied")
)

// Key identifies one selectable cover edge: the partition block A (the
// already-informed source) and the entry vertex C outside the packed
// region.
type Key struct {
	A string
	C string
}

// TerminalSet is a set of terminal IDs.
type TerminalSet map[string]struct{}

// LessKey orders keys by source then target, using the graph's
// canonical vertex order. Instance.Keys is sorted with it and every
// selector breaks ties by it.
func LessKey(a, b Key) bool {
	if a.A != b.A {
		return core.LessID(a.A, b.A)
	}

	return core.LessID(a.C, b.C)
}

// Instance is the partition-matroid coverage instance produced by
// BuildInstance and consumed read-only by the selectors.
type Instance struct {
	// Keys lists all selectable (a,c) edges, sorted by LessKey.
	Keys []Key

	// Sets maps each key to the terminals reachable from key.C within
	// the depth cap without leaving C.
	Sets map[Key]TerminalSet

	// Budgets caps selections per source: at most Budgets[a] keys with
	// A == a may be chosen.
	Budgets map[string]int

	// CoverMap maps each entry vertex c to its witness terminal list in
	// BFS discovery order, used later by tree completion.
	CoverMap map[string][]string
}

// budget returns the cap for source a; sources without an entry have
// budget zero.
func (in *Instance) budget(a string) int { return in.Budgets[a] }

// marginal returns |set \ covered|.
func marginal(set TerminalSet, covered TerminalSet) int {
	gain := 0
	for t := range set {
		if _, ok := covered[t]; !ok {
			gain++
		}
	}

	return gain
}

// Covered returns the number of distinct terminals covered by keys.
// Keys absent from the instance contribute nothing.
func Covered(keys []Key, inst *Instance) int {
	covered := make(TerminalSet)
	for _, key := range keys {
		for t := range inst.Sets[key] {
			covered[t] = struct{}{}
		}
	}

	return len(covered)
}

// Option configures the Continuous selector.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Continuous is invoked.
type Option func(*Options)

// Options holds the tunables of the continuous-greedy selector.
type Options struct {
	// Iterations is the number of continuous-greedy steps; the step
	// size is 1/Iterations.
	Iterations int

	// Samples is the Monte Carlo sample count per gradient estimate.
	Samples int

	// Seed drives all randomness. Seed 0 selects the fixed default
	// seed, so the zero value is still fully reproducible.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// Default tunables of the continuous selector.
const (
	// DefaultIterations is the default continuous-greedy step count.
	DefaultIterations = 50

	// DefaultSamples is the default Monte Carlo sample count.
	DefaultSamples = 20

	// defaultSeed replaces a zero seed; arbitrary but stable.
	defaultSeed int64 = 1
)

// DefaultOptions returns the Options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Samples:    DefaultSamples,
		Seed:       0,
	}
}

// WithIterations sets the continuous-greedy step count (must be > 0).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Iterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Iterations = n
	}
}

// WithSamples sets the Monte Carlo sample count (must be > 0).
func WithSamples(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Samples must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Samples = n
	}
}

// WithSeed fixes the PRNG seed; 0 selects the stable default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// sortKeys sorts keys in place by LessKey.
func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return LessKey(keys[i], keys[j]) })
}
