// Package bfs declares tunable options, sentinel errors, and the Result
// type for bounded breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo and ShortestPath when the
	// destination was not reached.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops from the
	// start. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterVertex gates which vertices may be entered. The start vertex
	// is always admitted. nil means all vertices are allowed.
	FilterVertex func(id string) bool

	// StopWhen, if non-nil, halts the whole search right after visiting
	// a vertex for which it returns true.
	StopWhen func(id string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// background context, no depth limit, no filter, no early stop.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps the search at the given hop depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterVertex admits only vertices for which fn returns true.
// The start vertex bypasses the filter.
func WithFilterVertex(fn func(id string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterVertex = fn
		}
	}
}

// WithStopWhen halts the search after visiting a vertex satisfying fn.
func WithStopWhen(fn func(id string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.StopWhen = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its hop distance from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree;
//     the start vertex has no entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start→dest path along parent links.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
