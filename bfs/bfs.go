// Package bfs implements bounded breadth-first search over a directed
// core.Graph with deterministic successor order.
package bfs

import (
	"github.com/katalvlaran/telecast/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID, applying
// any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ErrOptionViolation for bad options; a cancelled context surfaces its
// own error. The start vertex is always visited at depth 0, even when
// a vertex filter would reject it.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 1),
		visited: make(map[string]bool),
		res: &Result{
			Order:  make([]string, 0, 1),
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// ShortestPath returns the fewest-hop from→to path in g, including both
// endpoints. Returns ErrNoPath when to is unreachable from from.
func ShortestPath(g *core.Graph, from, to string) ([]string, error) {
	res, err := BFS(g, from, WithStopWhen(func(id string) bool { return id == to }))
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// enqueue marks id visited at depth d, records its parent, and adds it
// to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, early stop, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if w.opts.StopWhen != nil && w.opts.StopWhen(item.id) {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves successors, applies filtering and MaxDepth,
// and enqueues each unseen admitted successor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	succ, err := w.graph.OutNeighbors(item.id)
	if err != nil {
		// item.id was enqueued from this very graph; only concurrent
		// external mutation can trip this.
		return err
	}
	for _, nbr := range succ {
		if w.visited[nbr] {
			continue
		}
		if w.opts.FilterVertex != nil && !w.opts.FilterVertex(nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
