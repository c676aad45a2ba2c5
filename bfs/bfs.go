// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, per-vertex levels, and parent links.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, level limiting, and neighbor filtering.
package bfs

import (
	"errors"
	"fmt"

	"github.com/movrin/wavefront/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex with its BFS level.
type queueItem struct {
	v     int
	level int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// Neighbors are expanded in the graph's stored insertion order, so Order
// is deterministic for a given construction sequence. The result's Level
// and Parent tables span all of g's vertices, with None for the unreached.
//
// Returns ErrGraphNil for a nil graph, ErrVertexRange when start lies
// outside [0, g.VertexCount()), ErrOptionViolation for bad options,
// ErrNeighbors for graph failures, or any user-supplied hook error.
//
// Complexity: O(V+E) time, O(V) extra memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d on %d vertices", ErrVertexRange, start, n)
	}

	// Prepare walker
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     newResult(n, start),
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, None)
	// Main loop
	return w.res, w.loop()
}

// newResult allocates a Result with Level and Parent filled with None.
func newResult(n, start int) *Result {
	r := &Result{
		Start:  start,
		Order:  make([]int, 0, n),
		Level:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range r.Level {
		r.Level[i] = None
		r.Parent[i] = None
	}
	return r
}

// enqueue marks v visited at level d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Level[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, level: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.level)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.level); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors in stored order, applies filtering
// and MaxLevel, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.v, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		nextLevel := item.level + 1
		if w.opts.MaxLevel > 0 && nextLevel > w.opts.MaxLevel {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextLevel, item.v)
		}
	}
	return nil
}
