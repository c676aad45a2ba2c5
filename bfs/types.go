// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// None marks the absence of a vertex in Level and Parent tables:
// an unreached vertex has Level[v] == None and Parent[v] == None,
// and the start vertex itself has Parent[start] == None.
const None = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexRange is returned when a vertex index lies outside the
	// graph's (or parent table's) valid range.
	ErrVertexRange = errors.New("bfs: vertex index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex and its level (distance in edges) from the start.
	OnEnqueue func(v, level int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, level int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, level int) error

	// MaxLevel, if > 0, stops exploring beyond this level.
	// A value of 0 explicitly disables any limit.
	MaxLevel int

	// FilterNeighbor can skip edges by returning false.
	// Called for each stored entry curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - no level limit (MaxLevel == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxLevel:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		err:            nil,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, level int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxLevel stops the search at the given level (inclusive).
//
//	d > 0: visit vertices up to level d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxLevel(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxLevel cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxLevel = 0
		default:
			o.MaxLevel = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the vertex the traversal was rooted at.
//   - Order: vertices visited, in visit sequence.
//   - Level: per-vertex distance (in edges) from the start; None if unreached.
//   - Parent: per-vertex predecessor in the BFS tree; None for the start
//     vertex and for unreached vertices.
//
// Level and Parent always span the full vertex range of the traversed
// graph. All three slices are freshly allocated and safe to retain.
type Result struct {
	Start  int
	Order  []int
	Level  []int
	Parent []int
}

// PathTo reconstructs the start→end path recorded by this traversal.
// Semantics match ReconstructPath applied to r.Parent and r.Start.
func (r *Result) PathTo(end int) ([]int, error) {
	return ReconstructPath(r.Parent, r.Start, end)
}
