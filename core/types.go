// Package core defines the adjacency-list Graph at the heart of wavefront,
// along with its construction options and sentinel errors.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a constructor call with vertexCount < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")
	// ErrVertexRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexRange = errors.New("core: vertex index out of range")
	// ErrNilWriter indicates a nil io.Writer was supplied to a dump method.
	ErrNilWriter = errors.New("core: nil writer")
)

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes edges one-way (u→v only) by default.
// Individual insertions may still override via WithEdgeDirected.
func WithDirected() Option {
	return func(g *Graph) {
		g.directed = true
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig holds per-insertion settings, seeded from the graph defaults.
type edgeConfig struct {
	directed bool
}

// WithEdgeDirected overrides the graph's default orientation for one edge:
// true stores u→v only, false stores the mirrored pair.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) {
		c.directed = directed
	}
}

// Graph is a fixed-order graph over the integer vertices [0, VertexCount()).
// The vertex set is fixed at construction; edges are appended afterwards.
//
// Each vertex owns a neighbor sequence that preserves insertion order and
// keeps duplicates, so parallel edges and self-loops are representable.
// By default insertions are bidirectional: AddEdge(u, v) appends v to u's
// sequence and u to v's.
//
// Graph performs no internal locking. Callers must serialize mutation;
// once mutation stops, any number of goroutines may read concurrently.
type Graph struct {
	directed bool    // default orientation for new edges
	adj      [][]int // adj[u] = neighbors of u in insertion order
	edges    int     // AddEdge insertions (a bidirectional edge counts once)
}

// New constructs an empty Graph over vertexCount vertices and applies opts.
// A zero vertexCount yields a usable graph that accepts no edges.
// Returns ErrNegativeVertexCount when vertexCount < 0.
//
// Complexity: O(V).
func New(vertexCount int, opts ...Option) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{
		adj: make([][]int, vertexCount),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}
