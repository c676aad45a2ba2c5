package core

import (
	"fmt"
)

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// AddEdge appends v to u's neighbor sequence. Unless the graph was built
// with WithDirected (or the call carries WithEdgeDirected(true)), u is also
// appended to v's sequence. A bidirectional self-loop therefore appends the
// vertex to its own sequence twice.
//
// Duplicate insertions are preserved; sequences are never deduplicated.
// Returns ErrVertexRange when u or v lies outside [0, VertexCount()),
// leaving the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge (%d,%d) on %d vertices", ErrVertexRange, u, v, len(g.adj))
	}
	cfg := edgeConfig{directed: g.directed}
	for _, opt := range opts {
		opt(&cfg)
	}
	g.adj[u] = append(g.adj[u], v)
	if !cfg.directed {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++
	return nil
}

// VertexCount returns the number of vertices fixed at construction.
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of successful AddEdge calls.
// A bidirectional insertion counts once, duplicates count each time.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Directed reports whether new edges default to one-way storage.
func (g *Graph) Directed() bool {
	return g.directed
}

// Degree returns the length of u's neighbor sequence. Every stored entry
// counts, so a bidirectional self-loop contributes two.
// Returns ErrVertexRange when u is out of range.
func (g *Graph) Degree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, fmt.Errorf("%w: vertex %d on %d vertices", ErrVertexRange, u, len(g.adj))
	}
	return len(g.adj[u]), nil
}

// HasEdge reports whether v appears in u's neighbor sequence.
// Out-of-range indices report false rather than an error.
//
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	for _, nb := range g.adj[u] {
		if nb == v {
			return true
		}
	}
	return false
}

// Neighbors returns a copy of u's neighbor sequence in insertion order.
// The returned slice shares no memory with the graph and is never nil.
// Returns ErrVertexRange when u is out of range.
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: vertex %d on %d vertices", ErrVertexRange, u, len(g.adj))
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])
	return out, nil
}

// Clone returns a deep copy of g. Mutating the clone leaves g untouched.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed: g.directed,
		adj:      make([][]int, len(g.adj)),
		edges:    g.edges,
	}
	for u, nbs := range g.adj {
		if len(nbs) == 0 {
			continue
		}
		c.adj[u] = make([]int, len(nbs))
		copy(c.adj[u], nbs)
	}
	return c
}
