package core

import (
	"fmt"
	"io"
	"strings"
)

// WriteAdjacency writes a diagnostic listing of the graph to w:
//
//	Graph Adjacency List:
//	0 -> [1 2]
//	1 -> [0 3]
//	2 -> [0]
//	3 -> [1]
//
// One line per vertex in increasing index order; an isolated vertex renders
// an empty list. Returns ErrNilWriter for a nil writer, otherwise the first
// write error encountered.
//
// Complexity: O(V+E).
func (g *Graph) WriteAdjacency(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := fmt.Fprintln(w, "Graph Adjacency List:"); err != nil {
		return err
	}
	for u := range g.adj {
		if _, err := fmt.Fprintf(w, "%d -> %v\n", u, g.adj[u]); err != nil {
			return err
		}
	}
	return nil
}

// String returns the WriteAdjacency listing as a string.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.WriteAdjacency(&sb)
	return sb.String()
}
