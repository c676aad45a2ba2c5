package graphio

import (
	"fmt"
	"io"

	"github.com/movrin/wavefront/core"
)

// WriteDOT renders g in Graphviz DOT format, one arrow per stored
// adjacency entry. A bidirectional insertion is stored as its two
// mirrored entries, so it appears as two opposing arrows.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if w == nil {
		return core.ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}

	fmt.Fprintln(w, "digraph wavefront {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=circle];")
	fmt.Fprintln(w, "")

	// Render vertices
	for u := 0; u < g.VertexCount(); u++ {
		fmt.Fprintf(w, "  %d;\n", u)
	}

	fmt.Fprintln(w, "")

	// Render stored entries
	for u := 0; u < g.VertexCount(); u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("graphio: neighbors of %d: %w", u, err)
		}
		for _, v := range neighbors {
			fmt.Fprintf(w, "  %d -> %d;\n", u, v)
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}
