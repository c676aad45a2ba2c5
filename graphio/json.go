package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/movrin/wavefront/core"
)

// graphJSON is the JSON projection of a Graph.
type graphJSON struct {
	Vertices  int     `json:"vertices"`
	Directed  bool    `json:"directed"`
	Adjacency [][]int `json:"adjacency"`
}

// WriteJSON renders g as indented JSON. Adjacency rows keep insertion
// order; an isolated vertex renders an empty array.
func WriteJSON(w io.Writer, g *core.Graph) error {
	if w == nil {
		return core.ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}

	out := graphJSON{
		Vertices:  g.VertexCount(),
		Directed:  g.Directed(),
		Adjacency: make([][]int, g.VertexCount()),
	}
	for u := 0; u < g.VertexCount(); u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("graphio: neighbors of %d: %w", u, err)
		}
		out.Adjacency[u] = neighbors
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
