// Package graphio loads core.Graph definitions from YAML and HCL files
// and renders graphs to DOT and JSON.
package graphio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/movrin/wavefront/core"
)

// Sentinel errors for graph loading and rendering.
var (
	// ErrUnknownFormat indicates a file extension no decoder claims.
	ErrUnknownFormat = errors.New("graphio: unknown graph format")
	// ErrBadEdge indicates an edge entry that does not fit the schema.
	ErrBadEdge = errors.New("graphio: malformed edge entry")
	// ErrNilGraph indicates a nil graph passed to a renderer.
	ErrNilGraph = errors.New("graphio: graph is nil")
)

// edgeSpec is one decoded edge before insertion. A nil directed
// inherits the graph-level default.
type edgeSpec struct {
	from, to int
	directed *bool
}

// buildGraph constructs a core.Graph from a decoded definition.
// Construction and insertion errors pass through wrapped, so callers can
// match core.ErrNegativeVertexCount and core.ErrVertexRange.
func buildGraph(vertices int, directed bool, edges []edgeSpec) (*core.Graph, error) {
	var opts []core.Option
	if directed {
		opts = append(opts, core.WithDirected())
	}
	g, err := core.New(vertices, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	for _, e := range edges {
		var eopts []core.EdgeOption
		if e.directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.directed))
		}
		if err = g.AddEdge(e.from, e.to, eopts...); err != nil {
			return nil, fmt.Errorf("graphio: edge (%d,%d): %w", e.from, e.to, err)
		}
	}
	return g, nil
}

// LoadFile reads a graph definition from path, dispatching on the file
// extension: .yaml/.yml decode as YAML, .hcl as HCL. Unclaimed extensions
// yield ErrUnknownFormat.
func LoadFile(path string) (*core.Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		defer f.Close()
		return DecodeYAML(f)
	case ".hcl":
		return DecodeHCL(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
