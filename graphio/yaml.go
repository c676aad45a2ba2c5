package graphio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/movrin/wavefront/core"
)

// yamlGraph mirrors the YAML graph-definition schema:
//
//	vertices: 8
//	directed: false
//	edges:
//	  - [0, 1]
//	  - {from: 5, to: 6, directed: true}
type yamlGraph struct {
	Vertices int        `yaml:"vertices"`
	Directed bool       `yaml:"directed"`
	Edges    []yamlEdge `yaml:"edges"`
}

// yamlEdge accepts either the [u, v] shorthand or a {from, to, directed}
// mapping. A missing directed key inherits the graph-level default.
type yamlEdge struct {
	From     int
	To       int
	Directed *bool
}

// UnmarshalYAML dispatches on the node kind so both edge forms decode
// into the same struct.
func (e *yamlEdge) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadEdge, node.Line, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: want [u, v], got %d elements", ErrBadEdge, node.Line, len(pair))
		}
		e.From, e.To = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			From     int   `yaml:"from"`
			To       int   `yaml:"to"`
			Directed *bool `yaml:"directed"`
		}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadEdge, node.Line, err)
		}
		e.From, e.To, e.Directed = m.From, m.To, m.Directed
		return nil
	default:
		return fmt.Errorf("%w: line %d: edge must be a [u, v] pair or a mapping", ErrBadEdge, node.Line)
	}
}

// DecodeYAML reads one YAML graph definition from r.
// Unknown top-level keys are rejected; edge insertions surface
// core.ErrVertexRange through the wrapped error chain.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec yamlGraph
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("graphio: decode yaml: %w", err)
	}

	edges := make([]edgeSpec, 0, len(spec.Edges))
	for _, e := range spec.Edges {
		edges = append(edges, edgeSpec{from: e.From, to: e.To, directed: e.Directed})
	}
	return buildGraph(spec.Vertices, spec.Directed, edges)
}
