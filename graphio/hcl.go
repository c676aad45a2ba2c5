package graphio

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/movrin/wavefront/core"
)

// hclGraphFile is the top-level HCL schema: one graph block per file.
//
//	graph {
//	  vertices = 8
//	  edges    = [[0, 1], [0, 2]]
//
//	  edge {
//	    from     = 5
//	    to       = 6
//	    directed = true
//	  }
//	}
type hclGraphFile struct {
	Graph hclGraphBlock `hcl:"graph,block"`
}

type hclGraphBlock struct {
	Vertices   int            `hcl:"vertices"`
	Directed   bool           `hcl:"directed,optional"`
	Edges      hcl.Expression `hcl:"edges,optional"`
	EdgeBlocks []hclEdgeBlock `hcl:"edge,block"`
}

// hclEdgeBlock is the long edge form; directed is a per-edge override.
type hclEdgeBlock struct {
	From     int   `hcl:"from"`
	To       int   `hcl:"to"`
	Directed *bool `hcl:"directed,optional"`
}

// DecodeHCL parses path as an HCL graph definition. The edges attribute
// holds [from, to] pairs; edge blocks add entries with per-edge direction.
func DecodeHCL(path string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphio: parse %s: %w", path, diags)
	}

	var spec hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &spec); diags.HasErrors() {
		return nil, fmt.Errorf("graphio: decode %s: %w", path, diags)
	}

	edges, err := edgePairs(spec.Graph.Edges)
	if err != nil {
		return nil, err
	}
	for _, b := range spec.Graph.EdgeBlocks {
		edges = append(edges, edgeSpec{from: b.From, to: b.To, directed: b.Directed})
	}
	return buildGraph(spec.Graph.Vertices, spec.Graph.Directed, edges)
}

// edgePairs statically evaluates the edges attribute into edge specs.
// An absent attribute yields no edges.
func edgePairs(expr hcl.Expression) ([]edgeSpec, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphio: evaluate edges: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("%w: edges must be a list of [from, to] pairs", ErrBadEdge)
	}

	var out []edgeSpec
	for it := val.ElementIterator(); it.Next(); {
		_, pairVal := it.Element()
		pairTy := pairVal.Type()
		if !pairTy.IsTupleType() && !pairTy.IsListType() {
			return nil, fmt.Errorf("%w: edge entries must be [from, to] pairs", ErrBadEdge)
		}
		elems := pairVal.AsValueSlice()
		if len(elems) != 2 {
			return nil, fmt.Errorf("%w: want [from, to], got %d elements", ErrBadEdge, len(elems))
		}
		var from, to int
		if err := gocty.FromCtyValue(elems[0], &from); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEdge, err)
		}
		if err := gocty.FromCtyValue(elems[1], &to); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEdge, err)
		}
		out = append(out, edgeSpec{from: from, to: to})
	}
	return out, nil
}
