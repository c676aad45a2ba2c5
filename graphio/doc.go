// Package graphio bridges core.Graph and the filesystem.
//
// Decoding: DecodeYAML reads the YAML schema (gopkg.in/yaml.v3), DecodeHCL
// the HCL one (hashicorp/hcl/v2), and LoadFile dispatches on the file
// extension. Both formats fix the vertex count up front and list edges
// either as [from, to] pairs or as explicit from/to/directed entries;
// per-edge direction overrides the graph-level default.
//
// Rendering: WriteDOT emits Graphviz DOT, WriteJSON an indented JSON
// projection of the adjacency structure. Both write exactly what the
// graph stores, entry by entry, in insertion order.
//
// Errors follow the core conventions: sentinel values (ErrUnknownFormat,
// ErrBadEdge, ErrNilGraph) wrap detail via fmt.Errorf, and construction
// failures surface core.ErrNegativeVertexCount and core.ErrVertexRange
// through the chain.
package graphio
