// Package core implements the adjacency-list graph all wavefront
// traversals run on.
//
// What:
//
//   - Graph fixes its vertex set at construction: vertexCount integer
//     vertices identified by the indices [0, vertexCount).
//   - AddEdge appends neighbor entries in insertion order; duplicates and
//     self-loops are kept, never collapsed.
//   - Edges are bidirectional by default. WithDirected flips the default
//     for the whole graph, WithEdgeDirected overrides a single insertion.
//   - WriteAdjacency and String render the "Graph Adjacency List:" dump
//     used for diagnostics.
//
// Why:
//
//   - Dense integer IDs want slice-indexed adjacency, not hash maps:
//     neighbor lookup is a direct index and iteration order is stable.
//   - Insertion-ordered neighbor sequences make traversal output
//     reproducible run to run.
//
// Concurrency:
//
//   - No internal locking. Serialize mutation externally; concurrent
//     reads are safe once mutation stops.
//
// Errors:
//
//   - ErrNegativeVertexCount: New called with vertexCount < 0.
//   - ErrVertexRange: vertex index outside [0, VertexCount()).
//   - ErrNilWriter: nil writer passed to WriteAdjacency.
package core
