// Package wavefront is an in-memory toolkit for building integer-indexed
// adjacency-list graphs and answering breadth-first questions about them.
//
// 🚀 What is wavefront?
//
//	A small, focused library that brings together:
//		• Core primitives: fixed vertex set, insertion-ordered adjacency,
//		  duplicates and self-loops kept as stored
//		• Traversal: BFS with visit order, level and parent tables
//		• Structure: reachability components over a shared visited set
//		• Routing: fewest-hop path reconstruction from parent links
//		• I/O: YAML and HCL graph definitions, DOT and JSON rendering
//
// ✨ Why choose wavefront?
//
//   - Deterministic – stored order in, stored order out, every run
//   - Explicit errors – sentinel values, wrapped with context
//   - Extensible – traversal hooks (OnVisit, OnEnqueue…) for custom logic
//   - No locks – immutable-after-build graphs read safely from any goroutine
//
// Everything is organized under four packages:
//
//	core/          — the Graph type: construction, edges, adjacency dump
//	bfs/           — BFS, ConnectedComponents, ReconstructPath
//	graphio/       — YAML/HCL decoding, DOT/JSON rendering
//	cmd/wavefront/ — the command-line front end
//
// Quick ASCII example:
//
//	    0───1───3        5───6───7
//	    │
//	    2───4
//
//	bfs.BFS(g, 0) visits [0 1 2 3 4] and leaves {5,6,7} at level -1;
//	bfs.ConnectedComponents(g) yields [[0 1 2 3 4] [5 6 7]].
//
//	go get github.com/movrin/wavefront
package wavefront
