// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, per-vertex levels, and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Level: per-vertex distance (edges) from start, None if unreached
//   - Parent: per-vertex predecessor in the BFS tree, None at the root
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxLevel limit (d>0) or explicit "no limit" (d==0).
//   - ConnectedComponents sweeps every vertex into exactly one
//     reachability group using a shared visited set.
//   - ReconstructPath (and Result.PathTo) turn a parent table back into
//     an explicit start→end vertex sequence.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, component structure, and level layering.
//
// Determinism
//
//	core.Neighbors returns entries in edge-insertion order, and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible
//	for a given construction sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and stored entry seen at most once)
//   - Memory: O(V)       (queue, Level, Parent, visited flags)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // handle one of:
//	    // ErrGraphNil, ErrVertexRange, ErrOptionViolation, ErrNeighbors, or hook errors
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithMaxLevel(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 5 }),
//	    bfs.WithOnVisit(func(v, level int) error { return nil }),
//	)
//
//	// Components and paths:
//	comps, err := bfs.ConnectedComponents(g)
//	path, err := result.PathTo(4)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrVertexRange     if a vertex index is out of range.
//   - ErrOptionViolation if an invalid Option (e.g. negative MaxLevel).
//   - ErrNeighbors       if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
