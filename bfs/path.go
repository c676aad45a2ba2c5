package bfs

import (
	"fmt"
)

// ReconstructPath walks parent links backward from end and returns the
// start→end vertex sequence, both endpoints inclusive. The parent table
// must use None for "no parent", as produced by BFS; Parent[start] == None
// and unreached vertices carry None.
//
// Returns the single-element path [start] when end == start, and a nil
// slice with a nil error when end is not reachable from start. Indices
// outside [0, len(parent)) yield ErrVertexRange.
//
// Tables not produced by a traversal rooted at start give unspecified
// sequences; a table whose links cycle or escape the range reports the
// pair as unreachable rather than walking forever.
//
// Complexity: O(L) time and memory, L = path length.
func ReconstructPath(parent []int, start, end int) ([]int, error) {
	n := len(parent)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d on table of %d", ErrVertexRange, start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("%w: end %d on table of %d", ErrVertexRange, end, n)
	}

	// build reversed path
	path := []int{end}
	for cur := parent[end]; cur != None; cur = parent[cur] {
		if cur < 0 || cur >= n || len(path) > n {
			return nil, nil
		}
		path = append(path, cur)
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	// a walk that does not terminate at start never reached end
	if path[0] != start {
		return nil, nil
	}
	return path, nil
}
