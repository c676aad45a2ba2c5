package bfs

import (
	"fmt"

	"github.com/movrin/wavefront/core"
)

// ConnectedComponents partitions g's vertices into BFS-reachability groups.
// Roots are tried in increasing index order, and each unvisited root seeds
// a fresh traversal over a shared visited set, so every vertex lands in
// exactly one component. An isolated vertex forms a singleton.
//
// Components appear ordered by their smallest vertex, and vertices within
// a component appear in that traversal's visit order. For graphs holding
// one-way edges the grouping reflects forward reachability from each root.
//
// Returns ErrGraphNil for a nil graph. The result shares no memory with g.
//
// Time:   O(V+E).
// Memory: O(V) for visited flags and output.
func ConnectedComponents(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	comps := make([][]int, 0, 1)

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		// BFS to collect component
		queue := []int{root}
		seen[root] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, u, err)
			}
			for _, v := range neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps, nil
}
