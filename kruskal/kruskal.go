// SPDX-License-Identifier: MIT

package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mazes/disjointset"
	"github.com/katalvlaran/mazes/grid"
)

// Kruskal selects a spanning tree of g from edges.
//
// Steps:
//  1. Copy edges and stable-sort them by ascending Weight, so equal weights
//     keep emission order.
//  2. Start a disjoint set with one singleton per cell.
//  3. Walk the sorted list from the front: if From and To have different
//     representatives, keep the edge and Union(From, To); otherwise drop it.
//  4. Stop when the list is exhausted.
//
// The result holds the kept edges in selection order; for a connected grid
// that is exactly g.Len()−1 edges.
//
// Complexity: O(E log E + E·h) time (h = representative chain length), O(E+V) memory.
func Kruskal(g *grid.Grid, edges []Edge) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	// 1. Stable sort on a private copy.
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. Singletons.
	reps := disjointset.New(g.Len())
	tree := make([]Edge, 0, max(g.Len()-1, 0))

	// 3. Consume front to back.
	for _, e := range sorted {
		same, err := reps.Same(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %d-%d: %v", ErrTopologyMismatch, e.From, e.To, err)
		}
		if same {
			continue // would close a loop
		}
		if err = reps.Union(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTopologyMismatch, err)
		}
		tree = append(tree, e)
	}

	return tree, nil
}
