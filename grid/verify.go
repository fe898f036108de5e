// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Components groups the cells into regions connected by open passages. Each
// component lists cell ids in BFS order from its lowest id; components are
// ordered by their lowest id.
//
// Time:   O(N·d).
// Memory: O(N).
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for id := range g.cells {
		if seen[id] {
			continue
		}
		// BFS to collect component
		queue := []int{id}
		seen[id] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.AccessibleNeighbors(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// HasCycle reports whether the open passages contain a loop. It runs an
// iterative DFS that remembers each cell's DFS parent; an open neighbor other
// than the parent that was already reached closes a loop.
//
// Time:   O(N·d).
// Memory: O(N).
func (g *Grid) HasCycle() bool {
	seen := make([]bool, len(g.cells))
	type frame struct{ id, parent int }

	for root := range g.cells {
		if seen[root] {
			continue
		}
		stack := []frame{{id: root, parent: noNeighbor}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[top.id] {
				// pushed by two different cells
				return true
			}
			seen[top.id] = true
			for _, v := range g.AccessibleNeighbors(top.id) {
				if v == top.parent {
					continue
				}
				if seen[v] {
					return true
				}
				stack = append(stack, frame{id: v, parent: top.id})
			}
		}
	}
	return false
}

// Verify checks that the open passages form a spanning tree: every cell is
// reachable from Start and there are exactly N−1 passages with no loop.
func (g *Grid) Verify() error {
	comps := g.Components()
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d regions", ErrDisconnected, len(comps))
	}
	if g.HasCycle() {
		return ErrCycle
	}
	if p := g.Passages(); p != len(g.cells)-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrCycle, p, len(g.cells))
	}
	return nil
}
