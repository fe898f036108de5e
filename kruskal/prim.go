// SPDX-License-Identifier: MIT

package kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazes/grid"
)

// Prim grows a spanning tree of g outward from g.Start() over edges.
//
// Steps:
//  1. Index every edge under both endpoints.
//  2. Mark the start cell and push its edges onto a min-heap ordered by
//     (Weight, emission index).
//  3. Pop the lightest edge; skip it if both ends are already in the tree,
//     otherwise keep it, mark the new end and push that cell's edges.
//  4. Stop when the heap is empty.
//
// The result lists edges in growth order, so animated construction spreads
// from the start cell.
//
// Complexity: O(E log E) time, O(E+V) memory.
func Prim(g *grid.Grid, edges []Edge) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Len()
	if n == 0 {
		return nil, nil
	}

	// 1. Incidence lists of edge indices.
	incident := make([][]int, n)
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: %d-%d", ErrTopologyMismatch, e.From, e.To)
		}
		incident[e.From] = append(incident[e.From], i)
		incident[e.To] = append(incident[e.To], i)
	}

	// 2. Seed from the start cell.
	inTree := make([]bool, n)
	pq := &edgePQ{edges: edges}
	heap.Init(pq)
	grow := func(id int) {
		inTree[id] = true
		for _, i := range incident[id] {
			if !inTree[edges[i].From] || !inTree[edges[i].To] {
				heap.Push(pq, i)
			}
		}
	}
	grow(g.Start())

	// 3. Expand.
	tree := make([]Edge, 0, n-1)
	for pq.Len() > 0 {
		e := edges[heap.Pop(pq).(int)]
		switch {
		case inTree[e.From] && inTree[e.To]:
			continue
		case inTree[e.From]:
			grow(e.To)
		default:
			grow(e.From)
		}
		tree = append(tree, e)
	}

	return tree, nil
}

// edgePQ is a min-heap of indices into edges, ordered by weight and then by
// index so ties resolve in emission order.
type edgePQ struct {
	edges []Edge
	items []int
}

func (pq edgePQ) Len() int { return len(pq.items) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if pq.edges[a].Weight != pq.edges[b].Weight {
		return pq.edges[a].Weight < pq.edges[b].Weight
	}
	return a < b
}

func (pq edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	last := old[len(old)-1]
	pq.items = old[:len(old)-1]
	return last
}
