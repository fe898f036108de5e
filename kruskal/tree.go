// SPDX-License-Identifier: MIT

package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mazes/grid"
)

// Tree is the queue of spanning-tree edges awaiting their wall break. It is
// drained front to back and never refilled.
type Tree struct {
	edges []Edge
	next  int
}

// Compute weights the edges of g and builds a spanning tree with the method
// selected by opts (Kruskal unless WithMethod(MethodPrim)).
//
// Errors: ErrNilGrid, ErrNeedRandSource, ErrUnknownMethod, ErrTopologyMismatch.
func Compute(g *grid.Grid, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	edges, err := Edges(g, o)
	if err != nil {
		return nil, err
	}

	var picked []Edge
	switch o.Method {
	case MethodKruskal:
		picked, err = Kruskal(g, edges)
	case MethodPrim:
		picked, err = Prim(g, edges)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
	if err != nil {
		return nil, err
	}
	return NewTree(picked), nil
}

// NewTree wraps an ordered edge list as a queue.
func NewTree(edges []Edge) *Tree {
	return &Tree{edges: edges}
}

// Len returns the number of edges not yet consumed.
func (t *Tree) Len() int { return len(t.edges) - t.next }

// Empty reports whether every edge has been consumed.
func (t *Tree) Empty() bool { return t.Len() == 0 }

// Edges returns every edge of the tree in queue order, consumed or not.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)
	return out
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() int {
	sum := 0
	for _, e := range t.edges {
		sum += e.Weight
	}
	return sum
}

// Next pops the front edge without touching any grid.
func (t *Tree) Next() (Edge, bool) {
	if t.Empty() {
		return Edge{}, false
	}
	e := t.edges[t.next]
	t.next++
	return e, true
}

// BreakNext pops the front edge and breaks its wall in g. It returns false
// once the queue is empty. If the edge does not fit g the queue is not
// advanced and the error wraps ErrTopologyMismatch.
func (t *Tree) BreakNext(g *grid.Grid) (bool, error) {
	if t.Empty() {
		return false, nil
	}
	if g == nil {
		return false, ErrNilGrid
	}
	e := t.edges[t.next]
	if err := g.BreakWall(e.From, e.To); err != nil {
		return false, fmt.Errorf("%w: %v", ErrTopologyMismatch, err)
	}
	t.next++
	return true, nil
}
