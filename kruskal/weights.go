// SPDX-License-Identifier: MIT

package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/topology"
)

// Edges turns every half-edge of g into a weighted Edge, in emission order
// (row-major, then per-cell half-edge direction order). That order is the
// tie-break for equal weights in both builders.
//
// Complexity: O(E) time and memory.
func Edges(g *grid.Grid, opts Options) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.WeightFn == nil && opts.Rand == nil {
		return nil, fmt.Errorf("edges: %w", ErrNeedRandSource)
	}

	links := g.HalfEdges()
	edges := make([]Edge, len(links))
	for i, l := range links {
		edges[i] = Edge{From: l.From, To: l.To, Dir: l.Dir, Weight: opts.weight(l)}
	}
	return edges, nil
}

// weight draws from [0, bound(l)) unless a custom WeightFn is set.
func (o Options) weight(l grid.Link) int {
	if o.WeightFn != nil {
		return o.WeightFn(l, o.Rand)
	}
	return o.Rand.Intn(o.bound(l.Dir))
}

// bound is MaxWeight, halved when the edge's axis is biased.
func (o Options) bound(d topology.Direction) int {
	limit := o.MaxWeight
	if limit < 2 {
		limit = DefaultMaxWeight
	}
	switch d.Axis() {
	case topology.Horizontal:
		if o.HorizontalBias {
			limit /= 2
		}
	default:
		if o.VerticalBias {
			limit /= 2
		}
	}
	return limit
}
