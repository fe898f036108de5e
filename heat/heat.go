// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"

	"github.com/katalvlaran/mazes/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	queue []int
	res   *Result
}

// Distances runs a full breadth-first search over the open passages of g from
// source. Neighbors are enqueued in reverse accessible-neighbor order. Cell
// visitation state is not touched.
//
// Complexity: O(N·d) time, O(N) memory.
func Distances(g *grid.Grid, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if g.Cell(source) == nil {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(source, 0, -1)
	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		w.res.Max = max(w.res.Max, depth)
		w.opts.OnVisit(id, depth)

		nbrs := w.grid.AccessibleNeighbors(id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if w.res.Depth[nbrs[i]] < 0 {
				w.enqueue(nbrs[i], depth+1, id)
			}
		}
	}
	return nil
}

// Label computes Distances from source and stores a Heat on every reached
// cell; unreachable cells lose any previous label.
func Label(g *grid.Grid, source int, opts ...Option) (*Result, error) {
	res, err := Distances(g, source, opts...)
	if err != nil {
		return nil, err
	}
	for id := 0; id < g.Len(); id++ {
		c := g.Cell(id)
		if res.Depth[id] < 0 {
			c.ClearHeat()
			continue
		}
		red, blue := Gradient(res.Depth[id], res.Max)
		c.SetHeat(grid.Heat{Distance: res.Depth[id], Red: red, Blue: blue})
	}
	return res, nil
}

// Gradient maps a distance onto the red→blue ramp:
// blue = ⌊255·d/max⌋, red = 255 − blue. A zero max yields pure red.
func Gradient(d, maxDistance int) (red, blue uint8) {
	if maxDistance <= 0 || d <= 0 {
		return 255, 0
	}
	if d >= maxDistance {
		return 0, 255
	}
	b := 255 * d / maxDistance
	return uint8(255 - b), uint8(b)
}
