// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/mazes/topology"
)

// Direction finds which side of cell from the cell to sits on, by matching
// the stored neighbor links. Returns ErrNotNeighbor if they are not adjacent.
func (g *Grid) Direction(from, to int) (topology.Direction, error) {
	if g.Cell(from) == nil || g.Cell(to) == nil {
		return 0, fmt.Errorf("%w: id %d or %d", ErrCellOutOfBounds, from, to)
	}
	for _, d := range g.topo.Directions() {
		if g.cells[from].neighbors[d] == to {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotNeighbor, g.cells[from].pos, g.cells[to].pos)
}

// BreakWall removes the wall between a and b on both sides. Both directions
// are resolved before anything is mutated, so a failed call leaves both cells
// untouched.
func (g *Grid) BreakWall(a, b int) error {
	da, err := g.Direction(a, b)
	if err != nil {
		return err
	}
	db, err := g.Direction(b, a)
	if err != nil {
		return err
	}
	g.cells[a].walls[da] = false
	g.cells[b].walls[db] = false
	return nil
}

// CanMove reports whether cell id has no wall in direction d.
// Directions outside the topology yield topology.ErrInvalidDirection.
func (g *Grid) CanMove(id int, d topology.Direction) (bool, error) {
	c := g.Cell(id)
	if c == nil {
		return false, fmt.Errorf("%w: id %d", ErrCellOutOfBounds, id)
	}
	if !g.topo.Has(d) {
		return false, fmt.Errorf("%w: %s on %s grid", topology.ErrInvalidDirection, d, g.topo.Kind())
	}
	return !c.walls[d], nil
}

// CanMoveLabel is CanMove for a direction label such as "up" or "x".
func (g *Grid) CanMoveLabel(id int, label string) (bool, error) {
	d, err := g.topo.Parse(label)
	if err != nil {
		return false, err
	}
	return g.CanMove(id, d)
}

// AccessibleNeighbors lists the neighbors of id not separated by a wall, in
// the topology's Priority order. BFS and DFS visit order depends on it.
func (g *Grid) AccessibleNeighbors(id int) []int {
	c := g.Cell(id)
	if c == nil {
		return nil
	}
	out := make([]int, 0, len(g.topo.Priority()))
	for _, d := range g.topo.Priority() {
		if !c.walls[d] && c.neighbors[d] != noNeighbor {
			out = append(out, c.neighbors[d])
		}
	}
	return out
}

// Passages counts open walls, each shared wall once.
func (g *Grid) Passages() int {
	n := 0
	for _, l := range g.HalfEdges() {
		if !g.cells[l.From].walls[l.Dir] {
			n++
		}
	}
	return n
}
