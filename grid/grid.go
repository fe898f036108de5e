// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/mazes/topology"
)

// New allocates every cell of shape with all walls standing, then wires the
// neighbor links. Two passes are needed because links are mutual.
// Complexity: O(N·d) time and memory, d = number of directions.
func New(shape topology.Shape) (*Grid, error) {
	if shape.Topology == nil || shape.Height < 1 || shape.FirstRowWidth < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		shape: shape,
		topo:  shape.Topology,
		rows:  make([][]int, shape.Height),
		cells: make([]Cell, 0, shape.Cells()),
	}

	// Pass 1: allocate.
	for row := 0; row < shape.Height; row++ {
		width, err := shape.RowWidth(row)
		if err != nil {
			return nil, err
		}
		g.rows[row] = make([]int, width)
		for col := 0; col < width; col++ {
			c := Cell{id: len(g.cells), pos: Pos{Row: row, Col: col}}
			for d := range c.neighbors {
				c.neighbors[d] = noNeighbor
				c.walls[d] = true
			}
			g.rows[row][col] = c.id
			g.cells = append(g.cells, c)
		}
	}

	// Pass 2: link.
	for id := range g.cells {
		g.assignNeighbors(id)
	}

	return g, nil
}

// assignNeighbors sets the links of cell id purely from its position and the
// topology. Each link also sets the neighbor's back-link.
func (g *Grid) assignNeighbors(id int) {
	p := g.cells[id].pos
	for _, d := range g.topo.Directions() {
		dr, dc, ok := g.topo.Delta(p.Row, g.shape.FirstRowWidth, d)
		if !ok || !g.InBounds(p.Row+dr, p.Col+dc) {
			continue
		}
		g.link(id, g.rows[p.Row+dr][p.Col+dc], d)
	}
}

// link makes b the neighbor of a in direction d, and a the neighbor of b in
// the opposite direction.
func (g *Grid) link(a, b int, d topology.Direction) {
	g.cells[a].neighbors[d] = b
	g.cells[b].neighbors[d.Opposite()] = a
}

// Shape returns the shape the grid was built from.
func (g *Grid) Shape() topology.Shape { return g.shape }

// Topology returns the grid's topology.
func (g *Grid) Topology() topology.Topology { return g.topo }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// RowWidth returns the number of cells in row.
func (g *Grid) RowWidth(row int) (int, error) {
	if row < 0 || row >= len(g.rows) {
		return 0, fmt.Errorf("%w: row %d", ErrCellOutOfBounds, row)
	}
	return len(g.rows[row]), nil
}

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Start is the id of the top-left cell.
func (g *Grid) Start() int { return 0 }

// Goal is the id of the bottom-right-most cell (last cell in row-major order).
func (g *Grid) Goal() int { return len(g.cells) - 1 }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// ID returns the cell id at (row, col).
func (g *Grid) ID(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return noNeighbor, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, row, col)
	}
	return g.rows[row][col], nil
}

// Coordinate converts a cell id back to its position.
func (g *Grid) Coordinate(id int) Pos {
	return g.cells[id].pos
}

// Cell returns a pointer to cell id, or nil when id is not part of the grid.
// The pointer stays valid for the life of the grid.
func (g *Grid) Cell(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return &g.cells[id]
}

// At returns a copy of the cell at (row, col).
func (g *Grid) At(row, col int) (Cell, error) {
	id, err := g.ID(row, col)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[id], nil
}

// ResetVisits returns every cell to Unvisited.
func (g *Grid) ResetVisits() {
	for i := range g.cells {
		g.cells[i].ResetVisit()
	}
}

// HalfEdges enumerates every edge of the grid exactly once: row-major over the
// cells, and per cell in the topology's HalfEdges order.
func (g *Grid) HalfEdges() []Link {
	links := make([]Link, 0, len(g.cells)*len(g.topo.HalfEdges()))
	for id := range g.cells {
		for _, d := range g.topo.HalfEdges() {
			if n := g.cells[id].neighbors[d]; n != noNeighbor {
				links = append(links, Link{From: id, To: n, Dir: d})
			}
		}
	}
	return links
}
