// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/mazes/topology"
)

// noNeighbor marks an absent neighbor link.
const noNeighbor = -1

// Status is the visitation state of a cell.
type Status uint8

const (
	Unvisited Status = iota // not touched by the current traversal
	Visiting                // current position / being processed
	Visited                 // processed and left
)

// String returns "unvisited", "visiting" or "visited".
func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Visiting:
		return "visiting"
	case Visited:
		return "visited"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Pos is a (row, col) position within a grid.
type Pos struct {
	Row, Col int
}

// Heat is a distance label with its two-color gradient (red fades to blue as
// the distance approaches the maximum).
type Heat struct {
	Distance int
	Red      uint8
	Blue     uint8
}

// Cell is one tile of the grid. Neighbor links are cell ids into the owning
// Grid's arena, so cells never own each other.
type Cell struct {
	id        int
	pos       Pos
	walls     [topology.NumDirections]bool
	neighbors [topology.NumDirections]int
	status    Status
	heat      Heat
	hasHeat   bool
}

// ID returns the cell's index in the grid arena (row-major).
func (c Cell) ID() int { return c.id }

// Pos returns the cell's (row, col).
func (c Cell) Pos() Pos { return c.pos }

// Status returns the visitation state.
func (c Cell) Status() Status { return c.status }

// Wall reports whether a wall stands in direction d. Directions the cell's
// topology does not have always report a wall.
func (c Cell) Wall(d topology.Direction) bool {
	if d < 0 || int(d) >= topology.NumDirections {
		return true
	}
	return c.walls[d]
}

// Neighbor returns the id of the adjacent cell in direction d, if any.
func (c Cell) Neighbor(d topology.Direction) (int, bool) {
	if d < 0 || int(d) >= topology.NumDirections {
		return noNeighbor, false
	}
	n := c.neighbors[d]
	return n, n != noNeighbor
}

// Heat returns the distance label, if one has been assigned.
func (c Cell) Heat() (Heat, bool) { return c.heat, c.hasHeat }

// Enter marks the cell as being visited.
func (c *Cell) Enter() { c.status = Visiting }

// Leave marks the cell as visited.
func (c *Cell) Leave() { c.status = Visited }

// ResetVisit returns the cell to Unvisited from any state.
func (c *Cell) ResetVisit() { c.status = Unvisited }

// SetHeat assigns a distance label.
func (c *Cell) SetHeat(h Heat) {
	c.heat = h
	c.hasHeat = true
}

// ClearHeat removes the distance label.
func (c *Cell) ClearHeat() {
	c.heat = Heat{}
	c.hasHeat = false
}

// Link is one candidate edge between two adjacent cells, emitted from From
// toward To in direction Dir.
type Link struct {
	From, To int
	Dir      topology.Direction
}

// Grid owns every cell of a maze. Rows may be jagged (hex). It is not safe
// for concurrent use.
type Grid struct {
	shape topology.Shape
	topo  topology.Topology
	rows  [][]int // row → cell ids
	cells []Cell
}
