// SPDX-License-Identifier: MIT

package maze

import (
	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/kruskal"
	"github.com/katalvlaran/mazes/path"
	"github.com/katalvlaran/mazes/topology"
)

// Maze is the engine: a grid, the queue of tree walls still standing, and the
// state of the one traversal that may run on it. A Maze is not safe for
// concurrent use.
type Maze struct {
	grid     *grid.Grid
	topo     topology.Topology
	tree     *kruskal.Tree
	tileSize int

	pos      int   // current position for Move and wall following
	work     []int // front is index 0
	seen     []bool
	seenHead int // most recently processed cell, -1 if none
	facing   topology.Direction
	won      bool
	walk     *path.Tracker
	solution []int // start → goal, empty until Solve
}

// NewSquare builds a width×height maze (1–100 × 1–60) with every wall
// standing and its spanning tree queued.
func NewSquare(width, height int, opts ...Option) (*Maze, error) {
	shape, err := topology.SquareShape(width, height)
	if err != nil {
		return nil, err
	}
	return New(shape, opts...)
}

// NewHex builds a hexagonal maze of the given side length (1–25).
func NewHex(side int, opts ...Option) (*Maze, error) {
	shape, err := topology.HexShape(side)
	if err != nil {
		return nil, err
	}
	return New(shape, opts...)
}

// New builds a maze on an already validated shape.
func New(shape topology.Shape, opts ...Option) (*Maze, error) {
	cfg := newConfig(opts)

	g, err := grid.New(shape)
	if err != nil {
		return nil, err
	}
	tree, err := kruskal.Compute(g, cfg.tree...)
	if err != nil {
		return nil, err
	}

	m := &Maze{
		grid:     g,
		topo:     g.Topology(),
		tree:     tree,
		tileSize: cfg.tileSize,
		seen:     make([]bool, g.Len()),
		walk:     path.New(g.Start()),
	}
	m.restart()
	return m, nil
}

// IsUnderConstruction reports whether tree walls remain to be broken.
func (m *Maze) IsUnderConstruction() bool { return !m.tree.Empty() }

// Remaining returns the number of tree walls still standing.
func (m *Maze) Remaining() int { return m.tree.Len() }

// BreakNextWall breaks the next queued tree wall. It returns false once the
// queue is empty.
func (m *Maze) BreakNextWall() (bool, error) {
	return m.tree.BreakNext(m.grid)
}

// BuildAll breaks every remaining tree wall.
func (m *Maze) BuildAll() error {
	for {
		ok, err := m.tree.BreakNext(m.grid)
		if err != nil || !ok {
			return err
		}
	}
}

// Grid exposes the cells for read-only rendering.
func (m *Maze) Grid() *grid.Grid { return m.grid }

// Topology returns the maze's topology.
func (m *Maze) Topology() topology.Topology { return m.topo }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height() }

// RowWidth returns the number of cells in row.
func (m *Maze) RowWidth(row int) (int, error) { return m.grid.RowWidth(row) }

// CellAt returns a snapshot of the cell at (row, col).
func (m *Maze) CellAt(row, col int) (grid.Cell, error) { return m.grid.At(row, col) }

// TileSize returns the rendering hint set with WithTileSize.
func (m *Maze) TileSize() int { return m.tileSize }

// Position returns the current position of the manual / wall-following walker.
func (m *Maze) Position() grid.Pos { return m.grid.Coordinate(m.pos) }

// Facing returns the wall follower's current facing direction.
func (m *Maze) Facing() topology.Direction { return m.facing }

// HasWon reports whether a search reached the goal or the walker stands on it.
func (m *Maze) HasWon() bool {
	m.won = m.won || m.pos == m.grid.Goal()
	return m.won
}

// CurrentPath returns the walk recorded by Move and WallFollowStep, current
// position first.
func (m *Maze) CurrentPath() []grid.Pos {
	return m.positions(m.walk.Cells())
}

// ResetTraversal discards every traversal side effect: visitation flags, work
// list, seen set, facing, won flag and the recorded walk. Walls and heat are
// kept. The start cell is left visiting.
func (m *Maze) ResetTraversal() {
	m.restart()
}

func (m *Maze) restart() {
	start := m.grid.Start()
	m.pos = start
	m.work = append(m.work[:0], start)
	for i := range m.seen {
		m.seen[i] = false
	}
	m.seenHead = -1
	m.facing = m.topo.InitialFacing()
	m.won = false
	m.grid.ResetVisits()
	m.grid.Cell(start).Enter()
	m.walk.Reset(start)
}

func (m *Maze) positions(ids []int) []grid.Pos {
	out := make([]grid.Pos, len(ids))
	for i, id := range ids {
		out[i] = m.grid.Coordinate(id)
	}
	return out
}
