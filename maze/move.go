// SPDX-License-Identifier: MIT

package maze

import (
	"github.com/katalvlaran/mazes/topology"
)

// Move walks one cell in the direction named by label ("w"/"up", "x", ...).
// Labels the topology does not know and blocked moves are no-ops that return
// nil, so any key can be forwarded.
func (m *Maze) Move(label string) error {
	d, err := m.topo.Parse(label)
	if err != nil {
		return nil
	}
	_, err = m.MoveDir(d)
	return err
}

// MoveDir is Move for a Direction. It reports whether the walker moved.
func (m *Maze) MoveDir(d topology.Direction) (bool, error) {
	open, err := m.grid.CanMove(m.pos, d)
	if err != nil || !open {
		return false, err
	}
	next, ok := m.grid.Cell(m.pos).Neighbor(d)
	if !ok {
		return false, nil
	}
	m.grid.Cell(m.pos).Leave()
	m.grid.Cell(next).Enter()
	m.pos = next
	m.walk.Record(next)
	return true, nil
}

// WallFollowStep makes one left-hand-rule move. The facing direction is tried
// first; while it is walled the facing rotates clockwise. After a move it
// turns counter-clockwise by the topology's TurnSteps. Rotations are bounded
// by the number of directions, so a cell with no open wall is a no-op.
// Returns false if nothing moved.
func (m *Maze) WallFollowStep() bool {
	if m.HasWon() {
		return false
	}
	for range m.topo.Directions() {
		moved, err := m.MoveDir(m.facing)
		if err == nil && moved {
			for i := 0; i < m.topo.TurnSteps(); i++ {
				m.facing = m.topo.CounterClockwise(m.facing)
			}
			return true
		}
		m.facing = m.topo.Clockwise(m.facing)
	}
	return false
}
