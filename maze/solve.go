// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/heat"
)

// AssignHeat labels every cell with its distance from the start cell, or from
// the goal cell when fromGoal is set. Visitation state is untouched.
func (m *Maze) AssignHeat(fromGoal bool) (*heat.Result, error) {
	if m.IsUnderConstruction() {
		return nil, ErrUnderConstruction
	}
	source := m.grid.Start()
	if fromGoal {
		source = m.grid.Goal()
	}
	return heat.Label(m.grid, source)
}

// ClearHeat removes every heat label.
func (m *Maze) ClearHeat() {
	for id := 0; id < m.grid.Len(); id++ {
		m.grid.Cell(id).ClearHeat()
	}
}

// Solve runs the wall follower from the start until it reaches the goal,
// keeps the walk it recorded as the solution, and resets the traversal.
//
// A left-hand walk on a tree crosses every passage at most twice, so more
// than 2·N moves means the goal is unreachable.
func (m *Maze) Solve() error {
	if m.IsUnderConstruction() {
		return ErrUnderConstruction
	}
	m.restart()
	limit := 2 * m.grid.Len()
	for moves := 0; !m.HasWon(); moves++ {
		if moves > limit || !m.WallFollowStep() {
			m.restart()
			return fmt.Errorf("%w: after %d moves", ErrNoSolution, moves)
		}
	}

	walk := m.walk.Cells()
	m.solution = m.solution[:0]
	for i := len(walk) - 1; i >= 0; i-- {
		m.solution = append(m.solution, walk[i])
	}
	m.restart()
	return nil
}

// Solution returns the path found by the last Solve, start first. It is empty
// before Solve.
func (m *Maze) Solution() []grid.Pos {
	return m.positions(m.solution)
}

// ShowSolution marks every solution cell as visiting.
func (m *Maze) ShowSolution() {
	for _, id := range m.solution {
		m.grid.Cell(id).Enter()
	}
}
