// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazes/topology"
)

// handleInput applies one terminal event. It returns false to quit.
func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if d, ok := arrowDirection(g.maze.Topology().Kind(), ev.Key()); ok {
			if g.mode == modeManual && !g.paused {
				g.moveDir(d)
			}
			return true
		}
		if ev.Key() == tcell.KeyRune {
			g.onKey(ev.Rune())
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// onKey mirrors the game's key bindings. Global keys work in every mode;
// the rest only once construction is done.
func (g *game) onKey(key rune) {
	switch key {
	case ' ':
		g.paused = !g.paused
		return
	case 'c':
		g.showConstruction = !g.showConstruction
		return
	case 'k':
		g.vertBias = !g.vertBias
		return
	case 'K':
		g.horzBias = !g.horzBias
		return
	case 'n':
		g.newRandomMaze()
		return
	}
	if g.mode == modeConstruction {
		return
	}

	switch key {
	case 'p':
		g.showVisited = !g.showVisited
	case 'r':
		g.maze.ResetTraversal()
		if g.mode == modeWon {
			g.mode = modeManual
		}
	case 'h':
		g.toggleHeat(heatFromStart)
	case 'H':
		g.toggleHeat(heatFromGoal)
	case 'M':
		g.switchMode(modeManual)
	case 'B':
		g.switchMode(modeBFS)
	case 'D':
		g.switchMode(modeDFS)
	case 'L':
		g.switchMode(modeWallFollow)
	default:
		if g.mode == modeManual && !g.paused {
			if err := g.maze.Move(string(key)); err != nil {
				g.status = err.Error()
			}
		}
	}
}

func (g *game) moveDir(d topology.Direction) {
	if _, err := g.maze.MoveDir(d); err != nil {
		g.status = err.Error()
	}
}

// arrowDirection maps arrow keys onto directions. On a hex maze the up/down
// arrows pick the right-hand diagonals.
func arrowDirection(kind topology.Kind, k tcell.Key) (topology.Direction, bool) {
	switch k {
	case tcell.KeyLeft:
		return topology.Left, true
	case tcell.KeyRight:
		return topology.Right, true
	case tcell.KeyUp:
		if kind == topology.Hex {
			return topology.RightUp, true
		}
		return topology.Up, true
	case tcell.KeyDown:
		if kind == topology.Hex {
			return topology.RightDown, true
		}
		return topology.Down, true
	}
	return 0, false
}
