// SPDX-License-Identifier: MIT

package main

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazes/maze"
	"github.com/katalvlaran/mazes/topology"
)

// mode is what each tick advances.
type mode int

const (
	modeConstruction mode = iota
	modeManual
	modeBFS
	modeDFS
	modeWallFollow
	modeWon
)

func (m mode) String() string {
	switch m {
	case modeConstruction:
		return "construction"
	case modeManual:
		return "manual"
	case modeBFS:
		return "bfs"
	case modeDFS:
		return "dfs"
	case modeWallFollow:
		return "wall-follow"
	case modeWon:
		return "won"
	}
	return "?"
}

// heatMode is which endpoint, if any, the heat map is measured from.
type heatMode int

const (
	heatOff heatMode = iota
	heatFromStart
	heatFromGoal
)

type config struct {
	method string
	tick   time.Duration
	rng    *rand.Rand
}

type game struct {
	screen tcell.Screen
	cfg    config
	maze   *maze.Maze

	mode             mode
	heat             heatMode
	paused           bool
	showConstruction bool
	showVisited      bool
	vertBias         bool
	horzBias         bool
	status           string
}

func newGame(cfg config, kind topology.Kind, width, height, side int) (*game, error) {
	g := &game{
		cfg:              cfg,
		showConstruction: true,
		showVisited:      true,
	}
	if err := g.newMaze(kind, width, height, side); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	g.screen = screen
	return g, nil
}

// newMaze replaces the current maze and restarts construction.
func (g *game) newMaze(kind topology.Kind, width, height, side int) error {
	opts := []maze.Option{
		maze.WithSeed(g.cfg.rng.Int63()),
		maze.WithMethod(g.cfg.method),
		maze.WithVerticalBias(g.vertBias),
		maze.WithHorizontalBias(g.horzBias),
	}
	var (
		m   *maze.Maze
		err error
	)
	if kind == topology.Hex {
		m, err = maze.NewHex(side, opts...)
	} else {
		m, err = maze.NewSquare(width, height, opts...)
	}
	if err != nil {
		return err
	}
	g.maze = m
	g.mode = modeConstruction
	g.heat = heatOff
	g.status = ""
	return nil
}

// newRandomMaze picks a shape and size at random, sized to fit the terminal.
func (g *game) newRandomMaze() {
	cols, rows := g.screen.Size()
	maxW := min(topology.MaxSquareWidth, max(1, (cols-1)/2))
	maxH := min(topology.MaxSquareHeight, max(1, (rows-2)/2))
	maxSide := min(topology.MaxHexSide, max(1, min((rows+1)/4, (cols+2)/8)))

	var err error
	if g.cfg.rng.Float64() > 0.5 {
		err = g.newMaze(topology.Square, g.cfg.rng.Intn(maxW)+1, g.cfg.rng.Intn(maxH)+1, 0)
	} else {
		err = g.newMaze(topology.Hex, 0, 0, g.cfg.rng.Intn(maxSide)+1)
	}
	if err != nil {
		g.status = err.Error()
	}
}

func (g *game) cleanup() {
	g.screen.Fini()
}

func (g *game) run() {
	ticker := time.NewTicker(g.cfg.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
			g.draw()

		case <-ticker.C:
			g.onTick()
			g.draw()
		}
	}
}

// onTick advances whatever the current mode animates.
func (g *game) onTick() {
	if g.paused {
		return
	}
	if g.mode != modeConstruction && g.maze.HasWon() {
		g.mode = modeWon
	}

	switch g.mode {
	case modeConstruction:
		var err error
		if g.showConstruction {
			_, err = g.maze.BreakNextWall()
		} else {
			err = g.maze.BuildAll()
		}
		if err != nil {
			g.status = err.Error()
			g.paused = true
			return
		}
		if !g.maze.IsUnderConstruction() {
			if err := g.maze.Solve(); err != nil {
				g.status = err.Error()
			}
			g.mode = modeManual
		}
	case modeBFS:
		g.maze.BFSStep()
	case modeDFS:
		g.maze.DFSStep()
	case modeWallFollow:
		g.maze.WallFollowStep()
	case modeWon:
		g.maze.ShowSolution()
	}
}

// switchMode restarts the traversal when entering a different solver mode.
func (g *game) switchMode(to mode) {
	if g.mode != to {
		g.mode = to
		g.maze.ResetTraversal()
	}
}

// toggleHeat shows the heat map from the given endpoint, or hides it when it
// is already shown from there.
func (g *game) toggleHeat(from heatMode) {
	if g.heat == from {
		g.heat = heatOff
		g.maze.ClearHeat()
		return
	}
	if _, err := g.maze.AssignHeat(from == heatFromGoal); err != nil {
		g.status = err.Error()
		return
	}
	g.heat = from
}
