// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/topology"
)

var (
	wallStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	tileColor     = tcell.NewRGBColor(200, 200, 200)
	startColor    = tcell.NewRGBColor(31, 128, 70)
	goalColor     = tcell.NewRGBColor(106, 34, 128)
	visitingColor = tcell.NewRGBColor(240, 200, 40)
	visitedColor  = tcell.NewRGBColor(90, 140, 220)
)

func (g *game) draw() {
	g.screen.Clear()
	if g.maze.Topology().Kind() == topology.Hex {
		g.drawHex()
	} else {
		g.drawSquare()
	}
	g.drawStatus()
	g.screen.Show()
}

// cellStyle picks the cell color: visiting > visited (if shown) > heat (if
// on and labeled) > start/goal > plain.
func (g *game) cellStyle(id int) tcell.Style {
	gr := g.maze.Grid()
	c := gr.Cell(id)
	color := tileColor
	switch {
	case c.Status() == grid.Visiting:
		color = visitingColor
	case c.Status() == grid.Visited && g.showVisited:
		color = visitedColor
	default:
		if h, ok := c.Heat(); ok && g.heat != heatOff {
			color = tcell.NewRGBColor(int32(h.Red), 0, int32(h.Blue))
		} else if id == gr.Start() {
			color = startColor
		} else if id == gr.Goal() {
			color = goalColor
		}
	}
	return tcell.StyleDefault.Background(color)
}

// drawSquare renders cell (r, c) at (2c+1, 2r+1) with wall glyphs between
// cells and a '+' on every lattice corner.
func (g *game) drawSquare() {
	gr := g.maze.Grid()
	h := gr.Height()
	w, _ := gr.RowWidth(0)

	for y := 0; y <= 2*h; y += 2 {
		for x := 0; x <= 2*w; x += 2 {
			g.screen.SetContent(x, y, '+', nil, wallStyle)
		}
	}
	for col := 0; col < w; col++ {
		g.screen.SetContent(2*col+1, 0, '─', nil, wallStyle)
	}
	for row := 0; row < h; row++ {
		g.screen.SetContent(0, 2*row+1, '│', nil, wallStyle)
		for col := 0; col < w; col++ {
			id, _ := gr.ID(row, col)
			c := gr.Cell(id)
			x, y := 2*col+1, 2*row+1
			g.screen.SetContent(x, y, ' ', nil, g.cellStyle(id))
			if c.Wall(topology.Right) {
				g.screen.SetContent(x+1, y, '│', nil, wallStyle)
			}
			if c.Wall(topology.Down) {
				g.screen.SetContent(x, y+1, '─', nil, wallStyle)
			}
		}
	}
}

// drawHex renders row r indented by twice its width deficit and cells four
// columns apart, so diagonal neighbors sit two columns left/right on the next
// row. Open passages are drawn instead of walls.
func (g *game) drawHex() {
	gr := g.maze.Grid()
	peak := 0
	for row := 0; row < gr.Height(); row++ {
		w, _ := gr.RowWidth(row)
		peak = max(peak, w)
	}
	for row := 0; row < gr.Height(); row++ {
		w, _ := gr.RowWidth(row)
		offset := 2 * (peak - w)
		y := 2*row + 1
		for col := 0; col < w; col++ {
			id, _ := gr.ID(row, col)
			c := gr.Cell(id)
			x := offset + 4*col + 2
			style := g.cellStyle(id)
			g.screen.SetContent(x-1, y, ' ', nil, style)
			g.screen.SetContent(x, y, ' ', nil, style)
			g.screen.SetContent(x+1, y, ' ', nil, style)
			if !c.Wall(topology.Right) {
				g.screen.SetContent(x+2, y, '─', nil, wallStyle)
			}
			if !c.Wall(topology.RightDown) {
				g.screen.SetContent(x+1, y+1, '╲', nil, wallStyle)
			}
			if !c.Wall(topology.LeftDown) {
				g.screen.SetContent(x-1, y+1, '╱', nil, wallStyle)
			}
		}
	}
}

func (g *game) drawStatus() {
	_, rows := g.screen.Size()
	line := fmt.Sprintf("mode=%s paused=%t bias(v=%t h=%t) walls left=%d",
		g.mode, g.paused, g.vertBias, g.horzBias, g.maze.Remaining())
	if g.status != "" {
		line += "  " + g.status
	}
	for i, r := range line {
		g.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
}
