// SPDX-License-Identifier: MIT

// Command mazes generates and solves mazes in the terminal.
//
//	mazes -shape square -width 30 -height 15
//	mazes -shape hex -side 8 -method prim
//
// Keys: space pause, c toggle animated construction, M/B/D/L manual, BFS,
// DFS and wall-follow modes, h/H heat from start/goal, p show visited, r
// reset, n new random maze, k/K vertical/horizontal bias, Esc quit. In
// manual mode w/a/s/d (square), a/d/e/x/w/z (hex) or the arrow keys move.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/mazes/kruskal"
	"github.com/katalvlaran/mazes/topology"
)

func main() {
	var (
		shape  = flag.String("shape", "square", "maze shape: square or hex")
		width  = flag.Int("width", 20, "square maze width (1-100)")
		height = flag.Int("height", 12, "square maze height (1-60)")
		side   = flag.Int("side", 6, "hex maze side length (1-25)")
		seed   = flag.Int64("seed", 0, "random seed (0 = clock)")
		method = flag.String("method", kruskal.MethodKruskal, "tree builder: kruskal or prim")
		tick   = flag.Duration("tick", 30*time.Millisecond, "animation step interval")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	cfg := config{
		method: *method,
		tick:   *tick,
		rng:    rand.New(rand.NewSource(*seed)),
	}

	var kind topology.Kind
	switch *shape {
	case "square":
		kind = topology.Square
	case "hex":
		kind = topology.Hex
	default:
		fmt.Fprintf(os.Stderr, "unknown shape %q (want square or hex)\n", *shape)
		os.Exit(2)
	}

	g, err := newGame(cfg, kind, *width, *height, *side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
