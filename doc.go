// SPDX-License-Identifier: MIT

// Package mazes is an engine for generating and solving perfect mazes on
// square and hexagonal grids, built to be animated one step at a time.
//
// What is a perfect maze?
//
//	A maze whose open passages form a spanning tree of the cell grid: every
//	cell is reachable and there is exactly one path between any two cells.
//
// Packages, leaves first:
//
//	topology/      square and hex shapes: row widths, directions, step deltas,
//	               rotation cycles, direction labels
//	grid/          cell arena with mutual neighbor links, paired wall breaks,
//	               visitation state, heat slot, spanning-tree verification
//	disjointset/   union-find with recursive Find and asymmetric Union
//	kruskal/       weighted candidate edges (with axis bias), Kruskal and
//	               Prim builders, the wall-by-wall construction queue
//	heat/          full BFS distance labeling and the red→blue gradient
//	path/          the walk tracker with backtrack collapse
//	maze/          the engine: construction, BFS/DFS/wall-following steps,
//	               manual moves, heat, reset and solution capture
//	cmd/mazes      terminal front end (tcell)
//
// Quick start:
//
//	m, err := maze.NewSquare(20, 10, maze.WithSeed(42))
//	if err != nil { ... }
//	for m.IsUnderConstruction() {
//		m.BreakNextWall() // one wall per animation tick
//	}
//	for !m.HasWon() {
//		m.BFSStep()
//	}
//
// Determinism: all randomness flows through the seed or *rand.Rand given to
// maze.WithSeed / maze.WithRand. The library never logs and never panics
// outside option constructors.
package mazes
