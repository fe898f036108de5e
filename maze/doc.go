// SPDX-License-Identifier: MIT

// Package maze is the engine behind an animated maze game: it builds a
// perfect maze one wall at a time and solves it one step at a time.
//
// Lifecycle:
//
//  1. NewSquare / NewHex allocate the grid with every wall standing and
//     queue the walls of a random spanning tree (see package kruskal).
//  2. BreakNextWall opens one queued wall per call; IsUnderConstruction is
//     true until the queue is drained. BuildAll drains it at once.
//  3. Traversal: BFSStep, DFSStep and WallFollowStep each do one unit of
//     visible work per call, and Move walks manually. Cell status
//     (unvisited / visiting / visited) is what a renderer shows.
//  4. ResetTraversal clears all traversal state so another run can start.
//
// BFS and DFS share one work list and one seen set. Entries already seen are
// skipped inside the same call, so every successful step changes at least
// one cell. Reaching the goal (the last cell in row-major order) ends both.
//
// The wall follower keeps a facing direction. It tries the facing direction,
// rotates clockwise while blocked, and after each move turns counter-
// clockwise (twice on hex grids). Its moves, like manual ones, are recorded by
// a path.Tracker that collapses immediate backtracks.
//
// AssignHeat labels cells with their distance from the start or the goal;
// Solve captures the wall follower's path for ShowSolution.
//
// Everything is synchronous and single-threaded. Pacing is the caller's job.
package maze
