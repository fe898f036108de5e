// SPDX-License-Identifier: MIT

// Package heat labels every cell of a maze with its distance from a source
// cell, and turns those distances into a red-to-blue color ramp.
//
// Distances is a plain breadth-first search over open passages. It is not
// stepwise and it does not touch cell visitation state, so it can run at any
// time after construction without disturbing a traversal in progress.
// Label additionally stores a grid.Heat on each cell.
//
// Because a generated maze is a spanning tree, Result.PathTo returns the
// only path between the source and a cell.
package heat
