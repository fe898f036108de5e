// SPDX-License-Identifier: MIT

// Package kruskal turns a grid of walled cells into a perfect maze by picking
// a random spanning tree of its adjacency graph.
//
// Every candidate edge comes from grid.Grid.HalfEdges, so each pair of
// adjacent cells is emitted exactly once, and receives a weight drawn
// uniformly from [0, MaxWeight). Setting a bias flag halves the bound for
// that axis. Lower weights are picked earlier, so biased mazes favor long
// corridors in the biased direction.
//
// Two builders are provided:
//
//   - Kruskal (default): stable sort by weight, then union-find over the
//     sorted list. Equal weights keep emission order (row-major, then
//     per-cell direction order), so fixed weights give a fixed tree.
//   - Prim: grow one tree from the start cell with a min-heap, ties broken
//     by emission order. Walls then open outward from the start.
//
// The result is a Tree: a queue consumed one edge at a time by BreakNext,
// which lets a caller animate construction wall by wall.
//
// Determinism: weights come from the *rand.Rand in Options (WithSeed /
// WithRand) or from a custom WithWeightFn. Without either, Compute fails
// with ErrNeedRandSource.
//
// Complexity:
//
//   - Kruskal: O(E log E) time, O(V + E) memory.
//   - Prim:    O(E log E) time, O(V + E) memory.
package kruskal
