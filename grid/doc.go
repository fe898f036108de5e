// SPDX-License-Identifier: MIT

// Package grid holds the cells of a maze and the walls between them.
//
// A Grid is an arena: every Cell lives in one slice, indexed by a row-major
// id, and neighbor links are ids rather than pointers. Links are computed once
// at construction from the topology (see topology.Topology.Delta) and are
// always mutual: if b is a's neighbor in direction d then a is b's neighbor in
// d.Opposite().
//
// Every wall starts standing. BreakWall removes the wall between two adjacent
// cells on both sides at once, so the two sides never disagree.
//
// Besides the wall operations the package provides:
//
//   - HalfEdges: every edge of the grid exactly once, in a fixed order.
//   - AccessibleNeighbors: open neighbors in the topology's priority order.
//   - Components / HasCycle / Verify: checks that the open passages form a
//     spanning tree (a "perfect" maze).
//
// Complexity:
//
//   - New:       O(N·d) time and memory (N cells, d directions).
//   - BreakWall: O(d).
//   - Verify:    O(N·d).
//
// Errors:
//
//   - ErrEmptyGrid:       shape without rows or topology.
//   - ErrCellOutOfBounds: position or id outside the grid.
//   - ErrNotNeighbor:     wall break between non-adjacent cells.
//   - ErrDisconnected:    Verify found an unreachable cell.
//   - ErrCycle:           Verify found a loop in the passages.
package grid
