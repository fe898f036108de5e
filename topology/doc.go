// SPDX-License-Identifier: MIT

// Package topology describes the shape of a maze grid: which directions a cell
// can have walls in, how wide each row is, how a step in a direction moves
// through (row, col) space, and in which order directions rotate.
//
// Two topologies are provided:
//
//   - Square: every row has the same width; four directions (up, down, left,
//     right), also addressable with the keys w/s/a/d.
//   - Hex: rows grow by one cell per row up to a peak row and then shrink
//     symmetrically, giving a hexagon of side length s with 2s−1 rows.
//     Six directions, addressed with the keys a/d (left/right), w/e
//     (left-up/right-up) and z/x (left-down/right-down).
//
// Hex row widths for side length s:
//
//	width(row) = s + row          for row < s
//	width(row) = 3s − 2 − row     for s ≤ row < 2s − 1
//
// e.g. s = 3 gives widths [3 4 5 4 3]. Column alignment shifts at the peak
// row, so the (Δrow, Δcol) of a diagonal step depends on which half of the
// hexagon the current row is in; see Topology.Delta.
//
// Everything that differs between the two shapes lives here, so the grid,
// the spanning-tree builders and the traversal engine are written once.
//
// Errors:
//
//   - ErrInvalidDirection: label or direction not part of the topology.
//   - ErrRowOutOfBounds:   row index outside the shape.
//   - ErrDimension:        width/height/side length outside the allowed range.
package topology
