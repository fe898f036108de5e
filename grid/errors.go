// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a shape with no rows or no topology.
	ErrEmptyGrid = errors.New("grid: shape must have a topology and at least one row")

	// ErrCellOutOfBounds indicates a (row, col) or cell id outside the grid.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrNotNeighbor indicates a wall break between cells that are not adjacent.
	ErrNotNeighbor = errors.New("grid: tile is not a neighbor")

	// ErrDisconnected indicates that some cell cannot reach the start cell.
	ErrDisconnected = errors.New("grid: passages do not connect every cell")

	// ErrCycle indicates that the open passages contain a cycle.
	ErrCycle = errors.New("grid: passages contain a cycle")
)
