// SPDX-License-Identifier: MIT

// Package topology defines the direction set, shape parameters and sentinel
// errors shared by every maze topology.
package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology operations.
var (
	// ErrInvalidDirection indicates a malformed label, or a direction the
	// topology does not have (e.g. Up on a hex grid).
	ErrInvalidDirection = errors.New("topology: invalid direction")

	// ErrRowOutOfBounds indicates a row index outside the shape.
	ErrRowOutOfBounds = errors.New("topology: row out of bounds")

	// ErrDimension indicates a construction size outside the allowed range.
	ErrDimension = errors.New("topology: dimension out of range")

	// ErrUnknownKind indicates a Kind value with no topology behind it.
	ErrUnknownKind = errors.New("topology: unknown kind")
)

// Size bounds accepted by SquareShape and HexShape.
const (
	MinSize         = 1
	MaxSquareWidth  = 100
	MaxSquareHeight = 60
	MaxHexSide      = 25
)

// Kind selects a topology.
type Kind int

const (
	// Square is the 4-neighbor rectangular grid.
	Square Kind = iota
	// Hex is the 6-neighbor hexagonal grid.
	Hex
)

// String returns "square" or "hex".
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Direction names one side of a cell. Square cells use Left, Right, Up and
// Down; hex cells use Left, Right and the four diagonals.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	LeftUp
	RightUp
	LeftDown
	RightDown
)

// NumDirections is the size of the shared direction space. Per-cell wall and
// neighbor arrays are indexed by Direction and sized by it.
const NumDirections = 8

var directionNames = [NumDirections]string{
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	LeftUp:    "leftUp",
	RightUp:   "rightUp",
	LeftDown:  "leftDown",
	RightDown: "rightDown",
}

// String returns the long name of d.
func (d Direction) String() string {
	if d < 0 || int(d) >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back from a neighbor.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	case LeftUp:
		return RightDown
	case RightDown:
		return LeftUp
	case RightUp:
		return LeftDown
	case LeftDown:
		return RightUp
	}
	return d
}

// Axis classifies a direction for weight biasing: horizontal edges follow
// the horizontal bias flag, everything else the vertical one.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Axis returns Horizontal for Left/Right and Vertical otherwise.
func (d Direction) Axis() Axis {
	if d == Left || d == Right {
		return Horizontal
	}
	return Vertical
}

// Topology is the per-shape strategy consumed by the grid, the tree builders
// and the traversal engine.
type Topology interface {
	// Kind reports which topology this is.
	Kind() Kind

	// RowWidth returns the number of cells in row, given the width of row 0.
	RowWidth(row, firstRowWidth int) (int, error)

	// Directions lists the directions cells of this topology have.
	Directions() []Direction

	// Has reports whether d belongs to this topology.
	Has(d Direction) bool

	// Parse maps a direction label (short key or long name) to a Direction.
	Parse(label string) (Direction, error)

	// Key returns the short key for d (w/a/s/d for square, a/d/e/x/w/z for hex).
	Key(d Direction) string

	// Priority is the fixed order in which open neighbors are reported.
	// Traversal order depends on it.
	Priority() []Direction

	// HalfEdges is the canonical subset of directions each cell emits edges
	// toward, so that every edge of the grid is emitted exactly once.
	HalfEdges() []Direction

	// Delta returns the (Δrow, Δcol) of one step in direction d from a cell in
	// row. ok is false for directions the topology does not have. The result is
	// not bounds-checked.
	Delta(row, firstRowWidth int, d Direction) (dRow, dCol int, ok bool)

	// CounterClockwise and Clockwise rotate a facing direction one step
	// around the topology's direction cycle.
	CounterClockwise(d Direction) Direction
	Clockwise(d Direction) Direction

	// TurnSteps is how many counter-clockwise steps make up one "turn" after a
	// successful wall-following move.
	TurnSteps() int

	// InitialFacing is the facing direction a wall follower starts with.
	InitialFacing() Direction
}

// Of returns the topology for k.
func Of(k Kind) (Topology, error) {
	switch k {
	case Square:
		return squareTopology{}, nil
	case Hex:
		return hexTopology{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Shape is a validated grid size for one topology: Height rows, the first of
// which is FirstRowWidth cells wide.
type Shape struct {
	Topology      Topology
	Height        int
	FirstRowWidth int
}

// SquareShape validates a width×height rectangular grid.
func SquareShape(width, height int) (Shape, error) {
	if width < MinSize || width > MaxSquareWidth {
		return Shape{}, fmt.Errorf("%w: width %d not in [%d,%d]", ErrDimension, width, MinSize, MaxSquareWidth)
	}
	if height < MinSize || height > MaxSquareHeight {
		return Shape{}, fmt.Errorf("%w: height %d not in [%d,%d]", ErrDimension, height, MinSize, MaxSquareHeight)
	}
	return Shape{Topology: squareTopology{}, Height: height, FirstRowWidth: width}, nil
}

// HexShape validates a hexagonal grid of the given side length.
func HexShape(side int) (Shape, error) {
	if side < MinSize || side > MaxHexSide {
		return Shape{}, fmt.Errorf("%w: side length %d not in [%d,%d]", ErrDimension, side, MinSize, MaxHexSide)
	}
	return Shape{Topology: hexTopology{}, Height: 2*side - 1, FirstRowWidth: side}, nil
}

// RowWidth returns the width of row within the shape.
func (s Shape) RowWidth(row int) (int, error) {
	if row < 0 || row >= s.Height {
		return 0, fmt.Errorf("%w: row %d, height %d", ErrRowOutOfBounds, row, s.Height)
	}
	return s.Topology.RowWidth(row, s.FirstRowWidth)
}

// Cells returns the total number of cells in the shape.
func (s Shape) Cells() int {
	n := 0
	for row := 0; row < s.Height; row++ {
		w, _ := s.Topology.RowWidth(row, s.FirstRowWidth)
		n += w
	}
	return n
}
