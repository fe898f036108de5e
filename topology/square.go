// SPDX-License-Identifier: MIT

package topology

import "fmt"

// squareTopology is the 4-neighbor rectangular grid. Rows all share the
// width of row 0.
type squareTopology struct{}

var (
	squareDirections = []Direction{Up, Down, Left, Right}
	squarePriority   = []Direction{Left, Up, Down, Right}
	squareHalfEdges  = []Direction{Right, Down}
)

func (squareTopology) Kind() Kind { return Square }

func (squareTopology) RowWidth(row, firstRowWidth int) (int, error) {
	if row < 0 {
		return 0, fmt.Errorf("%w: row %d", ErrRowOutOfBounds, row)
	}
	return firstRowWidth, nil
}

func (squareTopology) Directions() []Direction { return squareDirections }

func (squareTopology) Has(d Direction) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Parse accepts the long names and the w/a/s/d keys.
func (squareTopology) Parse(label string) (Direction, error) {
	switch label {
	case "w", "up":
		return Up, nil
	case "s", "down":
		return Down, nil
	case "d", "right":
		return Right, nil
	case "a", "left":
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q for square topology", ErrInvalidDirection, label)
	}
}

func (squareTopology) Key(d Direction) string {
	switch d {
	case Up:
		return "w"
	case Down:
		return "s"
	case Right:
		return "d"
	case Left:
		return "a"
	}
	return ""
}

// Priority is left, up, down, right. Depth-first search explores the last
// listed open neighbor first.
func (squareTopology) Priority() []Direction { return squarePriority }

func (squareTopology) HalfEdges() []Direction { return squareHalfEdges }

func (squareTopology) Delta(_, _ int, d Direction) (int, int, bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	}
	return 0, 0, false
}

// CounterClockwise: left → down → right → up → left.
func (squareTopology) CounterClockwise(d Direction) Direction {
	switch d {
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	case Up:
		return Left
	}
	return d
}

// Clockwise: left → up → right → down → left.
func (squareTopology) Clockwise(d Direction) Direction {
	switch d {
	case Left:
		return Up
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	}
	return d
}

func (squareTopology) TurnSteps() int           { return 1 }
func (squareTopology) InitialFacing() Direction { return Left }
