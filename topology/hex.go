// SPDX-License-Identifier: MIT

package topology

import "fmt"

// hexTopology is the 6-neighbor hexagonal grid. firstRowWidth is the side
// length s; the grid has 2s−1 rows and the widest row, s−1, is the peak.
type hexTopology struct{}

var (
	hexDirections = []Direction{Left, Right, RightUp, RightDown, LeftUp, LeftDown}
	hexPriority   = []Direction{RightUp, LeftUp, Left, LeftDown, RightDown, Right}
	hexHalfEdges  = []Direction{Right, RightDown, LeftDown}
)

func (hexTopology) Kind() Kind { return Hex }

func (hexTopology) RowWidth(row, side int) (int, error) {
	switch {
	case row < 0:
		return 0, fmt.Errorf("%w: row %d for side length %d", ErrRowOutOfBounds, row, side)
	case row < side:
		return side + row, nil
	case row < 2*side-1:
		return 3*side - 2 - row, nil
	default:
		return 0, fmt.Errorf("%w: row %d for side length %d", ErrRowOutOfBounds, row, side)
	}
}

func (hexTopology) Directions() []Direction { return hexDirections }

func (hexTopology) Has(d Direction) bool {
	switch d {
	case Left, Right, RightUp, RightDown, LeftUp, LeftDown:
		return true
	}
	return false
}

// Parse accepts the keys a/d/e/x/w/z and the long names.
func (hexTopology) Parse(label string) (Direction, error) {
	switch label {
	case "a", "left":
		return Left, nil
	case "d", "right":
		return Right, nil
	case "e", "rightUp":
		return RightUp, nil
	case "x", "rightDown":
		return RightDown, nil
	case "w", "leftUp":
		return LeftUp, nil
	case "z", "leftDown":
		return LeftDown, nil
	default:
		return 0, fmt.Errorf("%w: %q for hex topology", ErrInvalidDirection, label)
	}
}

func (hexTopology) Key(d Direction) string {
	switch d {
	case Left:
		return "a"
	case Right:
		return "d"
	case RightUp:
		return "e"
	case RightDown:
		return "x"
	case LeftUp:
		return "w"
	case LeftDown:
		return "z"
	}
	return ""
}

func (hexTopology) Priority() []Direction  { return hexPriority }
func (hexTopology) HalfEdges() []Direction { return hexHalfEdges }

// Delta shifts the column of diagonal steps depending on whether the row is
// above the peak (rows growing) or at/below it (rows shrinking).
func (hexTopology) Delta(row, side int, d Direction) (int, int, bool) {
	upper := row < side     // the row above is one narrower
	growing := row < side-1 // the row below is one wider
	switch d {
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	case RightUp:
		if upper {
			return -1, 0, true
		}
		return -1, 1, true
	case LeftUp:
		if upper {
			return -1, -1, true
		}
		return -1, 0, true
	case RightDown:
		if growing {
			return 1, 1, true
		}
		return 1, 0, true
	case LeftDown:
		if growing {
			return 1, 0, true
		}
		return 1, -1, true
	}
	return 0, 0, false
}

// CounterClockwise: left → leftDown → rightDown → right → rightUp → leftUp → left.
func (hexTopology) CounterClockwise(d Direction) Direction {
	switch d {
	case Left:
		return LeftDown
	case LeftDown:
		return RightDown
	case RightDown:
		return Right
	case Right:
		return RightUp
	case RightUp:
		return LeftUp
	case LeftUp:
		return Left
	}
	return d
}

func (hexTopology) Clockwise(d Direction) Direction {
	switch d {
	case Left:
		return LeftUp
	case LeftUp:
		return RightUp
	case RightUp:
		return Right
	case Right:
		return RightDown
	case RightDown:
		return LeftDown
	case LeftDown:
		return Left
	}
	return d
}

// TurnSteps is two: the six-way cycle turns at twice the granularity of the
// square one.
func (hexTopology) TurnSteps() int           { return 2 }
func (hexTopology) InitialFacing() Direction { return Left }
