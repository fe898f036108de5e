// SPDX-License-Identifier: MIT

// Package path records the most recent walk through a maze.
//
// A Tracker keeps the cells from the current position back toward the start,
// front first. Stepping back onto the previous cell pops the front, anything
// else pushes. The result is the walk with immediate backtracks collapsed. It
// is not a shortest path: after a solver detours and returns by another route
// the detour stays recorded.
package path

// Tracker is the collapsing walk. The zero value is empty; use New.
type Tracker struct {
	cells []int // back of the slice is the front of the walk
}

// New starts a walk at start.
func New(start int) *Tracker {
	return &Tracker{cells: []int{start}}
}

// Record notes a successful move onto next. If next is the cell one step back
// along the walk the front is popped, otherwise next becomes the new front.
// It reports whether the move was a backtrack.
func (t *Tracker) Record(next int) bool {
	if n := len(t.cells); n > 1 && t.cells[n-2] == next {
		t.cells = t.cells[:n-1]
		return true
	}
	t.cells = append(t.cells, next)
	return false
}

// Current returns the front of the walk, or -1 for an empty tracker.
func (t *Tracker) Current() int {
	if len(t.cells) == 0 {
		return -1
	}
	return t.cells[len(t.cells)-1]
}

// Len returns the number of cells on the walk.
func (t *Tracker) Len() int { return len(t.cells) }

// Cells returns the walk front first: current position down to the start.
func (t *Tracker) Cells() []int {
	out := make([]int, len(t.cells))
	for i, id := range t.cells {
		out[len(t.cells)-1-i] = id
	}
	return out
}

// Contains reports whether id lies on the walk.
func (t *Tracker) Contains(id int) bool {
	for _, c := range t.cells {
		if c == id {
			return true
		}
	}
	return false
}

// Reset restarts the walk at start.
func (t *Tracker) Reset(start int) {
	t.cells = append(t.cells[:0], start)
}
