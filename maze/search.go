// SPDX-License-Identifier: MIT

package maze

// BFSStep advances breadth-first search by one unit of visible work. Open
// neighbors are appended to the back of the work list in reverse priority
// order. It returns false when there was nothing to do (list exhausted or
// already won).
func (m *Maze) BFSStep() bool {
	return m.searchStep(func(rev []int) {
		m.work = append(m.work, rev...)
	})
}

// DFSStep advances depth-first search by one unit of visible work. Each open
// neighbor is pushed onto the front of the work list in priority order, so
// the last one listed is explored first.
func (m *Maze) DFSStep() bool {
	return m.searchStep(func(rev []int) {
		m.work = append(rev, m.work...)
	})
}

// searchStep pops work items until one needs processing. Entries already
// seen are skipped inside the same call. push receives the open neighbors of
// the processed cell in reverse priority order.
func (m *Maze) searchStep(push func(rev []int)) bool {
	if m.HasWon() {
		return false
	}
	goal := m.grid.Goal()
	for len(m.work) > 0 {
		cur := m.work[0]
		m.work = m.work[1:]

		if cur == goal {
			m.won = true
			m.grid.Cell(cur).Enter()
			m.leaveSeenHead()
			return true
		}
		if m.seen[cur] {
			continue
		}

		m.grid.Cell(cur).Enter()
		m.leaveSeenHead()
		nbrs := m.grid.AccessibleNeighbors(cur)
		rev := make([]int, len(nbrs))
		for i, n := range nbrs {
			rev[len(nbrs)-1-i] = n
		}
		push(rev)
		m.seen[cur] = true
		m.seenHead = cur
		return true
	}
	return false
}

// leaveSeenHead marks the previously processed cell visited.
func (m *Maze) leaveSeenHead() {
	if m.seenHead >= 0 {
		m.grid.Cell(m.seenHead).Leave()
	}
}
