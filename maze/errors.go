// SPDX-License-Identifier: MIT

package maze

import "errors"

var (
	// ErrUnderConstruction is returned by operations that need every tree
	// wall broken first.
	ErrUnderConstruction = errors.New("maze: still under construction")

	// ErrNoSolution indicates that the wall follower could not reach the goal.
	// A fully built maze never produces it.
	ErrNoSolution = errors.New("maze: goal not reachable")
)
