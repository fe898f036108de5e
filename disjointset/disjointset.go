// SPDX-License-Identifier: MIT

// Package disjointset is a union-find registry over dense integer ids.
//
// Find follows the representative chain recursively and never compresses it,
// and Union is asymmetric: the root of a is attached under the root of b.
// Callers that need a reproducible representative shape must therefore pass
// endpoints in a consistent order. Chains can grow to O(n) on adversarial
// union orders, which is fine at maze scale.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an id outside [0, Len()).
var ErrOutOfRange = errors.New("disjointset: id out of range")

// Set maps every id to a representative. The zero value is an empty set.
type Set struct {
	parent []int
}

// New returns a set of n singletons: every id is its own representative.
// Complexity: O(n).
func New(n int) *Set {
	s := &Set{parent: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// Len returns the number of ids.
func (s *Set) Len() int { return len(s.parent) }

// Find returns the representative of id.
// Complexity: O(chain length).
func (s *Set) Find(id int) (int, error) {
	if id < 0 || id >= len(s.parent) {
		return 0, fmt.Errorf("%w: %d of %d", ErrOutOfRange, id, len(s.parent))
	}
	return s.find(id), nil
}

func (s *Set) find(id int) int {
	if s.parent[id] == id {
		return id
	}
	return s.find(s.parent[id])
}

// Union sets the representative of Find(a) to Find(b). Uniting two ids that
// already share a root leaves the set unchanged, so the chains stay acyclic.
func (s *Set) Union(a, b int) error {
	ra, err := s.Find(a)
	if err != nil {
		return err
	}
	rb, err := s.Find(b)
	if err != nil {
		return err
	}
	s.parent[ra] = rb
	return nil
}

// Same reports whether a and b share a representative.
func (s *Set) Same(a, b int) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Count returns the number of distinct sets.
func (s *Set) Count() int {
	n := 0
	for i, p := range s.parent {
		if i == p {
			n++
		}
	}
	return n
}
