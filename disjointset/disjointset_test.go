// SPDX-License-Identifier: MIT

package disjointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazes/disjointset"
)

func TestNew_Singletons(t *testing.T) {
	s := disjointset.New(5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Count())
	for i := 0; i < 5; i++ {
		r, err := s.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}
}

// TestUnion_Asymmetric checks that the root of the first argument is attached
// under the root of the second.
func TestUnion_Asymmetric(t *testing.T) {
	s := disjointset.New(4)
	require.NoError(t, s.Union(0, 1))
	r, _ := s.Find(0)
	assert.Equal(t, 1, r)

	require.NoError(t, s.Union(3, 2))
	r, _ = s.Find(3)
	assert.Equal(t, 2, r)

	require.NoError(t, s.Union(0, 3))
	for i := 0; i < 4; i++ {
		r, _ := s.Find(i)
		assert.Equal(t, 2, r, "id %d", i)
	}
	assert.Equal(t, 1, s.Count())
}

// TestUnion_Transitive covers a long chain and re-uniting members of the same
// set, which must not create a cycle in the representative chain.
func TestUnion_Transitive(t *testing.T) {
	const n = 200
	s := disjointset.New(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, s.Union(i, i+1))
	}
	for i := 0; i < n; i += 17 {
		require.NoError(t, s.Union(n-1, i))
		require.NoError(t, s.Union(i, n-1))
	}
	same, err := s.Same(0, n-1)
	require.NoError(t, err)
	assert.True(t, same)
	assert.Equal(t, 1, s.Count())
}

func TestOutOfRange(t *testing.T) {
	s := disjointset.New(2)
	_, err := s.Find(2)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	assert.ErrorIs(t, s.Union(-1, 0), disjointset.ErrOutOfRange)
	assert.ErrorIs(t, s.Union(0, 5), disjointset.ErrOutOfRange)
	_, err = s.Same(0, 9)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)

	var empty disjointset.Set
	assert.Equal(t, 0, empty.Count())
}
