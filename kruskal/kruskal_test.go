// SPDX-License-Identifier: MIT

package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/kruskal"
	"github.com/katalvlaran/mazes/topology"
)

func newSquare(t testing.TB, w, h int) *grid.Grid {
	t.Helper()
	shape, err := topology.SquareShape(w, h)
	require.NoError(t, err)
	g, err := grid.New(shape)
	require.NoError(t, err)
	return g
}

func newHex(t testing.TB, side int) *grid.Grid {
	t.Helper()
	shape, err := topology.HexShape(side)
	require.NoError(t, err)
	g, err := grid.New(shape)
	require.NoError(t, err)
	return g
}

func constant(w int) kruskal.WeightFn {
	return func(grid.Link, *rand.Rand) int { return w }
}

func drain(t *testing.T, tree *kruskal.Tree, g *grid.Grid) {
	t.Helper()
	for {
		ok, err := tree.BreakNext(g)
		require.NoError(t, err)
		if !ok {
			return
		}
	}
}

// TestKruskal_TwoByTwo checks the classic scenario: three tree edges, picked
// in emission order when every weight ties.
func TestKruskal_TwoByTwo(t *testing.T) {
	g := newSquare(t, 2, 2)
	tree, err := kruskal.Compute(g, kruskal.WithWeightFn(constant(7)))
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())

	assert.Equal(t, []kruskal.Edge{
		{From: 0, To: 1, Dir: topology.Right, Weight: 7},
		{From: 0, To: 2, Dir: topology.Down, Weight: 7},
		{From: 1, To: 3, Dir: topology.Down, Weight: 7},
	}, tree.Edges())

	drain(t, tree, g)
	assert.True(t, tree.Empty())
	require.NoError(t, g.Verify())
	for id := 0; id < g.Len(); id++ {
		assert.NotEmpty(t, g.AccessibleNeighbors(id), "cell %d", id)
	}
}

// TestKruskal_StableTieBreak feeds weights that tie in pairs and checks the
// sorted order keeps emission order inside each tie.
func TestKruskal_StableTieBreak(t *testing.T) {
	g := newSquare(t, 3, 1)
	edges := []kruskal.Edge{
		{From: 0, To: 1, Dir: topology.Right, Weight: 5},
		{From: 1, To: 2, Dir: topology.Right, Weight: 1},
	}
	tree, err := kruskal.Kruskal(g, edges)
	require.NoError(t, err)
	assert.Equal(t, []kruskal.Edge{edges[1], edges[0]}, tree)

	// A duplicate edge is rejected as a loop.
	tree, err = kruskal.Kruskal(g, append(edges, edges[0]))
	require.NoError(t, err)
	assert.Len(t, tree, 2)
}

// TestCompute_PerfectMazes builds many random mazes with both methods and
// both topologies and verifies each is a spanning tree.
func TestCompute_PerfectMazes(t *testing.T) {
	for _, method := range []string{kruskal.MethodKruskal, kruskal.MethodPrim} {
		for seed := int64(1); seed <= 20; seed++ {
			for name, g := range map[string]*grid.Grid{
				"square": newSquare(t, 7, 5),
				"hex":    newHex(t, 4),
			} {
				tree, err := kruskal.Compute(g, kruskal.WithSeed(seed), kruskal.WithMethod(method))
				require.NoError(t, err)
				require.Equal(t, g.Len()-1, tree.Len(), "%s %s seed %d", method, name, seed)
				drain(t, tree, g)
				assert.NoError(t, g.Verify(), "%s %s seed %d", method, name, seed)
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, err := kruskal.Compute(newSquare(t, 10, 10), kruskal.WithSeed(42))
	require.NoError(t, err)
	b, err := kruskal.Compute(newSquare(t, 10, 10), kruskal.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Weight(), b.Weight())
}

func TestCompute_Errors(t *testing.T) {
	g := newSquare(t, 2, 2)

	_, err := kruskal.Compute(g)
	assert.ErrorIs(t, err, kruskal.ErrNeedRandSource)

	_, err = kruskal.Compute(nil, kruskal.WithSeed(1))
	assert.ErrorIs(t, err, kruskal.ErrNilGrid)

	_, err = kruskal.Compute(g, kruskal.WithSeed(1), kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, kruskal.ErrUnknownMethod)

	assert.Panics(t, func() { kruskal.WithRand(nil) })
	assert.Panics(t, func() { kruskal.WithWeightFn(nil) })
	assert.Panics(t, func() { kruskal.WithMaxWeight(1) })
}

// TestEdges_Bias checks that a biased axis draws from the halved range while
// the other axis still spans the full range.
func TestEdges_Bias(t *testing.T) {
	g := newSquare(t, 30, 30)
	o := kruskal.DefaultOptions()
	kruskal.WithSeed(3)(&o)
	kruskal.WithMaxWeight(1000)(&o)
	kruskal.WithVerticalBias(true)(&o)

	edges, err := kruskal.Edges(g, o)
	require.NoError(t, err)
	require.Len(t, edges, 2*29*30)

	maxH := 0
	for _, e := range edges {
		require.GreaterOrEqual(t, e.Weight, 0)
		if e.Dir.Axis() == topology.Vertical {
			assert.Less(t, e.Weight, 500)
		} else {
			assert.Less(t, e.Weight, 1000)
			maxH = max(maxH, e.Weight)
		}
	}
	assert.GreaterOrEqual(t, maxH, 500, "horizontal weights should reach the upper half")
}

// TestEdges_HexBias checks that the hex diagonals follow the vertical flag.
func TestEdges_HexBias(t *testing.T) {
	g := newHex(t, 6)
	o := kruskal.DefaultOptions()
	kruskal.WithSeed(9)(&o)
	kruskal.WithHorizontalBias(true)(&o)

	edges, err := kruskal.Edges(g, o)
	require.NoError(t, err)
	for _, e := range edges {
		if e.Dir == topology.Right {
			assert.Less(t, e.Weight, kruskal.DefaultMaxWeight/2)
		} else {
			assert.Contains(t, []topology.Direction{topology.RightDown, topology.LeftDown}, e.Dir)
		}
	}
}

// TestPrim_GrowthOrder checks that with tied weights Prim expands from the
// start cell in emission order.
func TestPrim_GrowthOrder(t *testing.T) {
	g := newSquare(t, 2, 2)
	tree, err := kruskal.Compute(g,
		kruskal.WithMethod(kruskal.MethodPrim),
		kruskal.WithWeightFn(constant(1)),
	)
	require.NoError(t, err)
	assert.Equal(t, []kruskal.Edge{
		{From: 0, To: 1, Dir: topology.Right, Weight: 1},
		{From: 0, To: 2, Dir: topology.Down, Weight: 1},
		{From: 1, To: 3, Dir: topology.Down, Weight: 1},
	}, tree.Edges())
}

func TestTree_Queue(t *testing.T) {
	tree := kruskal.NewTree([]kruskal.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	assert.Equal(t, 2, tree.Len())
	e, ok := tree.Next()
	require.True(t, ok)
	assert.Equal(t, 1, e.To)
	_, ok = tree.Next()
	require.True(t, ok)
	_, ok = tree.Next()
	assert.False(t, ok)
	assert.True(t, tree.Empty())
	assert.Len(t, tree.Edges(), 2)

	ok, err := tree.BreakNext(newSquare(t, 1, 1))
	assert.NoError(t, err)
	assert.False(t, ok)
}

// TestTree_BreakNextMismatch applies a tree to a grid it was not built for.
func TestTree_BreakNextMismatch(t *testing.T) {
	tree, err := kruskal.Compute(newSquare(t, 3, 3), kruskal.WithSeed(5))
	require.NoError(t, err)

	_, err = tree.BreakNext(newSquare(t, 1, 1))
	assert.ErrorIs(t, err, kruskal.ErrTopologyMismatch)
	assert.Equal(t, 8, tree.Len(), "failed break must not consume the edge")

	_, err = kruskal.Kruskal(newSquare(t, 1, 1), []kruskal.Edge{{From: 0, To: 4}})
	assert.ErrorIs(t, err, kruskal.ErrTopologyMismatch)
	_, err = kruskal.Prim(newSquare(t, 1, 1), []kruskal.Edge{{From: 0, To: 4}})
	assert.ErrorIs(t, err, kruskal.ErrTopologyMismatch)
}
