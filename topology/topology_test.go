// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazes/topology"
)

// TestHexRowWidth checks the rhombus of row widths for side length 3 and the
// out-of-bounds error one row past the bottom.
func TestHexRowWidth(t *testing.T) {
	hex, err := topology.Of(topology.Hex)
	require.NoError(t, err)

	var widths []int
	for row := 0; row < 5; row++ {
		w, err := hex.RowWidth(row, 3)
		require.NoError(t, err)
		widths = append(widths, w)
	}
	assert.Equal(t, []int{3, 4, 5, 4, 3}, widths)

	_, err = hex.RowWidth(5, 3)
	assert.ErrorIs(t, err, topology.ErrRowOutOfBounds)
	_, err = hex.RowWidth(-1, 3)
	assert.ErrorIs(t, err, topology.ErrRowOutOfBounds)
}

// TestSquareRowWidth verifies the constant width of square rows.
func TestSquareRowWidth(t *testing.T) {
	sq, err := topology.Of(topology.Square)
	require.NoError(t, err)
	for _, row := range []int{0, 1, 59, 1000} {
		w, err := sq.RowWidth(row, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, w, "row %d", row)
	}
}

func TestShapes(t *testing.T) {
	s, err := topology.SquareShape(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, 12, s.Cells())

	h, err := topology.HexShape(3)
	require.NoError(t, err)
	assert.Equal(t, 5, h.Height)
	assert.Equal(t, 19, h.Cells())
	_, err = h.RowWidth(5)
	assert.ErrorIs(t, err, topology.ErrRowOutOfBounds)

	cases := []struct {
		name string
		fn   func() error
	}{
		{"SquareZeroWidth", func() error { _, err := topology.SquareShape(0, 1); return err }},
		{"SquareWide", func() error { _, err := topology.SquareShape(101, 1); return err }},
		{"SquareTall", func() error { _, err := topology.SquareShape(1, 61); return err }},
		{"HexZero", func() error { _, err := topology.HexShape(0); return err }},
		{"HexLarge", func() error { _, err := topology.HexShape(26); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.fn(), topology.ErrDimension)
		})
	}
}

func TestOfUnknownKind(t *testing.T) {
	_, err := topology.Of(topology.Kind(9))
	assert.ErrorIs(t, err, topology.ErrUnknownKind)
}

// TestParse covers both label styles and malformed tokens.
func TestParse(t *testing.T) {
	sq, _ := topology.Of(topology.Square)
	hex, _ := topology.Of(topology.Hex)

	squareCases := map[string]topology.Direction{
		"w": topology.Up, "up": topology.Up,
		"s": topology.Down, "down": topology.Down,
		"a": topology.Left, "left": topology.Left,
		"d": topology.Right, "right": topology.Right,
	}
	for label, want := range squareCases {
		got, err := sq.Parse(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	hexCases := map[string]topology.Direction{
		"a": topology.Left, "d": topology.Right,
		"e": topology.RightUp, "x": topology.RightDown,
		"w": topology.LeftUp, "z": topology.LeftDown,
	}
	for label, want := range hexCases {
		got, err := hex.Parse(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
		assert.Equal(t, label, hex.Key(want))
	}

	for _, bad := range []string{"", "q", "UP", "e"} {
		_, err := sq.Parse(bad)
		assert.ErrorIs(t, err, topology.ErrInvalidDirection, "square %q", bad)
	}
	for _, bad := range []string{"s", "up", "k"} {
		_, err := hex.Parse(bad)
		assert.ErrorIs(t, err, topology.ErrInvalidDirection, "hex %q", bad)
	}
}

// TestRotationCycles walks each cycle once in both directions and checks it
// returns to the start after len(Directions()) steps.
func TestRotationCycles(t *testing.T) {
	for _, k := range []topology.Kind{topology.Square, topology.Hex} {
		topo, _ := topology.Of(k)
		n := len(topo.Directions())
		d := topo.InitialFacing()
		seen := map[topology.Direction]bool{}
		for i := 0; i < n; i++ {
			seen[d] = true
			assert.Equal(t, d, topo.Clockwise(topo.CounterClockwise(d)), "%s %s", k, d)
			d = topo.CounterClockwise(d)
		}
		assert.Equal(t, topo.InitialFacing(), d, k.String())
		assert.Len(t, seen, n, k.String())
	}

	sq, _ := topology.Of(topology.Square)
	assert.Equal(t, topology.Down, sq.CounterClockwise(topology.Left))
	assert.Equal(t, topology.Up, sq.Clockwise(topology.Left))
	hex, _ := topology.Of(topology.Hex)
	assert.Equal(t, topology.LeftDown, hex.CounterClockwise(topology.Left))
	assert.Equal(t, topology.LeftUp, hex.Clockwise(topology.Left))
	assert.Equal(t, 2, hex.TurnSteps())
}

// TestHexDelta checks diagonal column shifts on both sides of the peak row
// for side length 3 (peak row 2).
func TestHexDelta(t *testing.T) {
	hex, _ := topology.Of(topology.Hex)
	cases := []struct {
		row        int
		d          topology.Direction
		dRow, dCol int
	}{
		{1, topology.RightUp, -1, 0},
		{1, topology.LeftUp, -1, -1},
		{3, topology.RightUp, -1, 1},
		{3, topology.LeftUp, -1, 0},
		{0, topology.RightDown, 1, 1},
		{0, topology.LeftDown, 1, 0},
		{2, topology.RightDown, 1, 0},
		{2, topology.LeftDown, 1, -1},
		{2, topology.RightUp, -1, 0},
		{2, topology.Left, 0, -1},
	}
	for _, tc := range cases {
		dr, dc, ok := hex.Delta(tc.row, 3, tc.d)
		require.True(t, ok)
		assert.Equal(t, [2]int{tc.dRow, tc.dCol}, [2]int{dr, dc}, "row %d %s", tc.row, tc.d)
	}
	_, _, ok := hex.Delta(0, 3, topology.Up)
	assert.False(t, ok)
}

func TestOppositeAndAxis(t *testing.T) {
	for d := topology.Direction(0); d < topology.NumDirections; d++ {
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
		assert.NotEqual(t, d, d.Opposite(), d.String())
	}
	assert.Equal(t, topology.Horizontal, topology.Right.Axis())
	assert.Equal(t, topology.Vertical, topology.Down.Axis())
	assert.Equal(t, topology.Vertical, topology.LeftDown.Axis())
}
