package grid2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid2d"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid2d.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid2d.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid2d.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid2d.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid2d.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 9

	v, ok := g.Get(grid2d.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, 1, v, "grid must not alias caller rows")
}

func TestNew(t *testing.T) {
	_, err := grid2d.New[rune](0, 3)
	assert.ErrorIs(t, err, grid2d.ErrEmptyGrid)

	g, err := grid2d.New[rune](3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
}

func TestParseDigits(t *testing.T) {
	g, err := grid2d.ParseDigits("\n241\r\n321\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	v, err := g.At(grid2d.Pt(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "241\n321\n", g.String())
}

func TestParseDigits_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "  \n", grid2d.ErrEmptyGrid},
		{"Ragged", "123\n12\n", grid2d.ErrMalformedInput},
		{"NonDigit", "123\n1x3\n", grid2d.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid2d.ParseDigits(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := grid2d.ParseDigits("12\n123")
	assert.ErrorIs(t, err, grid2d.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Lookups and movement
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid2d.ParseRunes("#.#\n.#.")
	require.NoError(t, err)

	for _, p := range []grid2d.Point{grid2d.Pt(0, 0), grid2d.Pt(2, 1), grid2d.Pt(1, 1)} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid2d.Point{grid2d.Pt(-1, 0), grid2d.Pt(3, 0), grid2d.Pt(1, 2), grid2d.Pt(2, -1)} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		_, ok := g.Get(p)
		assert.False(t, ok)
		_, err := g.At(p)
		assert.ErrorIs(t, err, grid2d.ErrOutOfBounds)
		assert.False(t, g.Set(p, 'x'))
	}
}

func TestNeighbor_NoWraparound(t *testing.T) {
	g, err := grid2d.ParseDigits("12\n34")
	require.NoError(t, err)

	n, ok := g.Neighbor(grid2d.Pt(0, 0), grid2d.East)
	require.True(t, ok)
	assert.Equal(t, grid2d.Pt(1, 0), n)

	_, ok = g.Neighbor(grid2d.Pt(0, 0), grid2d.North)
	assert.False(t, ok)
	_, ok = g.Neighbor(grid2d.Pt(0, 0), grid2d.West)
	assert.False(t, ok)
	_, ok = g.Neighbor(grid2d.Pt(1, 1), grid2d.South)
	assert.False(t, ok)

	assert.Equal(t, []grid2d.Point{grid2d.Pt(1, 0), grid2d.Pt(0, 1)}, g.Adjacent(grid2d.Pt(0, 0)))
}

func TestBearing(t *testing.T) {
	assert.Equal(t, grid2d.South, grid2d.North.Reverse())
	assert.Equal(t, grid2d.West, grid2d.East.Reverse())
	assert.Equal(t, grid2d.East, grid2d.North.Right())
	assert.Equal(t, grid2d.West, grid2d.North.Left())
	assert.Equal(t, grid2d.North, grid2d.West.Right())
	assert.True(t, grid2d.South.Vertical())
	assert.False(t, grid2d.East.Vertical())
	assert.Equal(t, "West", grid2d.West.String())
	assert.Equal(t, grid2d.Pt(4, 2), grid2d.East.Step(grid2d.Pt(3, 2)))
}

func TestFindAllSetClone(t *testing.T) {
	g, err := grid2d.ParseRunes("O.#\n.O.\n")
	require.NoError(t, err)
	assert.Equal(t, []grid2d.Point{grid2d.Pt(0, 0), grid2d.Pt(1, 1)}, g.FindAll('O'))

	p, ok := g.Find('#')
	require.True(t, ok)
	assert.Equal(t, grid2d.Pt(2, 0), p)

	c := g.Clone()
	require.True(t, c.Set(grid2d.Pt(1, 0), 'O'))
	assert.True(t, g.Equal(g.Clone()))
	assert.False(t, g.Equal(c))
	assert.Equal(t, "O.#\n.O.\n", g.String())
	assert.Equal(t, "OO#\n.O.\n", c.String())

	assert.Equal(t, []rune{'O', '.', '#'}, g.Row(0))
	assert.Equal(t, []rune{'#', '.'}, g.Column(2))
	assert.Nil(t, g.Row(5))
	assert.Nil(t, g.Column(-1))
}

//----------------------------------------------------------------------------//
// Polygons
//----------------------------------------------------------------------------//

func TestPolygon(t *testing.T) {
	square := []grid2d.Point{grid2d.Pt(0, 0), grid2d.Pt(2, 0), grid2d.Pt(2, 2), grid2d.Pt(0, 2)}
	assert.Equal(t, 4, grid2d.ShoelaceArea(square))
	assert.Equal(t, 8, grid2d.BoundaryLength(square))
	// 3×3 block of cells.
	assert.Equal(t, 9, grid2d.LatticeCount(square))

	// Counter-clockwise order yields the same area.
	reversed := []grid2d.Point{grid2d.Pt(0, 2), grid2d.Pt(2, 2), grid2d.Pt(2, 0), grid2d.Pt(0, 0)}
	assert.Equal(t, 4, grid2d.ShoelaceArea(reversed))
	assert.Equal(t, 0, grid2d.ShoelaceArea(square[:2]))
}
