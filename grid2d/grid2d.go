package grid2d

import (
	"fmt"
	"strconv"
	"strings"
)

// New returns a width×height grid with every cell set to the zero value.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T comparable](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{
		Width:  width,
		Height: height,
		cells:  make([]T, width*height),
	}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice.
// It copies the input so later changes to rows do not leak into the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid[T]) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Get returns the cell at p and true, or the zero value and false
// when p is outside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// At is Get with an error: ErrOutOfBounds (wrapped with p) for points
// outside the grid.
func (g *Grid[T]) At(p Point) (T, error) {
	v, ok := g.Get(p)
	if !ok {
		return v, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}
	return v, nil
}

// Set stores v at p. It reports false, leaving the grid untouched,
// when p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// Neighbor returns the cell adjacent to p in direction b.
// There is no wraparound: the second result is false if the step
// would leave the grid.
func (g *Grid[T]) Neighbor(p Point, b Bearing) (Point, bool) {
	n := b.Step(p)
	return n, g.InBounds(n)
}

// Adjacent returns the in-bounds orthogonal neighbors of p in
// North, East, South, West order.
func (g *Grid[T]) Adjacent(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, b := range Bearings {
		if n, ok := g.Neighbor(p, b); ok {
			out = append(out, n)
		}
	}
	return out
}

// FindAll returns every point holding v, in row-major order.
func (g *Grid[T]) FindAll(v T) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == v {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Find returns the first point holding v in row-major order.
func (g *Grid[T]) Find(v T) (Point, bool) {
	for i, c := range g.cells {
		if c == v {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Row returns a copy of row y, or nil if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.Height {
		return nil
	}
	out := make([]T, g.Width)
	copy(out, g.cells[y*g.Width:(y+1)*g.Width])
	return out
}

// Column returns a copy of column x, or nil if x is out of range.
func (g *Grid[T]) Column(x int) []T {
	if x < 0 || x >= g.Width {
		return nil
	}
	out := make([]T, g.Height)
	for y := range out {
		out[y] = g.cells[y*g.Width+x]
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether g and o have the same shape and cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line. Rune cells print as
// characters, integer cells as decimal digits; anything else uses fmt.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for i, c := range g.cells {
		switch v := any(c).(type) {
		case rune:
			sb.WriteRune(v)
		case byte:
			sb.WriteByte(v)
		case int:
			sb.WriteString(strconv.Itoa(v))
		default:
			fmt.Fprint(&sb, v)
		}
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
