package grid2d

import "fmt"

// Point is a (column, row) coordinate. X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bearing is one of the four cardinal directions.
type Bearing uint8

const (
	// North moves towards row 0.
	North Bearing = iota
	// East moves towards the last column.
	East
	// South moves towards the last row.
	South
	// West moves towards column 0.
	West
)

// Bearings lists all four directions in clockwise order starting at North.
// Searches iterate it to keep neighbor order stable.
var Bearings = [4]Bearing{North, East, South, West}

var bearingOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var bearingNames = [4]string{"North", "East", "South", "West"}

// Offset returns the unit step for b.
func (b Bearing) Offset() Point {
	return bearingOffsets[b&3]
}

// Step returns the point one cell away from p in direction b.
// The result is not bounds-checked; use Grid.Neighbor for that.
func (b Bearing) Step(p Point) Point {
	return p.Add(b.Offset())
}

// Reverse returns the opposite direction.
func (b Bearing) Reverse() Bearing {
	return (b + 2) & 3
}

// Right returns the direction after a clockwise quarter turn.
func (b Bearing) Right() Bearing {
	return (b + 1) & 3
}

// Left returns the direction after a counter-clockwise quarter turn.
func (b Bearing) Left() Bearing {
	return (b + 3) & 3
}

// Vertical reports whether b is North or South.
func (b Bearing) Vertical() bool {
	return b == North || b == South
}

func (b Bearing) String() string {
	if b > West {
		return fmt.Sprintf("Bearing(%d)", uint8(b))
	}
	return bearingNames[b]
}

// Grid is a rectangular, row-major store of cells.
// Width and Height are fixed at construction.
type Grid[T comparable] struct {
	Width, Height int
	cells         []T
}
