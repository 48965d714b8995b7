package grid2d

import "github.com/katalvlaran/aoc2023/numeric"

// ShoelaceArea returns the enclosed area of the simple polygon whose corners
// are given in traversal order. The polygon is closed implicitly (the last
// corner connects back to the first). The result is always non-negative.
// Complexity: O(n).
func ShoelaceArea(corners []Point) int {
	n := len(corners)
	if n < 3 {
		return 0
	}
	sum := 0
	for i, a := range corners {
		b := corners[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return numeric.Abs(sum) / 2
}

// BoundaryLength returns the number of unit steps walked along the closed
// rectilinear polygon through corners.
func BoundaryLength(corners []Point) int {
	n := len(corners)
	total := 0
	for i, a := range corners {
		b := corners[(i+1)%n]
		total += numeric.AbsDiff(b.X, a.X) + numeric.AbsDiff(b.Y, a.Y)
	}
	return total
}

// LatticeCount returns the number of lattice cells covered by a rectilinear
// polygon drawn with unit-wide strokes: interior points (Pick's theorem)
// plus the boundary itself.
func LatticeCount(corners []Point) int {
	area := ShoelaceArea(corners)
	boundary := BoundaryLength(corners)
	interior := area - boundary/2 + 1
	return interior + boundary
}

