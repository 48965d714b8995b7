// Package aoc2023 collects solutions to a twenty-day holiday puzzle
// calendar, built around a small set of shared helpers.
//
// Each day reads a text input, parses it into local structures and answers
// two numeric questions. Days never call each other.
//
// Layout:
//
//	grid2d/         generic rectangular Grid[T], Point, Bearing, polygon area
//	crucible/       shortest path with a bounded run of identical moves (day 17)
//	numeric/        generic Abs, GCD, LCM and integer field parsing
//	puzzle/         Solver interface, day Registry and the file-reading Runner
//	days/dayNN/     one package per day, each exporting Solver{}
//	config/         YAML settings and logrus logger construction
//	cmd/aoc2023/    command-line entry point
//
// Quick example, the crucible search on a 2×2 city:
//
//	g, _ := grid2d.ParseDigits("19\n11")
//	res, _ := crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(1, 1))
//	fmt.Println(res.Cost) // 2
//
// Running the calendar:
//
//	go run ./cmd/aoc2023 -config aoc.yaml -day 17
package aoc2023
