// Package day18 measures the lagoon dug out from a dig plan.
package day18

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 18: Lavaduct Lagoon.
type Solver struct{}

// step is one dig instruction.
type step struct {
	heading grid2d.Bearing
	length  int
}

var letters = map[string]grid2d.Bearing{
	"U": grid2d.North,
	"R": grid2d.East,
	"D": grid2d.South,
	"L": grid2d.West,
}

// hexBearings maps the last digit of the hex code to a heading.
var hexBearings = [4]grid2d.Bearing{grid2d.East, grid2d.South, grid2d.West, grid2d.North}

// Part1 digs the plan as written.
func (Solver) Part1(input string) (int, error) {
	return volume(input, false)
}

// Part2 decodes each hex color: five digits of length, one of direction.
func (Solver) Part2(input string) (int, error) {
	return volume(input, true)
}

func volume(input string, hex bool) (int, error) {
	steps, err := parse(input, hex)
	if err != nil {
		return 0, err
	}
	return grid2d.LatticeCount(corners(steps)), nil
}

// corners walks the plan from the origin and returns every turning point.
func corners(steps []step) []grid2d.Point {
	out := make([]grid2d.Point, 0, len(steps))
	cur := grid2d.Pt(0, 0)
	for _, s := range steps {
		cur = cur.Add(s.heading.Offset().Scale(s.length))
		out = append(out, cur)
	}
	return out
}

// parse reads lines like "R 6 (#70c710)".
func parse(input string, hex bool) ([]step, error) {
	var out []step
	for _, line := range puzzle.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, puzzle.Malformed("instruction %q", line)
		}
		var s step
		if hex {
			code := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
			if len(code) != 6 {
				return nil, puzzle.Malformed("color %q", f[2])
			}
			n, err := strconv.ParseInt(code[:5], 16, 64)
			if err != nil {
				return nil, puzzle.Malformed("color %q: %v", f[2], err)
			}
			d := code[5] - '0'
			if d > 3 {
				return nil, puzzle.Malformed("direction digit in %q", f[2])
			}
			s = step{heading: hexBearings[d], length: int(n)}
		} else {
			b, ok := letters[f[0]]
			if !ok {
				return nil, puzzle.Malformed("direction %q", f[0])
			}
			n, err := numeric.Atoi(f[1])
			if err != nil {
				return nil, puzzle.Malformed("length in %q", line)
			}
			s = step{heading: b, length: n}
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, puzzle.Malformed("empty plan")
	}
	return out, nil
}
