// Package day16 follows light beams through a contraption of mirrors and
// splitters.
package day16

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 16: The Floor Will Be Lava.
type Solver struct{}

// beam is a light front entering cell at heading.
type beam struct {
	cell    grid2d.Point
	heading grid2d.Bearing
}

// Part1 counts energized tiles for a beam entering the top-left tile
// heading east.
func (Solver) Part1(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return energize(g, beam{grid2d.Pt(0, 0), grid2d.East}), nil
}

// Part2 tries every edge entry and returns the most tiles energized.
func (Solver) Part2(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, b := range entries(g) {
		best = max(best, energize(g, b))
	}
	return best, nil
}

// entries lists every beam entering the grid from outside, pointing inward.
func entries(g *grid2d.Grid[rune]) []beam {
	var out []beam
	for x := 0; x < g.Width; x++ {
		out = append(out,
			beam{grid2d.Pt(x, 0), grid2d.South},
			beam{grid2d.Pt(x, g.Height-1), grid2d.North})
	}
	for y := 0; y < g.Height; y++ {
		out = append(out,
			beam{grid2d.Pt(0, y), grid2d.East},
			beam{grid2d.Pt(g.Width-1, y), grid2d.West})
	}
	return out
}

// deflect returns the headings a beam leaves tile r with when it arrives
// heading h.
func deflect(r rune, h grid2d.Bearing) []grid2d.Bearing {
	switch r {
	case '/':
		// East<->North, West<->South
		if h.Vertical() {
			return []grid2d.Bearing{h.Right()}
		}
		return []grid2d.Bearing{h.Left()}
	case '\\':
		if h.Vertical() {
			return []grid2d.Bearing{h.Left()}
		}
		return []grid2d.Bearing{h.Right()}
	case '|':
		if !h.Vertical() {
			return []grid2d.Bearing{grid2d.North, grid2d.South}
		}
	case '-':
		if h.Vertical() {
			return []grid2d.Bearing{grid2d.East, grid2d.West}
		}
	}
	return []grid2d.Bearing{h}
}

// energize runs a depth-first traversal over (cell, heading) pairs and
// returns the number of distinct cells visited.
func energize(g *grid2d.Grid[rune], start beam) int {
	seen := map[beam]bool{start: true}
	lit := map[grid2d.Point]bool{start.cell: true}
	stack := []beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, _ := g.Get(b.cell)
		for _, h := range deflect(r, b.heading) {
			next, ok := g.Neighbor(b.cell, h)
			if !ok {
				continue
			}
			nb := beam{next, h}
			if seen[nb] {
				continue
			}
			seen[nb] = true
			lit[next] = true
			stack = append(stack, nb)
		}
	}
	return len(lit)
}

func parse(input string) (*grid2d.Grid[rune], error) {
	g, err := grid2d.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	for i := 0; i < g.Width*g.Height; i++ {
		p := g.Coordinate(i)
		switch r, _ := g.Get(p); r {
		case '.', '/', '\\', '|', '-':
		default:
			return nil, puzzle.Malformed("tile %q at %v", r, p)
		}
	}
	return g, nil
}
