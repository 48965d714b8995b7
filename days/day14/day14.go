// Package day14 tilts a platform of rolling rocks.
package day14

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 14: Parabolic Reflector Dish.
type Solver struct{}

const (
	rounded = 'O'
	cube    = '#'
	empty   = '.'
)

const spinCycles = 1_000_000_000

// Part1 tilts the platform north and returns the load on the north beams.
func (Solver) Part1(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	tilt(g, grid2d.North)
	return load(g), nil
}

// Part2 returns the north load after a billion spin cycles.
func (Solver) Part2(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return spinLoad(g, spinCycles), nil
}

// spinLoad runs cycles spin cycles, stopping early once the rock layout
// repeats. Layouts are keyed by the deephash of the rounded rock positions.
func spinLoad(g *grid2d.Grid[rune], cycles int) int {
	seen := make(map[deephash.Sum]int)
	var loads []int
	for i := 0; ; i++ {
		if i == cycles {
			return load(g)
		}
		rocks := g.FindAll(rounded)
		key := deephash.Hash(&rocks)
		if j, ok := seen[key]; ok {
			period := i - j
			return loads[j+(cycles-j)%period]
		}
		seen[key] = i
		loads = append(loads, load(g))
		spin(g)
	}
}

// spin tilts north, west, south and east in turn.
func spin(g *grid2d.Grid[rune]) {
	for _, b := range [4]grid2d.Bearing{grid2d.North, grid2d.West, grid2d.South, grid2d.East} {
		tilt(g, b)
	}
}

// tilt rolls every rounded rock as far as it goes towards b.
func tilt(g *grid2d.Grid[rune], b grid2d.Bearing) {
	for _, lane := range lanes(g, b) {
		free := 0
		for k, p := range lane {
			switch r, _ := g.Get(p); r {
			case cube:
				free = k + 1
			case rounded:
				g.Set(p, empty)
				g.Set(lane[free], rounded)
				free++
			}
		}
	}
}

// lanes returns every row or column ordered from the wall faced by b inward.
func lanes(g *grid2d.Grid[rune], b grid2d.Bearing) [][]grid2d.Point {
	across, along := g.Width, g.Height
	if !b.Vertical() {
		across, along = g.Height, g.Width
	}
	out := make([][]grid2d.Point, across)
	for a := range out {
		lane := make([]grid2d.Point, along)
		for k := range lane {
			switch b {
			case grid2d.North:
				lane[k] = grid2d.Pt(a, k)
			case grid2d.South:
				lane[k] = grid2d.Pt(a, along-1-k)
			case grid2d.West:
				lane[k] = grid2d.Pt(k, a)
			case grid2d.East:
				lane[k] = grid2d.Pt(along-1-k, a)
			}
		}
		out[a] = lane
	}
	return out
}

// load sums, over every rounded rock, its distance from the south edge
// counted from 1.
func load(g *grid2d.Grid[rune]) int {
	total := 0
	for _, p := range g.FindAll(rounded) {
		total += g.Height - p.Y
	}
	return total
}

func parse(input string) (*grid2d.Grid[rune], error) {
	g, err := grid2d.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	for i := 0; i < g.Width*g.Height; i++ {
		p := g.Coordinate(i)
		if r, _ := g.Get(p); r != rounded && r != cube && r != empty {
			return nil, puzzle.Malformed("tile %q at %v", r, p)
		}
	}
	return g, nil
}
