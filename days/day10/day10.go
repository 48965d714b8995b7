// Package day10 traces the loop of pipes running through the animal's start
// tile.
package day10

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 10: Pipe Maze.
type Solver struct{}

// pipes maps each pipe tile to the two bearings it connects.
var pipes = map[rune][2]grid2d.Bearing{
	'|': {grid2d.North, grid2d.South},
	'-': {grid2d.East, grid2d.West},
	'L': {grid2d.North, grid2d.East},
	'J': {grid2d.North, grid2d.West},
	'7': {grid2d.South, grid2d.West},
	'F': {grid2d.East, grid2d.South},
}

func connects(r rune, b grid2d.Bearing) bool {
	ends, ok := pipes[r]
	return ok && (ends[0] == b || ends[1] == b)
}

// maze is the pipe grid with the start tile replaced by its real shape.
type maze struct {
	grid  *grid2d.Grid[rune]
	start grid2d.Point
	loop  map[grid2d.Point]bool
}

// Part1 returns the distance to the loop tile farthest from the start.
func (Solver) Part1(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	return len(m.loop) / 2, nil
}

// Part2 counts tiles enclosed by the loop.
func (Solver) Part2(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	return m.enclosed(), nil
}

// enclosed scans each row left to right, flipping inside/outside on every
// loop tile with a north-facing connection.
func (m *maze) enclosed() int {
	count := 0
	for y := 0; y < m.grid.Height; y++ {
		inside := false
		for x := 0; x < m.grid.Width; x++ {
			p := grid2d.Pt(x, y)
			if m.loop[p] {
				if r, _ := m.grid.Get(p); connects(r, grid2d.North) {
					inside = !inside
				}
				continue
			}
			if inside {
				count++
			}
		}
	}
	return count
}

func parse(input string) (*maze, error) {
	g, err := grid2d.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, puzzle.Malformed("no start tile")
	}

	// The start tile's shape follows from which neighbors point back at it.
	var exits []grid2d.Bearing
	for _, b := range grid2d.Bearings {
		if n, ok := g.Neighbor(start, b); ok {
			if r, _ := g.Get(n); connects(r, b.Reverse()) {
				exits = append(exits, b)
			}
		}
	}
	if len(exits) != 2 {
		return nil, puzzle.Malformed("start tile has %d connections, want 2", len(exits))
	}
	for r, ends := range pipes {
		if ends == [2]grid2d.Bearing{exits[0], exits[1]} || ends == [2]grid2d.Bearing{exits[1], exits[0]} {
			g.Set(start, r)
		}
	}

	m := &maze{grid: g, start: start, loop: map[grid2d.Point]bool{start: true}}
	cur, heading := start, exits[0]
	for {
		next, ok := g.Neighbor(cur, heading)
		if !ok {
			return nil, puzzle.Malformed("loop leaves the grid at %v", cur)
		}
		if next == start {
			break
		}
		r, _ := g.Get(next)
		ends, ok := pipes[r]
		if !ok || !connects(r, heading.Reverse()) {
			return nil, puzzle.Malformed("loop broken at %v", next)
		}
		m.loop[next] = true
		if ends[0] == heading.Reverse() {
			heading = ends[1]
		} else {
			heading = ends[0]
		}
		cur = next
	}
	return m, nil
}
