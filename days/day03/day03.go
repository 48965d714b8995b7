// Package day03 finds part numbers and gear ratios in an engine schematic.
package day03

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 3: Gear Ratios.
type Solver struct{}

var numberRE = regexp.MustCompile(`\d+`)

// partNumber is a horizontal run of digits on the schematic.
type partNumber struct {
	value      int
	row        int
	start, end int // [start, end) columns
}

// schematic is the parsed engine diagram.
type schematic struct {
	grid    *grid2d.Grid[rune]
	numbers []partNumber
}

func isSymbol(r rune) bool {
	return r != '.' && (r < '0' || r > '9')
}

// Part1 sums every number adjacent (diagonals included) to a symbol.
func (Solver) Part1(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range s.numbers {
		for _, p := range s.border(n) {
			if r, ok := s.grid.Get(p); ok && isSymbol(r) {
				total += n.value
				break
			}
		}
	}
	return total, nil
}

// Part2 sums the products of the two numbers around every '*' that
// touches exactly two numbers.
func (Solver) Part2(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	gears := make(map[grid2d.Point][]int)
	for _, n := range s.numbers {
		for _, p := range s.border(n) {
			if r, ok := s.grid.Get(p); ok && r == '*' {
				gears[p] = append(gears[p], n.value)
			}
		}
	}
	total := 0
	for _, vals := range gears {
		if len(vals) == 2 {
			total += vals[0] * vals[1]
		}
	}
	return total, nil
}

// border lists the in-grid cells surrounding n.
func (s *schematic) border(n partNumber) []grid2d.Point {
	var out []grid2d.Point
	for y := n.row - 1; y <= n.row+1; y++ {
		for x := n.start - 1; x <= n.end; x++ {
			if y == n.row && x >= n.start && x < n.end {
				continue
			}
			if p := grid2d.Pt(x, y); s.grid.InBounds(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func parse(input string) (*schematic, error) {
	g, err := grid2d.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	s := &schematic{grid: g}
	for y, line := range puzzle.Lines(input) {
		for _, loc := range numberRE.FindAllStringIndex(line, -1) {
			v, err := strconv.Atoi(line[loc[0]:loc[1]])
			if err != nil {
				return nil, puzzle.Malformed("number on row %d: %v", y, err)
			}
			s.numbers = append(s.numbers, partNumber{value: v, row: y, start: loc[0], end: loc[1]})
		}
	}
	return s, nil
}
