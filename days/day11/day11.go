// Package day11 measures galaxy distances in an expanding universe.
package day11

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 11: Cosmic Expansion.
type Solver struct{}

// Part1 expands every empty row and column to twice its size.
func (Solver) Part1(input string) (int, error) {
	return SumDistances(input, 2)
}

// Part2 expands every empty row and column a million times.
func (Solver) Part2(input string) (int, error) {
	return SumDistances(input, 1_000_000)
}

// SumDistances returns the sum of Manhattan distances between every pair of
// galaxies ('#') after each empty row and column is replaced by factor
// copies of itself.
func SumDistances(input string, factor int) (int, error) {
	if factor < 1 {
		return 0, puzzle.Malformed("expansion factor %d", factor)
	}
	g, err := grid2d.ParseRunes(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	galaxies := g.FindAll('#')

	usedCol := make([]bool, g.Width)
	usedRow := make([]bool, g.Height)
	for _, p := range galaxies {
		usedCol[p.X] = true
		usedRow[p.Y] = true
	}
	colAt := expandedOffsets(usedCol, factor)
	rowAt := expandedOffsets(usedRow, factor)

	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += numeric.AbsDiff(colAt[a.X], colAt[b.X]) + numeric.AbsDiff(rowAt[a.Y], rowAt[b.Y])
		}
	}
	return total, nil
}

// expandedOffsets maps each original index to its position after expansion.
func expandedOffsets(used []bool, factor int) []int {
	out := make([]int, len(used))
	pos := 0
	for i, u := range used {
		out[i] = pos
		if u {
			pos++
		} else {
			pos += factor
		}
	}
	return out
}
