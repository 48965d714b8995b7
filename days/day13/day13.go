// Package day13 finds the lines of reflection in ash and rock patterns.
package day13

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 13: Point of Incidence.
type Solver struct{}

// Part1 summarizes perfect reflections: columns left of a vertical line plus
// 100 times the rows above a horizontal one.
func (Solver) Part1(input string) (int, error) {
	return summarize(input, 0)
}

// Part2 summarizes the reflections that need exactly one smudge fixed.
func (Solver) Part2(input string) (int, error) {
	return summarize(input, 1)
}

func summarize(input string, smudges int) (int, error) {
	total := 0
	for i, block := range puzzle.Blocks(input) {
		g, err := grid2d.ParseRunes(block)
		if err != nil {
			return 0, fmt.Errorf("%w: pattern %d: %w", puzzle.ErrParse, i+1, err)
		}
		if r := mirror(g.Height, func(k int) []rune { return g.Row(k) }, smudges); r > 0 {
			total += 100 * r
			continue
		}
		if c := mirror(g.Width, func(k int) []rune { return g.Column(k) }, smudges); c > 0 {
			total += c
			continue
		}
		return 0, puzzle.Malformed("pattern %d has no reflection with %d smudges", i+1, smudges)
	}
	return total, nil
}

// mirror returns the number of lines before the first reflection axis whose
// mirrored lines differ in exactly smudges cells, or 0 if none does.
func mirror(n int, line func(int) []rune, smudges int) int {
	for axis := 1; axis < n; axis++ {
		diff := 0
		for k := 0; axis-1-k >= 0 && axis+k < n && diff <= smudges; k++ {
			diff += mismatches(line(axis-1-k), line(axis+k))
		}
		if diff == smudges {
			return axis
		}
	}
	return 0
}

func mismatches(a, b []rune) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
