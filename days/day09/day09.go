// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"slices"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 9: Mirage Maintenance.
type Solver struct{}

// Part1 sums the next value of every history.
func (Solver) Part1(input string) (int, error) {
	return sumNext(input, false)
}

// Part2 sums the value preceding every history.
func (Solver) Part2(input string) (int, error) {
	return sumNext(input, true)
}

func sumNext(input string, backwards bool) (int, error) {
	total := 0
	for _, line := range puzzle.Lines(input) {
		h, err := numeric.Ints(line)
		if err != nil {
			return 0, puzzle.Malformed("history: %v", err)
		}
		if len(h) == 0 {
			return 0, puzzle.Malformed("empty history")
		}
		if backwards {
			slices.Reverse(h)
		}
		total += extrapolate(h)
	}
	return total, nil
}

// extrapolate returns the next value of seq using repeated differences:
// it is the sum of the last element of every difference row.
func extrapolate(seq []int) int {
	row := slices.Clone(seq)
	next := 0
	for len(row) > 0 {
		next += row[len(row)-1]
		zero := true
		for i := 0; i < len(row)-1; i++ {
			row[i] = row[i+1] - row[i]
			if row[i] != 0 {
				zero = false
			}
		}
		row = row[:len(row)-1]
		if zero {
			break
		}
	}
	return next
}
