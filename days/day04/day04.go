// Package day04 scores scratchcards.
package day04

import (
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 4: Scratchcards.
type Solver struct{}

// Part1 sums card points: 1 for the first match, doubled for each further one.
func (Solver) Part1(input string) (int, error) {
	wins, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, w := range wins {
		if w > 0 {
			total += 1 << (w - 1)
		}
	}
	return total, nil
}

// Part2 counts cards after each card with w matches wins one copy of each of
// the next w cards.
func (Solver) Part2(input string) (int, error) {
	wins, err := parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(wins))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, w := range wins {
		for j := i + 1; j <= i+w && j < len(wins); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total, nil
}

// parse returns the number of matching numbers on every card.
func parse(input string) ([]int, error) {
	var out []int
	for _, line := range puzzle.Lines(input) {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformed("card %q", line)
		}
		left, right, ok := strings.Cut(body, "|")
		if !ok {
			return nil, puzzle.Malformed("card %q has no separator", line)
		}
		winning, err := numeric.Ints(left)
		if err != nil {
			return nil, puzzle.Malformed("winning numbers: %v", err)
		}
		have, err := numeric.Ints(right)
		if err != nil {
			return nil, puzzle.Malformed("card numbers: %v", err)
		}
		set := make(map[int]bool, len(winning))
		for _, n := range winning {
			set[n] = true
		}
		w := 0
		for _, n := range have {
			if set[n] {
				w++
			}
		}
		out = append(out, w)
	}
	return out, nil
}
