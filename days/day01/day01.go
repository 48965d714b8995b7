// Package day01 recovers calibration values hidden in lines of text.
package day01

import (
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 1: Trebuchet?!
type Solver struct{}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums the two-digit numbers formed by the first and last digit of
// each line.
func (Solver) Part1(input string) (int, error) {
	return sumCalibration(input, false)
}

// Part2 is Part1 with spelled-out digits ("one".."nine") counting too.
// Spellings may overlap: "eightwo" starts with 8 and ends with 2.
func (Solver) Part2(input string) (int, error) {
	return sumCalibration(input, true)
}

func sumCalibration(input string, words bool) (int, error) {
	total := 0
	for _, line := range puzzle.Lines(input) {
		v, err := calibration(line, words)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// calibration returns 10*first + last for the digits found in line.
func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d := digitAt(line, i, words)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, puzzle.Malformed("no digit in %q", line)
	}
	return first*10 + last, nil
}

// digitAt returns the digit starting at line[i], or -1.
func digitAt(line string, i int, words bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !words {
		return -1
	}
	for n, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return n + 1
		}
	}
	return -1
}
