// Package day06 counts the ways to win boat races.
package day06

import (
	"math"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 6: Wait For It.
type Solver struct{}

// Part1 multiplies the number of winning hold times of every race.
func (Solver) Part1(input string) (int, error) {
	times, dists, err := parse(input, false)
	if err != nil {
		return 0, err
	}
	product := 1
	for i, t := range times {
		product *= ways(t, dists[i])
	}
	return product, nil
}

// Part2 reads each line as one number with the spaces removed.
func (Solver) Part2(input string) (int, error) {
	times, dists, err := parse(input, true)
	if err != nil {
		return 0, err
	}
	return ways(times[0], dists[0]), nil
}

// ways counts hold times h in (0, t) with h*(t-h) > d. The float roots of
// h² - th + d are corrected with exact integer checks.
func ways(t, d int) int {
	disc := float64(t)*float64(t) - 4*float64(d)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int(math.Floor((float64(t)-sq)/2)) + 1
	hi := int(math.Ceil((float64(t)+sq)/2)) - 1

	wins := func(h int) bool { return h*(t-h) > d }
	for lo > 1 && wins(lo-1) {
		lo--
	}
	for lo < t && !wins(lo) {
		lo++
	}
	for hi < t-1 && wins(hi+1) {
		hi++
	}
	for hi > 0 && !wins(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func parse(input string, joined bool) (times, dists []int, err error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, nil, puzzle.Malformed("want 2 lines, got %d", len(lines))
	}
	row := func(line, label string) ([]int, error) {
		body, ok := strings.CutPrefix(line, label)
		if !ok {
			return nil, puzzle.Malformed("missing %q", label)
		}
		if joined {
			body = strings.Join(strings.Fields(body), "")
		}
		v, err := numeric.Ints(body)
		if err != nil {
			return nil, puzzle.Malformed("%s %v", label, err)
		}
		return v, nil
	}
	if times, err = row(lines[0], "Time:"); err != nil {
		return nil, nil, err
	}
	if dists, err = row(lines[1], "Distance:"); err != nil {
		return nil, nil, err
	}
	if len(times) != len(dists) || len(times) == 0 {
		return nil, nil, puzzle.Malformed("%d times for %d distances", len(times), len(dists))
	}
	return times, dists, nil
}
