// Package day12 counts the possible arrangements of damaged springs.
package day12

import (
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 12: Hot Springs.
type Solver struct{}

// record is one row: springs ('.', '#', '?') and damaged group sizes.
type record struct {
	springs string
	groups  []int
}

// unfold repeats the record n times, joining springs with '?'.
func (r record) unfold(n int) record {
	springs := make([]string, n)
	groups := make([]int, 0, len(r.groups)*n)
	for i := range springs {
		springs[i] = r.springs
		groups = append(groups, r.groups...)
	}
	return record{springs: strings.Join(springs, "?"), groups: groups}
}

// arrangements counts the ways to fill every '?' so that the runs of '#'
// match groups exactly. memo[i][j] caches the count for springs[i:] and
// groups[j:].
func (r record) arrangements() int {
	s, gs := r.springs, r.groups
	memo := make([][]int, len(s)+1)
	for i := range memo {
		memo[i] = make([]int, len(gs)+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}
	var count func(i, j int) int
	count = func(i, j int) int {
		if j == len(gs) {
			if strings.Contains(s[i:], "#") {
				return 0
			}
			return 1
		}
		if i >= len(s) {
			return 0
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		n := 0
		c := s[i]
		if c != '#' {
			n += count(i+1, j)
		}
		if c != '.' {
			g := gs[j]
			end := i + g
			if end <= len(s) && !strings.Contains(s[i:end], ".") && (end == len(s) || s[end] != '#') {
				n += count(min(end+1, len(s)), j+1)
			}
		}
		memo[i][j] = n
		return n
	}
	return count(0, 0)
}

// Part1 sums the arrangement counts of every record.
func (Solver) Part1(input string) (int, error) {
	return total(input, 1)
}

// Part2 unfolds every record five times first.
func (Solver) Part2(input string) (int, error) {
	return total(input, 5)
}

func total(input string, folds int) (int, error) {
	records, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range records {
		sum += r.unfold(folds).arrangements()
	}
	return sum, nil
}

func parse(input string) ([]record, error) {
	var out []record
	for _, line := range puzzle.Lines(input) {
		springs, sizes, ok := strings.Cut(line, " ")
		if !ok || strings.Trim(springs, ".#?") != "" {
			return nil, puzzle.Malformed("record %q", line)
		}
		groups, err := numeric.Ints(strings.ReplaceAll(sizes, ",", " "))
		if err != nil {
			return nil, puzzle.Malformed("groups in %q: %v", line, err)
		}
		for _, g := range groups {
			if g < 1 {
				return nil, puzzle.Malformed("group size %d in %q", g, line)
			}
		}
		out = append(out, record{springs: springs, groups: groups})
	}
	return out, nil
}
