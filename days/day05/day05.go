// Package day05 follows seeds through the almanac's chain of range maps.
package day05

import (
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 5: If You Give A Seed A Fertilizer.
type Solver struct{}

// span is the half-open interval [lo, hi).
type span struct {
	lo, hi int
}

// rule shifts [src, src+n) to start at dst.
type rule struct {
	dst, src, n int
}

// mapping is one "x-to-y map:" block.
type mapping struct {
	name  string
	rules []rule
}

type almanac struct {
	seeds    []int
	mappings []mapping
}

// apply maps a single value. Values outside every rule map to themselves.
func (m mapping) apply(v int) int {
	for _, r := range m.rules {
		if v >= r.src && v < r.src+r.n {
			return v - r.src + r.dst
		}
	}
	return v
}

// applySpans maps whole intervals, splitting them at rule boundaries.
func (m mapping) applySpans(in []span) []span {
	var out []span
	pending := in
	for _, r := range m.rules {
		var rest []span
		for _, s := range pending {
			lo, hi := max(s.lo, r.src), min(s.hi, r.src+r.n)
			if lo >= hi {
				rest = append(rest, s)
				continue
			}
			shift := r.dst - r.src
			out = append(out, span{lo + shift, hi + shift})
			if s.lo < lo {
				rest = append(rest, span{s.lo, lo})
			}
			if hi < s.hi {
				rest = append(rest, span{hi, s.hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Part1 returns the lowest location reached by any listed seed.
func (Solver) Part1(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	best := -1
	for _, s := range a.seeds {
		for _, m := range a.mappings {
			s = m.apply(s)
		}
		if best < 0 || s < best {
			best = s
		}
	}
	return best, nil
}

// Part2 reads the seed list as (start, length) pairs and returns the lowest
// location reached by any seed in those ranges.
func (Solver) Part2(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds)%2 != 0 {
		return 0, puzzle.Malformed("odd number of seed values (%d)", len(a.seeds))
	}
	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		if a.seeds[i+1] > 0 {
			spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
		}
	}
	for _, m := range a.mappings {
		spans = m.applySpans(spans)
	}
	if len(spans) == 0 {
		return 0, puzzle.Malformed("no seeds")
	}
	best := spans[0].lo
	for _, s := range spans[1:] {
		best = min(best, s.lo)
	}
	return best, nil
}

func parse(input string) (*almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, puzzle.Malformed("empty almanac")
	}
	head, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, puzzle.Malformed("missing seeds line")
	}
	seeds, err := numeric.Ints(head)
	if err != nil {
		return nil, puzzle.Malformed("seeds: %v", err)
	}
	a := &almanac{seeds: seeds}
	for _, b := range blocks[1:] {
		lines := puzzle.Lines(b)
		m := mapping{name: strings.TrimSuffix(lines[0], " map:")}
		for _, l := range lines[1:] {
			v, err := numeric.Ints(l)
			if err != nil || len(v) != 3 {
				return nil, puzzle.Malformed("%s rule %q", m.name, l)
			}
			m.rules = append(m.rules, rule{dst: v[0], src: v[1], n: v[2]})
		}
		a.mappings = append(a.mappings, m)
	}
	return a, nil
}
