// Package day15 runs the HASHMAP lens initialization sequence.
package day15

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 15: Lens Library.
type Solver struct{}

// Hash is the Holiday ASCII String Helper: for every byte, add it, multiply
// by 17 and keep the remainder modulo 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

// Part1 sums the hash of every comma-separated step.
func (Solver) Part1(input string) (int, error) {
	steps, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range steps {
		total += Hash(s)
	}
	return total, nil
}

// Part2 applies every step to the 256 boxes and returns the focusing power.
// "label=N" inserts or replaces a lens; "label-" removes it.
func (Solver) Part2(input string) (int, error) {
	steps, err := parse(input)
	if err != nil {
		return 0, err
	}
	var boxes [256][]lens
	for _, s := range steps {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			b := &boxes[Hash(label)]
			*b = slices.DeleteFunc(*b, func(l lens) bool { return l.label == label })
			continue
		}
		label, val, ok := strings.Cut(s, "=")
		if !ok {
			return 0, puzzle.Malformed("step %q", s)
		}
		focal, err := strconv.Atoi(val)
		if err != nil || focal < 1 || focal > 9 {
			return 0, puzzle.Malformed("focal length in %q", s)
		}
		b := &boxes[Hash(label)]
		if i := slices.IndexFunc(*b, func(l lens) bool { return l.label == label }); i >= 0 {
			(*b)[i].focal = focal
		} else {
			*b = append(*b, lens{label: label, focal: focal})
		}
	}
	power := 0
	for i, box := range boxes {
		for j, l := range box {
			power += (i + 1) * (j + 1) * l.focal
		}
	}
	return power, nil
}

func parse(input string) ([]string, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "\n", "")
	if input == "" {
		return nil, puzzle.Malformed("empty sequence")
	}
	return strings.Split(input, ","), nil
}
