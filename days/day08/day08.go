// Package day08 walks the desert network's left/right map.
package day08

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 8: Haunted Wasteland.
type Solver struct{}

// ErrNoExit is returned when a walk never reaches its goal.
var ErrNoExit = errors.New("day08: walk never reaches an exit")

var nodeRE = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

type network struct {
	turns string
	next  map[string][2]string
}

// steps walks from start until done(node) holds, following turns cyclically.
func (n *network) steps(start string, done func(string) bool) (int, error) {
	// Any walk that reaches its goal does so before every (node, turn index)
	// pair repeats.
	limit := len(n.turns)*len(n.next) + 1
	cur := start
	for i := 0; i < limit; i++ {
		if done(cur) {
			return i, nil
		}
		pair, ok := n.next[cur]
		if !ok {
			return 0, puzzle.Malformed("unknown node %q", cur)
		}
		if n.turns[i%len(n.turns)] == 'L' {
			cur = pair[0]
		} else {
			cur = pair[1]
		}
	}
	return 0, fmt.Errorf("%w: from %s", ErrNoExit, start)
}

// Part1 counts steps from AAA to ZZZ.
func (Solver) Part1(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	if _, ok := n.next["AAA"]; !ok {
		return 0, puzzle.Malformed("no node AAA")
	}
	return n.steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once and counts steps until all
// stand on nodes ending in Z. Each ghost's path is assumed to cycle with the
// period of its first arrival, so the answer is the LCM of those counts.
func (Solver) Part2(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	var periods []int
	for node := range n.next {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		k, err := n.steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, k)
	}
	if len(periods) == 0 {
		return 0, puzzle.Malformed("no start nodes")
	}
	return numeric.LCM(periods...), nil
}

func parse(input string) (*network, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want turns and nodes, got %d blocks", len(blocks))
	}
	turns := strings.TrimSpace(blocks[0])
	if turns == "" || strings.Trim(turns, "LR") != "" {
		return nil, puzzle.Malformed("turns %q", turns)
	}
	n := &network{turns: turns, next: make(map[string][2]string)}
	for _, line := range puzzle.Lines(blocks[1]) {
		m := nodeRE.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("node %q", line)
		}
		n.next[m[1]] = [2]string{m[2], m[3]}
	}
	return n, nil
}
