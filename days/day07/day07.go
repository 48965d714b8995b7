// Package day07 ranks Camel Cards hands.
package day07

import (
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 7: Camel Cards.
type Solver struct{}

// Hand types from weakest to strongest.
const (
	highCard = iota
	onePair
	twoPair
	threeKind
	fullHouse
	fourKind
	fiveKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

type hand struct {
	cards string
	bid   int
	kind  int
	ranks [5]int
}

// Part1 sums bid × rank over all hands ordered by strength.
func (Solver) Part1(input string) (int, error) {
	return winnings(input, false)
}

// Part2 treats J as a joker: wild when classifying, weakest when comparing.
func (Solver) Part2(input string) (int, error) {
	return winnings(input, true)
}

func winnings(input string, jokers bool) (int, error) {
	hands, err := parse(input, jokers)
	if err != nil {
		return 0, err
	}
	slices.SortFunc(hands, compare)
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total, nil
}

// compare orders hands by kind and then card by card.
func compare(a, b hand) int {
	if a.kind != b.kind {
		return a.kind - b.kind
	}
	for i := range a.ranks {
		if a.ranks[i] != b.ranks[i] {
			return a.ranks[i] - b.ranks[i]
		}
	}
	return 0
}

// classify returns the hand type. With jokers, every J joins the largest
// group of other cards.
func classify(cards string, jokers bool) int {
	counts := make(map[rune]int, 5)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveKind
	case groups[0] == 4:
		return fourKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func parse(input string, jokers bool) ([]hand, error) {
	ord := order
	if jokers {
		ord = jokerOrder
	}
	var hands []hand
	for _, line := range puzzle.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 {
			return nil, puzzle.Malformed("hand %q", line)
		}
		bid, err := numeric.Atoi(f[1])
		if err != nil {
			return nil, puzzle.Malformed("bid in %q", line)
		}
		h := hand{cards: f[0], bid: bid, kind: classify(f[0], jokers)}
		for i := 0; i < 5; i++ {
			r := strings.IndexByte(ord, f[0][i])
			if r < 0 {
				return nil, puzzle.Malformed("card %q in %q", f[0][i], line)
			}
			h.ranks[i] = r
		}
		hands = append(hands, h)
	}
	return hands, nil
}
