// Package day17 steers crucibles of lava through the city with the least
// heat loss.
package day17

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/crucible"
	"github.com/katalvlaran/aoc2023/grid2d"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 17: Clumsy Crucible.
type Solver struct{}

// Part1 moves a crucible that goes at most three blocks straight.
func (Solver) Part1(input string) (int, error) {
	return leastHeatLoss(input)
}

// Part2 moves an ultra crucible: at least four and at most ten blocks
// before turning or stopping.
func (Solver) Part2(input string) (int, error) {
	return leastHeatLoss(input, crucible.WithMinRun(4), crucible.WithMaxRun(10))
}

// leastHeatLoss searches from the top-left block to the bottom-right one.
func leastHeatLoss(input string, opts ...crucible.Option) (int, error) {
	g, err := grid2d.ParseDigits(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	res, err := crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(g.Width-1, g.Height-1), opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}
