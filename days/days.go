// Package days lists every solved day of the calendar.
//
// Adding a day means adding its package and one line to All.
package days

import (
	"github.com/katalvlaran/aoc2023/days/day01"
	"github.com/katalvlaran/aoc2023/days/day02"
	"github.com/katalvlaran/aoc2023/days/day03"
	"github.com/katalvlaran/aoc2023/days/day04"
	"github.com/katalvlaran/aoc2023/days/day05"
	"github.com/katalvlaran/aoc2023/days/day06"
	"github.com/katalvlaran/aoc2023/days/day07"
	"github.com/katalvlaran/aoc2023/days/day08"
	"github.com/katalvlaran/aoc2023/days/day09"
	"github.com/katalvlaran/aoc2023/days/day10"
	"github.com/katalvlaran/aoc2023/days/day11"
	"github.com/katalvlaran/aoc2023/days/day12"
	"github.com/katalvlaran/aoc2023/days/day13"
	"github.com/katalvlaran/aoc2023/days/day14"
	"github.com/katalvlaran/aoc2023/days/day15"
	"github.com/katalvlaran/aoc2023/days/day16"
	"github.com/katalvlaran/aoc2023/days/day17"
	"github.com/katalvlaran/aoc2023/days/day18"
	"github.com/katalvlaran/aoc2023/days/day19"
	"github.com/katalvlaran/aoc2023/days/day20"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// All returns the static list of days in calendar order.
func All() []puzzle.Day {
	return []puzzle.Day{
		{Number: 1, Title: "Trebuchet?!", Solver: day01.Solver{}},
		{Number: 2, Title: "Cube Conundrum", Solver: day02.Solver{}},
		{Number: 3, Title: "Gear Ratios", Solver: day03.Solver{}},
		{Number: 4, Title: "Scratchcards", Solver: day04.Solver{}},
		{Number: 5, Title: "If You Give A Seed A Fertilizer", Solver: day05.Solver{}},
		{Number: 6, Title: "Wait For It", Solver: day06.Solver{}},
		{Number: 7, Title: "Camel Cards", Solver: day07.Solver{}},
		{Number: 8, Title: "Haunted Wasteland", Solver: day08.Solver{}},
		{Number: 9, Title: "Mirage Maintenance", Solver: day09.Solver{}},
		{Number: 10, Title: "Pipe Maze", Solver: day10.Solver{}},
		{Number: 11, Title: "Cosmic Expansion", Solver: day11.Solver{}},
		{Number: 12, Title: "Hot Springs", Solver: day12.Solver{}},
		{Number: 13, Title: "Point of Incidence", Solver: day13.Solver{}},
		{Number: 14, Title: "Parabolic Reflector Dish", Solver: day14.Solver{}},
		{Number: 15, Title: "Lens Library", Solver: day15.Solver{}},
		{Number: 16, Title: "The Floor Will Be Lava", Solver: day16.Solver{}},
		{Number: 17, Title: "Clumsy Crucible", Solver: day17.Solver{}},
		{Number: 18, Title: "Lavaduct Lagoon", Solver: day18.Solver{}},
		{Number: 19, Title: "Aplenty", Solver: day19.Solver{}},
		{Number: 20, Title: "Pulse Propagation", Solver: day20.Solver{}},
	}
}

// Registry builds a puzzle.Registry from All.
func Registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(All()...)
}
