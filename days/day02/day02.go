// Package day02 checks cube games against a bag's contents.
package day02

import (
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 2: Cube Conundrum.
type Solver struct{}

// cubes counts red, green and blue cubes.
type cubes struct {
	red, green, blue int
}

func (c cubes) within(limit cubes) bool {
	return c.red <= limit.red && c.green <= limit.green && c.blue <= limit.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id    int
	draws []cubes
}

// minimal is the smallest bag that allows every draw.
func (g game) minimal() cubes {
	var m cubes
	for _, d := range g.draws {
		m.red = max(m.red, d.red)
		m.green = max(m.green, d.green)
		m.blue = max(m.blue, d.blue)
	}
	return m
}

var bag = cubes{red: 12, green: 13, blue: 14}

// Part1 sums the ids of games possible with 12 red, 13 green and 14 blue.
func (Solver) Part1(input string) (int, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		if g.minimal().within(bag) {
			total += g.id
		}
	}
	return total, nil
}

// Part2 sums the power of the minimal bag for every game.
func (Solver) Part2(input string) (int, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.minimal().power()
	}
	return total, nil
}

// parse reads lines like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parse(input string) ([]game, error) {
	var games []game
	for _, line := range puzzle.Lines(input) {
		head, body, ok := strings.Cut(line, ": ")
		if !ok || !strings.HasPrefix(head, "Game ") {
			return nil, puzzle.Malformed("game line %q", line)
		}
		id, err := numeric.Atoi(strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, puzzle.Malformed("game id in %q", line)
		}
		g := game{id: id}
		for _, set := range strings.Split(body, "; ") {
			d, err := parseDraw(set)
			if err != nil {
				return nil, err
			}
			g.draws = append(g.draws, d)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseDraw(set string) (cubes, error) {
	var d cubes
	for _, part := range strings.Split(set, ", ") {
		count, color, ok := strings.Cut(strings.TrimSpace(part), " ")
		if !ok {
			return d, puzzle.Malformed("draw %q", part)
		}
		n, err := numeric.Atoi(count)
		if err != nil {
			return d, puzzle.Malformed("count in %q", part)
		}
		switch color {
		case "red":
			d.red = n
		case "green":
			d.green = n
		case "blue":
			d.blue = n
		default:
			return d, puzzle.Malformed("unknown color %q", color)
		}
	}
	return d, nil
}
