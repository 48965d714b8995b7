// Package day20 simulates pulses through a network of flip-flops and
// conjunctions.
package day20

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 20: Pulse Propagation.
type Solver struct{}

var (
	// ErrNoSink indicates the network has no single conjunction feeding rx.
	ErrNoSink = errors.New("day20: no conjunction feeds rx")

	// ErrTooManyPresses indicates a feeder never fired within the press limit.
	ErrTooManyPresses = errors.New("day20: press limit reached")
)

const (
	broadcaster = "broadcaster"
	sink        = "rx"
	presses     = 1000
	pressLimit  = 1 << 20
)

type kind byte

const (
	relay kind = iota
	flipFlop
	conjunction
)

type module struct {
	name    string
	kind    kind
	outputs []string
	on      bool            // flip-flop state
	memory  map[string]bool // conjunction: last pulse per input, true = high
}

type pulse struct {
	from, to string
	high     bool
}

type network struct {
	modules map[string]*module
}

// press sends one low pulse to the broadcaster and delivers every resulting
// pulse in order. observe sees each pulse as it is delivered.
func (n *network) press(observe func(pulse)) {
	queue := []pulse{{from: "button", to: broadcaster}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)
		m, ok := n.modules[p.to]
		if !ok {
			continue
		}
		var out bool
		switch m.kind {
		case flipFlop:
			if p.high {
				continue
			}
			m.on = !m.on
			out = m.on
		case conjunction:
			m.memory[p.from] = p.high
			out = false
			for _, h := range m.memory {
				if !h {
					out = true
					break
				}
			}
		default:
			out = p.high
		}
		for _, o := range m.outputs {
			queue = append(queue, pulse{from: m.name, to: o, high: out})
		}
	}
}

// Part1 presses the button 1000 times and multiplies the low and high pulse
// counts.
func (Solver) Part1(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	low, high := 0, 0
	for i := 0; i < presses; i++ {
		n.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return low * high, nil
}

// Part2 returns the fewest presses that deliver a low pulse to rx. rx must be
// fed by a single conjunction; the answer is the LCM of the press counts at
// which each of its inputs first sends it a high pulse.
func (Solver) Part2(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	feeder, err := n.feeder()
	if err != nil {
		return 0, err
	}
	first := make(map[string]int, len(feeder.memory))
	for i := 1; i <= pressLimit; i++ {
		n.press(func(p pulse) {
			if p.to == feeder.name && p.high {
				if _, ok := first[p.from]; !ok {
					first[p.from] = i
				}
			}
		})
		if len(first) == len(feeder.memory) {
			periods := make([]int, 0, len(first))
			for _, v := range first {
				periods = append(periods, v)
			}
			return numeric.LCM(periods...), nil
		}
	}
	return 0, fmt.Errorf("%w: %d presses", ErrTooManyPresses, pressLimit)
}

// feeder returns the only module with rx among its outputs. It must be a
// conjunction with at least one input.
func (n *network) feeder() (*module, error) {
	var found []*module
	for _, m := range n.modules {
		if slices.Contains(m.outputs, sink) {
			found = append(found, m)
		}
	}
	if len(found) != 1 || found[0].kind != conjunction || len(found[0].memory) == 0 {
		return nil, ErrNoSink
	}
	return found[0], nil
}

// parse reads lines like "%a -> b, c". Conjunction memories start low for
// every module that outputs to them.
func parse(input string) (*network, error) {
	n := &network{modules: make(map[string]*module)}
	for _, line := range puzzle.Lines(input) {
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, puzzle.Malformed("module %q", line)
		}
		if name == "" {
			return nil, puzzle.Malformed("module %q has no name", line)
		}
		m := &module{}
		switch name[0] {
		case '%':
			m.kind, name = flipFlop, name[1:]
		case '&':
			m.kind, name = conjunction, name[1:]
			m.memory = make(map[string]bool)
		}
		if name == "" {
			return nil, puzzle.Malformed("module %q has no name", line)
		}
		m.name = name
		for _, o := range strings.Split(outs, ",") {
			if o = strings.TrimSpace(o); o != "" {
				m.outputs = append(m.outputs, o)
			}
		}
		if _, dup := n.modules[name]; dup {
			return nil, puzzle.Malformed("module %q declared twice", name)
		}
		n.modules[name] = m
	}
	if _, ok := n.modules[broadcaster]; !ok {
		return nil, puzzle.Malformed("no %s", broadcaster)
	}
	for _, m := range n.modules {
		for _, o := range m.outputs {
			if t, ok := n.modules[o]; ok && t.kind == conjunction {
				t.memory[m.name] = false
			}
		}
	}
	return n, nil
}
