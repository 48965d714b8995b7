// Package day19 routes machine parts through accept/reject workflows.
package day19

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// Solver solves day 19: Aplenty.
type Solver struct{}

const (
	accept = "A"
	reject = "R"
	entry  = "in"
)

// categories indexes the four ratings of a part.
const categories = "xmas"

// part holds the x, m, a and s ratings.
type part [4]int

// rule sends a part to target when its rating cat compares with value by op.
// A rule with op 0 always matches.
type rule struct {
	cat    int
	op     byte
	value  int
	target string
}

func (r rule) matches(p part) bool {
	switch r.op {
	case '<':
		return p[r.cat] < r.value
	case '>':
		return p[r.cat] > r.value
	}
	return true
}

type system struct {
	workflows map[string][]rule
	parts     []part
}

var (
	workflowRE = regexp.MustCompile(`^([a-z]+)\{(.*)\}$`)
	ruleRE     = regexp.MustCompile(`^([xmas])([<>])(\d+):([a-zA-Z]+)$`)
	partRE     = regexp.MustCompile(`^\{x=(\d+),m=(\d+),a=(\d+),s=(\d+)\}$`)
)

// Part1 sums the ratings of every accepted part.
func (Solver) Part1(input string) (int, error) {
	sys, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range sys.parts {
		ok, err := sys.accepts(p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += p[0] + p[1] + p[2] + p[3]
		}
	}
	return total, nil
}

// Part2 counts the rating combinations in 1..4000 that are accepted.
func (Solver) Part2(input string) (int, error) {
	sys, err := parse(input)
	if err != nil {
		return 0, err
	}
	full := box{{1, 4000}, {1, 4000}, {1, 4000}, {1, 4000}}
	return sys.count(entry, full, 0)
}

func (s *system) accepts(p part) (bool, error) {
	name := entry
	for hops := 0; hops <= len(s.workflows); hops++ {
		switch name {
		case accept:
			return true, nil
		case reject:
			return false, nil
		}
		rules, ok := s.workflows[name]
		if !ok {
			return false, puzzle.Malformed("unknown workflow %q", name)
		}
		for _, r := range rules {
			if r.matches(p) {
				name = r.target
				break
			}
		}
	}
	return false, puzzle.Malformed("workflows loop")
}

// box is an inclusive [lo, hi] range per category.
type box [4][2]int

func (b box) size() int {
	n := 1
	for _, r := range b {
		n *= r[1] - r[0] + 1
	}
	return n
}

// split cuts b on rule r into the part that matches and the rest. Either
// may be empty.
func (b box) split(r rule) (in, out box, inOK, outOK bool) {
	in, out = b, b
	lo, hi := b[r.cat][0], b[r.cat][1]
	switch r.op {
	case '<':
		in[r.cat][1] = min(hi, r.value-1)
		out[r.cat][0] = max(lo, r.value)
	case '>':
		in[r.cat][0] = max(lo, r.value+1)
		out[r.cat][1] = min(hi, r.value)
	default:
		return b, b, true, false
	}
	return in, out, in[r.cat][0] <= in[r.cat][1], out[r.cat][0] <= out[r.cat][1]
}

// count returns how many parts in b workflow name accepts.
func (s *system) count(name string, b box, depth int) (int, error) {
	switch name {
	case accept:
		return b.size(), nil
	case reject:
		return 0, nil
	}
	if depth > len(s.workflows) {
		return 0, puzzle.Malformed("workflows loop")
	}
	rules, ok := s.workflows[name]
	if !ok {
		return 0, puzzle.Malformed("unknown workflow %q", name)
	}
	total := 0
	for _, r := range rules {
		in, out, inOK, outOK := b.split(r)
		if inOK {
			n, err := s.count(r.target, in, depth+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		if !outOK {
			break
		}
		b = out
	}
	return total, nil
}

func parse(input string) (*system, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want workflows and parts, got %d blocks", len(blocks))
	}
	sys := &system{workflows: make(map[string][]rule)}
	for _, line := range puzzle.Lines(blocks[0]) {
		m := workflowRE.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("workflow %q", line)
		}
		var rules []rule
		for _, text := range strings.Split(m[2], ",") {
			r, err := parseRule(text)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		if rules[len(rules)-1].op != 0 {
			return nil, puzzle.Malformed("workflow %q has no fallback", m[1])
		}
		sys.workflows[m[1]] = rules
	}
	if _, ok := sys.workflows[entry]; !ok {
		return nil, puzzle.Malformed("no %q workflow", entry)
	}
	for _, line := range puzzle.Lines(blocks[1]) {
		m := partRE.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("part %q", line)
		}
		var p part
		for i := range p {
			p[i], _ = strconv.Atoi(m[i+1])
		}
		sys.parts = append(sys.parts, p)
	}
	return sys, nil
}

func parseRule(text string) (rule, error) {
	if !strings.Contains(text, ":") {
		if text == "" {
			return rule{}, puzzle.Malformed("empty rule")
		}
		return rule{target: text}, nil
	}
	m := ruleRE.FindStringSubmatch(text)
	if m == nil {
		return rule{}, puzzle.Malformed("rule %q", text)
	}
	v, err := strconv.Atoi(m[3])
	if err != nil {
		return rule{}, puzzle.Malformed("rule %q: %v", text, err)
	}
	return rule{cat: strings.Index(categories, m[1]), op: m[2][0], value: v, target: m[4]}, nil
}
