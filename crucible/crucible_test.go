package crucible_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2023/crucible"
	"github.com/katalvlaran/aoc2023/grid2d"
)

const exampleCity = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const ultraTrap = `
111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustGrid(t testing.TB, text string) *grid2d.Grid[int] {
	t.Helper()
	g, err := grid2d.ParseDigits(text)
	require.NoError(t, err)
	return g
}

func corner(g *grid2d.Grid[int]) grid2d.Point {
	return grid2d.Pt(g.Width-1, g.Height-1)
}

// checkPath verifies that path is a legal route under the run limits and
// that entering its cells costs exactly want.
func checkPath(t *testing.T, g *grid2d.Grid[int], path []grid2d.Point, minRun, maxRun, want int) {
	t.Helper()
	require.NotEmpty(t, path)

	var moves []grid2d.Bearing
	cost := 0
	for i := 1; i < len(path); i++ {
		d := path[i].Add(path[i-1].Scale(-1))
		found := false
		for _, b := range grid2d.Bearings {
			if b.Offset() == d {
				moves = append(moves, b)
				found = true
			}
		}
		require.True(t, found, "step %v -> %v is not a unit move", path[i-1], path[i])
		c, err := g.At(path[i])
		require.NoError(t, err)
		cost += c
	}
	assert.Equal(t, want, cost, "path cost")

	run := 0
	for i, b := range moves {
		if i > 0 && b == moves[i-1].Reverse() {
			t.Fatalf("path reverses at step %d", i)
		}
		if i > 0 && b != moves[i-1] {
			assert.GreaterOrEqual(t, run, minRun, "turned after %d moves at step %d", run, i)
			run = 0
		}
		run++
		assert.LessOrEqual(t, run, maxRun, "run too long at step %d", i)
	}
	if len(moves) > 0 {
		assert.GreaterOrEqual(t, run, minRun, "stopped after %d moves", run)
	}
}

// bruteForce relaxes every (cell, heading, run) state until nothing changes.
// It shares no code with Search and serves as an optimality oracle.
func bruteForce(g *grid2d.Grid[int], start, dest grid2d.Point, minRun, maxRun int) (int, bool) {
	type node struct {
		p   grid2d.Point
		h   grid2d.Bearing
		run int
	}
	dist := map[node]int{{p: start}: 0}
	for changed := true; changed; {
		changed = false
		snapshot := make(map[node]int, len(dist))
		for k, v := range dist {
			snapshot[k] = v
		}
		for k, d := range snapshot {
			for _, b := range grid2d.Bearings {
				n := node{h: b, run: 1}
				if k.run > 0 {
					if b == k.h.Reverse() {
						continue
					}
					if b == k.h {
						if k.run == maxRun {
							continue
						}
						n.run = k.run + 1
					} else if k.run < minRun {
						continue
					}
				}
				n.p = b.Step(k.p)
				c, ok := g.Get(n.p)
				if !ok {
					continue
				}
				if old, seen := dist[n]; !seen || d+c < old {
					dist[n] = d + c
					changed = true
				}
			}
		}
	}
	best, found := 0, false
	for k, d := range dist {
		if k.p != dest || (k.run > 0 && k.run < minRun) {
			continue
		}
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

//----------------------------------------------------------------------------//
// Scenario suite
//----------------------------------------------------------------------------//

// SearchSuite exercises Search on the documented puzzle grids.
type SearchSuite struct {
	suite.Suite
	city *grid2d.Grid[int]
}

func (s *SearchSuite) SetupSuite() {
	s.city = mustGrid(s.T(), exampleCity)
}

// TestExampleCity checks the classic crucible on the 13×13 example.
func (s *SearchSuite) TestExampleCity() {
	res, err := crucible.Search(s.city, grid2d.Pt(0, 0), grid2d.Pt(12, 12))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 102, res.Cost)
	require.Nil(s.T(), res.Path, "path must be nil without WithReturnPath")
	require.Positive(s.T(), res.Expanded)
}

// TestExampleCityUltra checks the ultra crucible (4..10) on the same grid.
func (s *SearchSuite) TestExampleCityUltra() {
	res, err := crucible.Search(s.city, grid2d.Pt(0, 0), corner(s.city),
		crucible.WithMinRun(4), crucible.WithMaxRun(10))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 94, res.Cost)
}

// TestUltraMustRunBeforeStopping forces the ultra crucible round the long way.
func (s *SearchSuite) TestUltraMustRunBeforeStopping() {
	g := mustGrid(s.T(), ultraTrap)
	res, err := crucible.Search(g, grid2d.Pt(0, 0), corner(g),
		crucible.WithMinRun(4), crucible.WithMaxRun(10), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 71, res.Cost)
	checkPath(s.T(), g, res.Path, 4, 10, 71)
}

// TestPathRespectsRunLimit verifies the returned route never takes four
// identical moves in a row and costs what Search reports.
func (s *SearchSuite) TestPathRespectsRunLimit() {
	res, err := crucible.Search(s.city, grid2d.Pt(0, 0), corner(s.city), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), grid2d.Pt(0, 0), res.Path[0])
	require.Equal(s.T(), corner(s.city), res.Path[len(res.Path)-1])
	checkPath(s.T(), s.city, res.Path, 1, 3, 102)
}

// TestDeterministic repeats a search and expects identical results.
func (s *SearchSuite) TestDeterministic() {
	first, err := crucible.Search(s.city, grid2d.Pt(0, 0), corner(s.city), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := crucible.Search(s.city, grid2d.Pt(0, 0), corner(s.city), crucible.WithReturnPath())
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// Entry point for running the suite.
func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

//----------------------------------------------------------------------------//
// Validation and edge cases
//----------------------------------------------------------------------------//

func TestSearch_NilGrid(t *testing.T) {
	_, err := crucible.Search(nil, grid2d.Pt(0, 0), grid2d.Pt(0, 0))
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

func TestSearch_OutOfBounds(t *testing.T) {
	g := mustGrid(t, "12\n34")
	_, err := crucible.Search(g, grid2d.Pt(-1, 0), grid2d.Pt(1, 1))
	assert.ErrorIs(t, err, crucible.ErrOutOfBounds)
	assert.ErrorIs(t, err, grid2d.ErrOutOfBounds)

	_, err = crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(2, 1))
	assert.ErrorIs(t, err, crucible.ErrOutOfBounds)
}

func TestSearch_BadRun(t *testing.T) {
	g := mustGrid(t, "12\n34")
	cases := []struct {
		name string
		opts []crucible.Option
	}{
		{"ZeroMax", []crucible.Option{crucible.WithMaxRun(0)}},
		{"ZeroMin", []crucible.Option{crucible.WithMinRun(0)}},
		{"MinAboveMax", []crucible.Option{crucible.WithMinRun(5), crucible.WithMaxRun(4)}},
		{"MaxTooLarge", []crucible.Option{crucible.WithMaxRun(256)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(1, 1), tc.opts...)
			assert.ErrorIs(t, err, crucible.ErrBadRun)
		})
	}
}

func TestSearch_SingleCell(t *testing.T) {
	g := mustGrid(t, "7")
	res, err := crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(0, 0), crucible.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []grid2d.Point{grid2d.Pt(0, 0)}, res.Path)

	// Stopping at the start is allowed even under a minimum run.
	res, err = crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(0, 0), crucible.WithMinRun(4), crucible.WithMaxRun(10))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
}

// TestSearch_Unreachable covers destinations cut off by the run rules.
func TestSearch_Unreachable(t *testing.T) {
	// A single corridor needs four east moves in a row.
	corridor := mustGrid(t, "11111")
	_, err := crucible.Search(corridor, grid2d.Pt(0, 0), grid2d.Pt(4, 0))
	assert.ErrorIs(t, err, crucible.ErrUnreachable)

	// Three moves are fine.
	res, err := crucible.Search(corridor, grid2d.Pt(0, 0), grid2d.Pt(3, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)

	// The ultra crucible cannot stop after a single move.
	short := mustGrid(t, "19")
	_, err = crucible.Search(short, grid2d.Pt(0, 0), grid2d.Pt(1, 0), crucible.WithMinRun(4), crucible.WithMaxRun(10))
	assert.ErrorIs(t, err, crucible.ErrUnreachable)

	// A second row gives room to weave.
	wide := mustGrid(t, "11111\n11111")
	res, err = crucible.Search(wide, grid2d.Pt(0, 0), grid2d.Pt(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Cost)
}

// TestSearch_ZeroCostCells allows free cells without breaking termination.
func TestSearch_ZeroCostCells(t *testing.T) {
	g := mustGrid(t, "000\n000\n009")
	res, err := crucible.Search(g, grid2d.Pt(0, 0), grid2d.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 9, res.Cost)
}

// TestSearch_MatchesBruteForce compares Search against exhaustive relaxation
// on small random grids, for both rule sets.
func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	rules := []struct {
		name           string
		minRun, maxRun int
	}{
		{"Classic", 1, 3},
		{"Ultra", 4, 10},
		{"Tight", 2, 2},
	}
	for _, rule := range rules {
		for trial := 0; trial < 12; trial++ {
			w, h := 2+rng.Intn(5), 2+rng.Intn(5)
			var sb strings.Builder
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					sb.WriteByte(byte('1' + rng.Intn(9)))
				}
				sb.WriteByte('\n')
			}
			g := mustGrid(t, sb.String())
			dest := corner(g)

			want, reachable := bruteForce(g, grid2d.Pt(0, 0), dest, rule.minRun, rule.maxRun)
			res, err := crucible.Search(g, grid2d.Pt(0, 0), dest,
				crucible.WithMinRun(rule.minRun), crucible.WithMaxRun(rule.maxRun), crucible.WithReturnPath())
			if !reachable {
				assert.ErrorIs(t, err, crucible.ErrUnreachable, "%s trial %d:\n%s", rule.name, trial, g)
				continue
			}
			require.NoError(t, err, "%s trial %d:\n%s", rule.name, trial, g)
			assert.Equal(t, want, res.Cost, "%s trial %d:\n%s", rule.name, trial, g)
			checkPath(t, g, res.Path, rule.minRun, rule.maxRun, want)
		}
	}
}
