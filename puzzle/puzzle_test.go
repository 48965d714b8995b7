package puzzle_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// lineCounter answers line count for part 1 and the sum of numeric lines for
// part 2, failing on anything else.
type lineCounter struct{}

func (lineCounter) Part1(input string) (int, error) {
	return len(puzzle.Lines(input)), nil
}

func (lineCounter) Part2(input string) (int, error) {
	total := 0
	for _, l := range puzzle.Lines(input) {
		v, err := strconv.Atoi(l)
		if err != nil {
			return 0, puzzle.Malformed("line %q", l)
		}
		total += v
	}
	return total, nil
}

func TestNewRegistry(t *testing.T) {
	reg, err := puzzle.NewRegistry(
		puzzle.Day{Number: 3, Title: "c", Solver: lineCounter{}},
		puzzle.Day{Number: 1, Title: "a", Solver: lineCounter{}},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, reg.Days())
	assert.Equal(t, 2, reg.Len())

	d, err := reg.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "c", d.Title)

	_, err = reg.Lookup(2)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestNewRegistry_Invalid(t *testing.T) {
	_, err := puzzle.NewRegistry(
		puzzle.Day{Number: 1, Solver: lineCounter{}},
		puzzle.Day{Number: 1, Solver: lineCounter{}},
	)
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)

	_, err = puzzle.NewRegistry(puzzle.Day{Number: 0, Solver: lineCounter{}})
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, err = puzzle.NewRegistry(puzzle.Day{Number: 4})
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestLinesAndBlocks(t *testing.T) {
	assert.Nil(t, puzzle.Lines(" \n\n"))
	assert.Equal(t, []string{"a", "b"}, puzzle.Lines("\r\na\r\nb\r\n"))
	assert.Equal(t, []string{"a\nb", "c"}, puzzle.Blocks("\na\nb\n\n\n\nc\n"))
	assert.Nil(t, puzzle.Blocks(""))

	err := puzzle.Malformed("bad %d", 7)
	assert.ErrorIs(t, err, puzzle.ErrParse)
	assert.Contains(t, err.Error(), "bad 7")
}

func newRunner(t *testing.T, files fstest.MapFS) (*puzzle.Runner, *logtest.Hook) {
	t.Helper()
	reg, err := puzzle.NewRegistry(
		puzzle.Day{Number: 1, Title: "count", Solver: lineCounter{}},
		puzzle.Day{Number: 2, Title: "sum", Solver: lineCounter{}},
	)
	require.NoError(t, err)
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return puzzle.NewRunner(reg, puzzle.WithFS(files), puzzle.WithLogger(logger)), hook
}

func TestRunner_Run(t *testing.T) {
	r, hook := newRunner(t, fstest.MapFS{
		"day1.txt": {Data: []byte("1\n2\n3\n")},
	})

	answers, err := r.Run(1)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, 1, answers[0].Part)
	assert.Equal(t, 3, answers[0].Value)
	assert.Equal(t, 2, answers[1].Part)
	assert.Equal(t, 6, answers[1].Value)

	var solved int
	for _, e := range hook.AllEntries() {
		if e.Message == "solved" {
			solved++
			assert.Equal(t, 1, e.Data["day"])
			assert.Contains(t, e.Data, "answer")
		}
	}
	assert.Equal(t, 2, solved)
}

func TestRunner_Errors(t *testing.T) {
	r, hook := newRunner(t, fstest.MapFS{
		"day2.txt": {Data: []byte("1\nx\n")},
	})

	_, err := r.Run(9)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, err = r.Run(1)
	assert.ErrorIs(t, err, puzzle.ErrNoInput)

	answers, err := r.Run(2)
	assert.ErrorIs(t, err, puzzle.ErrParse)
	assert.True(t, strings.Contains(err.Error(), "part 2"), err.Error())
	require.Len(t, answers, 1, "part 1 still answered")
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRunner_RunAll(t *testing.T) {
	r, _ := newRunner(t, fstest.MapFS{
		"day1.txt": {Data: []byte("4\n5\n")},
		"day2.txt": {Data: []byte("10\n")},
	})

	answers, err := r.RunAll(nil)
	require.NoError(t, err)
	require.Len(t, answers, 4)
	assert.Equal(t, []int{1, 1, 2, 2}, []int{answers[0].Day, answers[1].Day, answers[2].Day, answers[3].Day})
	assert.Equal(t, 9, answers[1].Value)
	assert.Equal(t, 10, answers[3].Value)

	answers, err = r.RunAll([]int{2, 7})
	assert.True(t, errors.Is(err, puzzle.ErrUnknownDay))
	assert.Len(t, answers, 2)
}
