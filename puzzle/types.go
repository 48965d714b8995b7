package puzzle

import (
	"errors"
	"time"
)

// Sentinel errors for registration, parsing and running.
var (
	// ErrParse indicates input text a solver could not understand.
	ErrParse = errors.New("puzzle: malformed input")

	// ErrUnknownDay indicates a day number that is not registered.
	ErrUnknownDay = errors.New("puzzle: day not registered")

	// ErrDuplicateDay indicates two registrations for one day number.
	ErrDuplicateDay = errors.New("puzzle: day registered twice")

	// ErrNoInput indicates the day's input file could not be read.
	ErrNoInput = errors.New("puzzle: input not available")
)

// Solver answers both parts of one day's puzzle.
// Implementations must be pure: no I/O, no shared mutable state.
type Solver interface {
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Day binds a Solver to its calendar number and title.
type Day struct {
	Number int
	Title  string
	Solver Solver
}

// Answer is one solved part.
type Answer struct {
	Day     int
	Part    int
	Value   int
	Elapsed time.Duration
}
