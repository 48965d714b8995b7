package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil grid was passed to Search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrOutOfBounds indicates a start or destination outside the grid.
	ErrOutOfBounds = fmt.Errorf("crucible: %w", grid2d.ErrOutOfBounds)

	// ErrBadRun indicates an invalid MinRun/MaxRun combination.
	ErrBadRun = errors.New("crucible: run limits must satisfy 1 <= MinRun <= MaxRun <= 255")

	// ErrUnreachable indicates the frontier emptied before the destination
	// could be finalized.
	ErrUnreachable = errors.New("crucible: destination unreachable")
)

// maxRunLimit keeps History.Run within a byte.
const maxRunLimit = 255

// History is the part of the walker's recent moves that decides what it may
// do next: the last bearing taken and the length of the trailing run of
// identical moves. Run == 0 marks the start state, before any move.
type History struct {
	Heading grid2d.Bearing
	Run     uint8
}

// Started reports whether at least one move has been made.
func (h History) Started() bool {
	return h.Run > 0
}

// Options configures Search.
//
// MaxRun     – most consecutive moves allowed along one bearing. Default 3.
// MinRun     – fewest consecutive moves before turning or stopping. Default 1.
// ReturnPath – if true, Result.Path holds the cells of one optimal route.
type Options struct {
	MaxRun     int
	MinRun     int
	ReturnPath bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the classic crucible rules:
// at most three moves in a row, no minimum, no path reconstruction.
func DefaultOptions() Options {
	return Options{
		MaxRun:     3,
		MinRun:     1,
		ReturnPath: false,
	}
}

// WithMaxRun sets the most consecutive moves allowed along one bearing.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.MaxRun = n
	}
}

// WithMinRun sets the fewest consecutive moves along one bearing before the
// walker may turn or stop.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.MinRun = n
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// validate checks run limits against each other.
func (o Options) validate() error {
	if o.MaxRun < 1 || o.MinRun < 1 || o.MinRun > o.MaxRun || o.MaxRun > maxRunLimit {
		return fmt.Errorf("%w: got MinRun=%d MaxRun=%d", ErrBadRun, o.MinRun, o.MaxRun)
	}
	return nil
}

// Result is the outcome of a successful Search.
//
// Cost     – minimum accumulated cost from start to destination.
// Path     – cells of one optimal route including start and destination;
//
//	nil unless WithReturnPath was given.
//
// Expanded – number of states finalized before the destination was reached.
type Result struct {
	Cost     int
	Path     []grid2d.Point
	Expanded int
}
