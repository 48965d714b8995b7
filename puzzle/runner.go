package puzzle

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// RunnerOptions configures a Runner.
//
// FS     – where dayN.txt files are read from. Default os.DirFS(".").
// Logger – destination for progress and answers. Default discards output.
type RunnerOptions struct {
	FS     fs.FS
	Logger logrus.FieldLogger
}

// RunnerOption represents a functional option for configuring a Runner.
type RunnerOption func(*RunnerOptions)

// WithInputDir reads inputs from dir on the local filesystem.
func WithInputDir(dir string) RunnerOption {
	return func(o *RunnerOptions) {
		o.FS = os.DirFS(dir)
	}
}

// WithFS reads inputs from fsys.
func WithFS(fsys fs.FS) RunnerOption {
	return func(o *RunnerOptions) {
		if fsys != nil {
			o.FS = fsys
		}
	}
}

// WithLogger routes runner logs to l.
func WithLogger(l logrus.FieldLogger) RunnerOption {
	return func(o *RunnerOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultRunnerOptions reads from the working directory and logs nothing.
func DefaultRunnerOptions() RunnerOptions {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return RunnerOptions{
		FS:     os.DirFS("."),
		Logger: silent,
	}
}

// Runner solves registered days against input files.
type Runner struct {
	reg  *Registry
	opts RunnerOptions
}

// NewRunner returns a Runner over reg.
func NewRunner(reg *Registry, opts ...RunnerOption) *Runner {
	o := DefaultRunnerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{reg: reg, opts: o}
}

// InputName is the conventional input file name for day n.
func InputName(n int) string {
	return fmt.Sprintf("day%d.txt", n)
}

// Run solves both parts of day n.
// Returns ErrUnknownDay, ErrNoInput, or the solver's own error wrapped
// with the day and part.
func (r *Runner) Run(n int) ([]Answer, error) {
	day, err := r.reg.Lookup(n)
	if err != nil {
		return nil, err
	}
	log := r.opts.Logger.WithFields(logrus.Fields{"day": n, "title": day.Title})

	raw, err := fs.ReadFile(r.opts.FS, InputName(n))
	if err != nil {
		return nil, fmt.Errorf("%w: day %d: %v", ErrNoInput, n, err)
	}
	input := string(raw)
	log.WithField("bytes", len(raw)).Debug("input loaded")

	parts := []func(string) (int, error){day.Solver.Part1, day.Solver.Part2}
	answers := make([]Answer, 0, len(parts))
	for i, solve := range parts {
		part := i + 1
		start := time.Now()
		v, err := solve(input)
		elapsed := time.Since(start)
		if err != nil {
			log.WithField("part", part).WithError(err).Error("part failed")
			return answers, fmt.Errorf("puzzle: day %d part %d: %w", n, part, err)
		}
		log.WithFields(logrus.Fields{
			"part":    part,
			"answer":  v,
			"elapsed": elapsed.Round(time.Microsecond),
		}).Info("solved")
		answers = append(answers, Answer{Day: n, Part: part, Value: v, Elapsed: elapsed})
	}
	return answers, nil
}

// RunAll solves each day in days, in the given order; an empty list means
// every registered day. It stops at the first failure and returns the
// answers collected so far.
func (r *Runner) RunAll(days []int) ([]Answer, error) {
	if len(days) == 0 {
		days = r.reg.Days()
	}
	var all []Answer
	for _, n := range days {
		answers, err := r.Run(n)
		all = append(all, answers...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}
