// Command aoc2023 solves the configured days against their input files and
// prints the answers.
//
// Usage:
//
//	aoc2023 [-day N] [-config aoc.yaml]
//
// Inputs are read from <input_dir>/dayN.txt. AOC_* variables, from the
// environment or a .env file in the working directory, override the config
// file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/aoc2023/config"
	"github.com/katalvlaran/aoc2023/days"
	"github.com/katalvlaran/aoc2023/puzzle"
)

const dotEnv = ".env"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("aoc2023", flag.ContinueOnError)
	fset.SetOutput(stderr)
	day := fset.Int("day", 0, "solve only this day (0 = configured days, or all)")
	cfgPath := fset.String("config", "aoc.yaml", "path to the YAML config file")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err == nil {
		err = config.LoadDotEnv(dotEnv)
	}
	if err == nil {
		cfg, err = cfg.ApplyEnv(os.LookupEnv)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := cfg.NewLogger(stderr)

	reg, err := days.Registry()
	if err != nil {
		log.WithError(err).Error("building registry")
		return 1
	}
	runner := puzzle.NewRunner(reg,
		puzzle.WithInputDir(cfg.InputDir),
		puzzle.WithLogger(log),
	)

	selected := cfg.Days
	if *day != 0 {
		selected = []int{*day}
	}
	answers, err := runner.RunAll(selected)
	printAnswers(stdout, answers)
	if err != nil {
		log.WithError(err).Error("run aborted")
		return 1
	}
	return 0
}

func printAnswers(w io.Writer, answers []puzzle.Answer) {
	last := 0
	for _, a := range answers {
		if a.Day != last {
			fmt.Fprintf(w, "# Day %d\n", a.Day)
			last = a.Day
		}
		fmt.Fprintf(w, "Part %d: %d\n", a.Part, a.Value)
	}
}
