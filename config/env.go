package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/aoc2023/numeric"
)

// Environment variables that override file settings.
const (
	EnvInputDir  = "AOC_INPUT_DIR"
	EnvDays      = "AOC_DAYS" // comma- or space-separated day numbers
	EnvLogLevel  = "AOC_LOG_LEVEL"
	EnvLogFormat = "AOC_LOG_FORMAT"
)

// LoadDotEnv adds the variables of a .env file at path to the process
// environment without replacing variables that are already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: reading %s: %w", path, err)
}

// ApplyEnv returns c with every AOC_* variable found by lookup applied on
// top, then validated. Pass os.LookupEnv for the process environment.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvInputDir); ok {
		c.InputDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvDays); ok {
		days, err := numeric.Ints(strings.ReplaceAll(v, ",", " "))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDays, err)
		}
		c.Days = days
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
