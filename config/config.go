// Package config loads the command-line runner's settings from an optional
// YAML file.
//
// Example file:
//
//	input_dir: inputs
//	days: [1, 17]
//	log_level: debug
//	log_format: json
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration problems.
var (
	// ErrInvalid indicates a config value outside its allowed set.
	ErrInvalid = errors.New("config: invalid value")

	// ErrDecode indicates a config file that is not valid YAML.
	ErrDecode = errors.New("config: cannot decode")
)

// Log formats accepted by LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Calendar bounds for Days.
const (
	FirstDay = 1
	LastDay  = 25
)

// Config holds runner settings.
type Config struct {
	// InputDir is the directory holding dayN.txt files.
	InputDir string `yaml:"input_dir"`

	// Days selects the days to run; empty means every registered day.
	Days []int `yaml:"days"`

	// LogLevel is any level logrus.ParseLevel accepts.
	LogLevel string `yaml:"log_level"`

	// LogFormat is FormatText or FormatJSON.
	LogFormat string `yaml:"log_format"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		InputDir:  "inputs",
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// Load reads the YAML file at path over Default. A missing file is not an
// error. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(body)
}

// Parse decodes body over Default and validates the result.
func Parse(body []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log settings and day numbers.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	for _, d := range c.Days {
		if d < FirstDay || d > LastDay {
			return fmt.Errorf("%w: day %d outside %d..%d", ErrInvalid, d, FirstDay, LastDay)
		}
	}
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalid)
	}
	return nil
}

// NewLogger builds a logrus logger writing to w with the configured level
// and format. The config must already be valid.
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}
