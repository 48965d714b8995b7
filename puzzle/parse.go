package puzzle

import (
	"fmt"
	"strings"
)

// Malformed returns an ErrParse-wrapped error with a formatted detail.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// normalize strips carriage returns and surrounding blank space.
func normalize(input string) string {
	return strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
}

// Lines splits input into lines after trimming surrounding blank space.
// Empty input yields no lines.
func Lines(input string) []string {
	input = normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into paragraphs separated by one or more blank lines.
func Blocks(input string) []string {
	input = normalize(input)
	if input == "" {
		return nil
	}
	var out []string
	for _, b := range strings.Split(input, "\n\n") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
