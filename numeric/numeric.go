// Package numeric holds the small integer helpers that puzzle solutions keep
// reaching for: absolute differences, GCD/LCM folds, sums and products, and
// whitespace-separated integer parsing.
package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNotInteger indicates a field that does not parse as a base-10 integer.
var ErrNotInteger = errors.New("numeric: field is not an integer")

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	return Abs(a - b)
}

// GCD returns the greatest common divisor of a and b (always non-negative).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of values. It returns 0 for an
// empty list or when any value is 0.
func LCM[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	acc := values[0]
	for _, v := range values[1:] {
		if acc == 0 || v == 0 {
			return 0
		}
		acc = acc / GCD(acc, v) * v
	}
	if acc < 0 {
		return -acc
	}
	return acc
}

// Sum adds up values.
func Sum[T constraints.Integer | constraints.Float](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Product multiplies values together. The product of nothing is 1.
func Product[T constraints.Integer | constraints.Float](values ...T) T {
	total := T(1)
	for _, v := range values {
		total *= v
	}
	return total
}

// Ints parses every whitespace-separated field of s as an int.
// Returns ErrNotInteger (wrapped with the field) on the first failure.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotInteger, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// Atoi is strconv.Atoi after trimming surrounding space, reporting
// ErrNotInteger on failure.
func Atoi(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	return v, nil
}
