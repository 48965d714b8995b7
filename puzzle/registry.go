package puzzle

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Registry is an immutable set of days keyed by number.
type Registry struct {
	days map[int]Day
}

// NewRegistry builds a Registry from days.
// Returns ErrDuplicateDay if two entries share a number, and ErrUnknownDay
// for entries with a non-positive number or a nil Solver.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		if d.Number <= 0 || d.Solver == nil {
			return nil, fmt.Errorf("%w: invalid registration for day %d", ErrUnknownDay, d.Number)
		}
		if _, dup := r.days[d.Number]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, d.Number)
		}
		r.days[d.Number] = d
	}
	return r, nil
}

// Lookup returns the day registered under n.
func (r *Registry) Lookup(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	nums := maps.Keys(r.days)
	slices.Sort(nums)
	return nums
}

// Len returns the number of registered days.
func (r *Registry) Len() int {
	return len(r.days)
}
