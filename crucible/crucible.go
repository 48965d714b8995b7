package crucible

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aoc2023/grid2d"
)

// Search returns the minimum cost of moving from start to dest across g,
// where entering a cell costs the cell's value and the walker obeys the run
// limits configured by opts.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Run limits must be consistent (ErrBadRun).
//  3. start and dest must lie inside g (ErrOutOfBounds).
//
// If no legal route exists, Search returns ErrUnreachable; it never loops
// forever because the state space is finite and each state is finalized once.
//
// Complexity: O(S log S) time, O(S) memory, S = W×H×4×MaxRun.
func Search(g *grid2d.Grid[int], start, dest grid2d.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(dest) {
		return Result{}, fmt.Errorf("%w: destination %v", ErrOutOfBounds, dest)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dest:    dest,
		visited: make(map[stateKey]int, g.Width*g.Height*4),
		best:    make(map[stateKey]int, g.Width*g.Height*4),
	}
	if cfg.ReturnPath {
		r.prev = make(map[stateKey]stateKey, g.Width*g.Height*4)
	}

	r.init(start)
	final, ok := r.process()
	if !ok {
		return Result{}, fmt.Errorf("%w: %v -> %v after %d states", ErrUnreachable, start, dest, r.expanded)
	}

	res := Result{Cost: final.cost, Expanded: r.expanded}
	if cfg.ReturnPath {
		res.Path = r.path(final.key)
	}
	return res, nil
}

// stateKey identifies a search node. Cost is deliberately absent: a key is
// finalized once, at its cheapest cost.
type stateKey struct {
	cell grid2d.Point
	hist History
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *grid2d.Grid[int]     // read-only cost grid
	options  Options               // validated run limits
	dest     grid2d.Point          // destination cell
	visited  map[stateKey]int      // finalized key → cost
	best     map[stateKey]int      // cheapest cost pushed so far per key
	prev     map[stateKey]stateKey // finalized key → predecessor key; nil unless ReturnPath
	pq       statePQ               // frontier
	expanded int                   // finalized state count
}

// init pushes the zero-cost start state.
func (r *runner) init(start grid2d.Point) {
	heap.Init(&r.pq)
	k := stateKey{cell: start}
	r.best[k] = 0
	heap.Push(&r.pq, &stateItem{key: k, cost: 0, root: true})
}

// process pops states in frontier order until the destination is finalized
// or the frontier is empty.
func (r *runner) process() (*stateItem, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// Stale entry: a cheaper or equal path already finalized this key.
		if _, done := r.visited[item.key]; done {
			continue
		}
		r.visited[item.key] = item.cost
		r.expanded++
		if r.prev != nil && !item.root {
			r.prev[item.key] = item.parent
		}

		if item.key.cell == r.dest && r.canStop(item.key.hist) {
			return item, true
		}
		r.relax(item)
	}
	return nil, false
}

// canStop reports whether the walker may end its journey with history h.
func (r *runner) canStop(h History) bool {
	return !h.Started() || int(h.Run) >= r.options.MinRun
}

// next returns the history after moving along b from h, or false if the move
// breaks a run limit or reverses the last bearing.
func (r *runner) next(h History, b grid2d.Bearing) (History, bool) {
	if !h.Started() {
		return History{Heading: b, Run: 1}, true
	}
	switch {
	case b == h.Heading.Reverse():
		return History{}, false
	case b == h.Heading:
		if int(h.Run) >= r.options.MaxRun {
			return History{}, false
		}
		return History{Heading: b, Run: h.Run + 1}, true
	case int(h.Run) < r.options.MinRun:
		return History{}, false
	default:
		return History{Heading: b, Run: 1}, true
	}
}

// relax pushes every legal successor of item whose cost improves on what
// the frontier already holds for that key.
func (r *runner) relax(item *stateItem) {
	for _, b := range grid2d.Bearings {
		h, ok := r.next(item.key.hist, b)
		if !ok {
			continue
		}
		cell, ok := r.g.Neighbor(item.key.cell, b)
		if !ok {
			continue
		}
		step, _ := r.g.Get(cell)
		k := stateKey{cell: cell, hist: h}
		if _, done := r.visited[k]; done {
			continue
		}
		cost := item.cost + step
		if prior, seen := r.best[k]; seen && prior <= cost {
			continue
		}
		r.best[k] = cost
		heap.Push(&r.pq, &stateItem{key: k, cost: cost, parent: item.key})
	}
}

// path walks predecessor links back from the final key to the start.
func (r *runner) path(final stateKey) []grid2d.Point {
	var cells []grid2d.Point
	k := final
	for {
		cells = append(cells, k.cell)
		p, ok := r.prev[k]
		if !ok {
			break
		}
		k = p
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// stateItem is a frontier entry.
type stateItem struct {
	key    stateKey
	cost   int
	parent stateKey // key this entry was relaxed from
	root   bool     // true only for the start entry
}

// less orders entries by cost, then cell (X, Y), then history
// (heading, run). The full order makes the search reproducible.
func (a *stateItem) less(b *stateItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.key.cell.X != b.key.cell.X {
		return a.key.cell.X < b.key.cell.X
	}
	if a.key.cell.Y != b.key.cell.Y {
		return a.key.cell.Y < b.key.cell.Y
	}
	if a.key.hist.Heading != b.key.hist.Heading {
		return a.key.hist.Heading < b.key.hist.Heading
	}
	return a.key.hist.Run < b.key.hist.Run
}

// statePQ is a min-heap of *stateItem under stateItem.less, with lazy
// decrease-key: superseded entries stay in the heap and are skipped on pop.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].less(pq[j]) }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
