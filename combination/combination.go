package combination

import "sort"

// Enumerate returns every combination of weights summing exactly to target,
// in non-decreasing lexicographic order. Each combination is itself sorted
// ascending.
//
// Algorithm Outline:
//  1. If target ≤ 0 or weights is empty, return an empty result.
//  2. Reject weights ≤ 0 (ErrNonPositiveWeight).
//  3. Sort a private copy ascending; in reuse mode drop duplicate values.
//  4. DFS(start, remaining):
//     remaining == 0  → emit a copy of the partial buffer
//     for i := start..: if w[i] > remaining → break (all later are larger)
//     push w[i]; DFS(i, remaining-w[i]) (or i+1 without reuse); pop
//
// The returned slice is never nil.
func Enumerate(weights []int, target int, opts ...Option) ([][]int, error) {
	out := make([][]int, 0)
	err := Visit(weights, target, func(combo []int) bool {
		c := make([]int, len(combo))
		copy(c, combo)
		out = append(out, c)

		return true
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of combinations Enumerate would produce.
func Count(weights []int, target int, opts ...Option) (int, error) {
	var n int
	err := Visit(weights, target, func([]int) bool {
		n++

		return true
	}, opts...)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// Visit runs the search and calls fn for each combination in lexicographic order.
// The slice passed to fn is the live partial buffer: it is only valid during the
// call and must be copied if retained. Returning false from fn stops the search.
//
// Errors:
//   - ErrNonPositiveWeight if any weight ≤ 0 (only checked when target > 0
//     and weights is non-empty).
func Visit(weights []int, target int, fn func(combo []int) bool, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if target <= 0 || len(weights) == 0 {
		return nil
	}

	var i int
	for i = range weights {
		if weights[i] <= 0 {
			return ErrNonPositiveWeight
		}
	}
	if fn == nil {
		return nil
	}

	sorted := make([]int, len(weights))
	copy(sorted, weights)
	sort.Ints(sorted)
	if cfg.Reuse {
		sorted = dedupe(sorted)
	}

	s := &searcher{
		w:       sorted,
		opts:    cfg,
		visit:   fn,
		partial: make([]int, 0, depthHint(sorted, target, cfg)),
	}
	s.dfs(0, target)

	return nil
}

// searcher carries the state of one enumeration run.
type searcher struct {
	w       []int // sorted candidates
	opts    Options
	visit   func([]int) bool
	partial []int // current combination, push before recursing, pop after
	emitted int
	stopped bool
}

// dfs extends the partial combination with candidates at index ≥ start.
func (s *searcher) dfs(start, remaining int) {
	if remaining == 0 {
		s.emitted++
		if !s.visit(s.partial) || (s.opts.Limit > 0 && s.emitted >= s.opts.Limit) {
			s.stopped = true
		}

		return
	}
	if s.opts.MaxLength > 0 && len(s.partial) >= s.opts.MaxLength {
		return
	}

	var (
		i    int
		cand int
		next int
	)
	for i = start; i < len(s.w) && !s.stopped; i++ {
		cand = s.w[i]
		if cand > remaining {
			break // sorted: every later candidate overshoots too
		}
		next = i
		if !s.opts.Reuse {
			if i > start && cand == s.w[i-1] {
				continue // same value at the same depth yields the same subtree
			}
			next = i + 1
		}
		s.partial = append(s.partial, cand)
		s.dfs(next, remaining-cand)
		s.partial = s.partial[:len(s.partial)-1]
	}
}

// maxDepthHint caps the initial partial-buffer capacity; deeper searches grow it.
const maxDepthHint = 64

// depthHint bounds the recursion depth for the buffer's initial capacity:
// target/min(w), at most len(w) without reuse, at most MaxLength when set.
func depthHint(sorted []int, target int, cfg Options) int {
	d := target / sorted[0]
	if !cfg.Reuse && len(sorted) < d {
		d = len(sorted)
	}
	if cfg.MaxLength > 0 && cfg.MaxLength < d {
		d = cfg.MaxLength
	}
	if d > maxDepthHint {
		d = maxDepthHint
	}

	return d
}

// dedupe removes adjacent equal values from a sorted slice in place.
func dedupe(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	j := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[j-1] {
			sorted[j] = sorted[i]
			j++
		}
	}

	return sorted[:j]
}
