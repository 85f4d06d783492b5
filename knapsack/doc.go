// Package knapsack solves the 0/1 knapsack problem exactly: choose a subset of
// items, each at most once, maximizing total value under a weight capacity.
//
// Two interchangeable strategies are provided and always agree:
//
//   - Table   — 2-D table D[i][w] over (items considered, capacity).
//     Memory O(n·C). Supports item recovery (Select).
//   - Rolling — 1-D array R[w] overwritten once per item, iterating w from
//     capacity DOWN to the item weight. Memory O(C).
//
// Invariant of the rolling form: while item i is processed, R[w-wt] still holds
// the optimum over items 0..i-1. An ascending loop breaks it and turns the
// solver into unbounded knapsack.
//
// ⚙️ Usage:
//
//	best, err := knapsack.MaxValue(weights, values, 50)
//	best, err = knapsack.MaxValue(weights, values, 50, knapsack.WithStrategy(knapsack.Rolling))
//
//	sel, err := knapsack.Select(weights, values, 50)
//	// sel.Items are the chosen indexes, sel.Value == best
//
// Unlike the sibling solvers this package validates its input: mismatched
// slice lengths, a negative capacity or an item weight ≤ 0 cannot describe
// a knapsack instance and are reported as errors (ErrLengthMismatch,
// ErrNegativeCapacity, ErrNonPositiveWeight), never as a value of 0.
// A zero capacity or an empty item set is valid and yields 0.
//
// Performance:
//
//   - Time:   O(n·C) for both strategies
//   - Memory: O(n·C) (Table, Select) or O(C) (Rolling), with C clamped to Σweights
package knapsack
