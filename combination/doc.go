// Package combination enumerates every multiset of weights that sums exactly
// to a target, using depth-first backtracking with monotonic pruning.
//
// 🚀 What is it?
//
//	Given positive weights W and a target T, find every multiset of values
//	drawn from W (reuse allowed) whose sum is T. This is the enumeration form
//	of the unbounded subset-sum problem, a.k.a. "combination sum".
//
// ✨ Key features:
//   - exact and complete: every combination is reported exactly once
//   - lexicographic output order (weights are sorted once up front)
//   - break-on-overflow pruning: the first candidate larger than the
//     remainder ends the whole loop, not just the current iteration
//   - streaming via Visit, counting via Count, collecting via Enumerate
//   - optional no-reuse mode, result limit and length cap
//
// ⚙️ Usage:
//
//	combos, err := combination.Enumerate([]int{2, 3, 6, 7}, 7)
//	// combos == [][]int{{2, 2, 3}, {7}}
//
//	n, err := combination.Count(coins, 100, combination.WithMaxLength(5))
//
// Degenerate inputs (no weights, target ≤ 0) produce an empty result, never
// an error. Non-positive weights are rejected with ErrNonPositiveWeight:
// a zero weight could be reused forever.
//
// Performance:
//
//   - Time:   exponential in the worst case (number of compositions of T)
//   - Memory: O(T/min(W)) for the recursion stack and partial buffer
package combination
