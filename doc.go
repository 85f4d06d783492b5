// Package lvexact is a small library of exact combinatorial solvers: every
// answer is optimal or complete, never approximate.
//
// 🚀 What is inside?
//
//	combination/  — enumerate every multiset of weights summing to a target
//	                (backtracking with sorted, break-on-overflow pruning)
//	editdistance/ — Levenshtein distance over any comparable element type,
//	                full table or two rows, plus edit-script recovery
//	knapsack/     — 0/1 knapsack, 2-D table and 1-D rolling array that
//	                always agree, plus item recovery
//
// ✨ Shared guarantees:
//
//   - Pure functions: each call owns its buffers; concurrent callers need no locks
//   - No I/O, no globals, no floating point
//   - Explicit bounds: every table and stack size is documented per function
//
// Error policy differs on purpose. combination and editdistance are total over
// degenerate input (empty weights, target ≤ 0, empty sequences give an empty
// or trivial result). knapsack rejects malformed instances with sentinel
// errors checked via errors.Is.
//
// The lvexact command (cmd/lvexact) exposes the three solvers on the command line:
//
//	lvexact combine --weights 2,3,6,7 --target 7
//	lvexact distance horse ros
//	lvexact knapsack --weights 10,20,30 --values 60,100,120 --capacity 50
package lvexact
