package knapsack

// SolveRolling returns the maximum value using a single row of capacity+1 cells.
//
// For each item in input order, w runs from capacity down to the item weight:
//
//	R[w] = max(R[w], value + R[w-weight])
//
// Descending order is mandatory: R[w-weight] is still the previous item's
// state, so each item contributes at most once.
//
// The row is clamped to Σweights+1 cells.
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNonPositiveWeight.
//
// Complexity: O(n·C) time, O(C) memory.
func SolveRolling(weights, values []int, capacity int) (int, error) {
	if err := validate(weights, values, capacity); err != nil {
		return 0, err
	}

	capacity = workingCapacity(weights, capacity)
	r := make([]int, capacity+1)
	var i, w, wt, val int
	for i = range weights {
		wt, val = weights[i], values[i]
		for w = capacity; w >= wt; w-- {
			if val+r[w-wt] > r[w] {
				r[w] = val + r[w-wt]
			}
		}
	}

	return r[capacity], nil
}
