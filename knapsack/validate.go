package knapsack

import "fmt"

// validate checks that weights/values/capacity describe a knapsack instance.
//
// Priority: length mismatch, then capacity, then per-item weights.
// nil and empty slices are both the empty item set.
//
// Complexity: O(n).
func validate(weights, values []int, capacity int) error {
	if len(weights) != len(values) {
		return fmt.Errorf("%w: len(weights)=%d, len(values)=%d", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}
	for i, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w: weights[%d]=%d", ErrNonPositiveWeight, i, w)
		}
	}

	return nil
}

// workingCapacity returns min(capacity, Σweights) for validated input.
// Every item fits once the capacity reaches Σweights, so the optimum is the
// same and the tables never grow past the total item weight.
//
// Complexity: O(n).
func workingCapacity(weights []int, capacity int) int {
	sum := 0
	for _, w := range weights {
		if w >= capacity-sum {
			return capacity
		}
		sum += w
	}

	return sum
}
