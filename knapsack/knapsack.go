package knapsack

// MaxValue returns the best total value of items fitting in capacity, using
// the strategy chosen by opts (Table by default). Both strategies return the
// same value for every valid input.
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNonPositiveWeight,
// ErrUnknownStrategy.
func MaxValue(weights, values []int, capacity int, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Strategy {
	case Table:
		return SolveTable(weights, values, capacity)
	case Rolling:
		return SolveRolling(weights, values, capacity)
	default:
		return 0, ErrUnknownStrategy
	}
}

// Select solves the instance with the full table and walks it back from
// (n, capacity) to recover one optimal set of items: item i-1 was taken
// exactly when D[i][w] != D[i-1][w].
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNonPositiveWeight.
//
// Complexity: O(n·C) time and memory.
func Select(weights, values []int, capacity int) (Selection, error) {
	if err := validate(weights, values, capacity); err != nil {
		return Selection{}, err
	}
	capacity = workingCapacity(weights, capacity)
	d := fillTable(weights, values, capacity)

	n := len(weights)
	sel := Selection{Value: d[n][capacity], Items: make([]int, 0, n)}
	w := capacity
	for i := n; i > 0; i-- {
		if d[i][w] != d[i-1][w] {
			sel.Items = append(sel.Items, i-1)
			sel.Weight += weights[i-1]
			w -= weights[i-1]
		}
	}

	// collected from the last item backwards
	for l, r := 0, len(sel.Items)-1; l < r; l, r = l+1, r-1 {
		sel.Items[l], sel.Items[r] = sel.Items[r], sel.Items[l]
	}

	return sel, nil
}
