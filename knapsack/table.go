package knapsack

// SolveTable returns the maximum value using the full 2-D table.
//
// Algorithm Outline:
//  1. Allocate D of (n+1)x(C+1), all zeros (D[0][w] = 0).
//  2. For item i = 1..n with weight wt and value val, for w = 0..C:
//     D[i][w] = D[i-1][w]                               if wt > w
//     D[i][w] = max(D[i-1][w], val + D[i-1][w-wt])       otherwise
//  3. Return D[n][C].
//
// C is clamped to Σweights before allocating.
//
// Errors: ErrLengthMismatch, ErrNegativeCapacity, ErrNonPositiveWeight.
//
// Complexity: O(n·C) time and memory.
func SolveTable(weights, values []int, capacity int) (int, error) {
	if err := validate(weights, values, capacity); err != nil {
		return 0, err
	}
	capacity = workingCapacity(weights, capacity)
	d := fillTable(weights, values, capacity)

	return d[len(weights)][capacity], nil
}

// fillTable builds D for validated input. Rows share one backing array.
func fillTable(weights, values []int, capacity int) [][]int {
	n, c := len(weights), capacity+1
	buf := make([]int, (n+1)*c)
	d := make([][]int, n+1)
	var i, w int
	for i = range d {
		d[i] = buf[i*c : (i+1)*c]
	}

	var wt, val int
	for i = 1; i <= n; i++ {
		wt, val = weights[i-1], values[i-1]
		for w = 0; w <= capacity; w++ {
			d[i][w] = d[i-1][w]
			if wt <= w && val+d[i-1][w-wt] > d[i][w] {
				d[i][w] = val + d[i-1][w-wt]
			}
		}
	}

	return d
}
