package knapsack_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvexact/knapsack"
)

type solver func(weights, values []int, capacity int) (int, error)

var solvers = map[string]solver{
	"table":   knapsack.SolveTable,
	"rolling": knapsack.SolveRolling,
	"maxvalue-default": func(w, v []int, c int) (int, error) {
		return knapsack.MaxValue(w, v, c)
	},
	"maxvalue-rolling": func(w, v []int, c int) (int, error) {
		return knapsack.MaxValue(w, v, c, knapsack.WithStrategy(knapsack.Rolling))
	},
	"select": func(w, v []int, c int) (int, error) {
		sel, err := knapsack.Select(w, v, c)
		return sel.Value, err
	},
}

func TestSolvers_Examples(t *testing.T) {
	cases := []struct {
		name     string
		weights  []int
		values   []int
		capacity int
		want     int
	}{
		{"classic", []int{10, 20, 30}, []int{60, 100, 120}, 50, 220},
		{"linear", []int{1, 2, 3, 4, 5}, []int{10, 20, 30, 40, 50}, 7, 70},
		{"zero capacity", []int{1, 2}, []int{5, 6}, 0, 0},
		{"empty items", []int{}, []int{}, 10, 0},
		{"nil items", nil, nil, 10, 0},
		{"nothing fits", []int{5, 6}, []int{1, 1}, 4, 0},
		{"single item once", []int{1}, []int{10}, 3, 10},
		{"zero capacity single item", []int{1}, []int{5}, 0, 0},
		{"capacity beyond total weight", []int{3, 4}, []int{5, 6}, 100, 11},
		{"max int capacity", []int{3, 4}, []int{5, 6}, math.MaxInt, 11},
		{"negative value skipped", []int{1, 1}, []int{-3, 4}, 2, 4},
	}
	for name, solve := range solvers {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, err := solve(tc.weights, tc.values, tc.capacity)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestSolvers_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		weights  []int
		values   []int
		capacity int
		want     error
	}{
		{"length mismatch", []int{1, 2}, []int{1}, 5, knapsack.ErrLengthMismatch},
		{"nil against non-empty", nil, []int{3}, 5, knapsack.ErrLengthMismatch},
		{"negative capacity", []int{1}, []int{1}, -1, knapsack.ErrNegativeCapacity},
		{"negative weight", []int{2, -1}, []int{1, 1}, 3, knapsack.ErrNonPositiveWeight},
		{"zero weight", []int{0}, []int{5}, 0, knapsack.ErrNonPositiveWeight},
		{"zero weight with room", []int{0, 5}, []int{7, 10}, 4, knapsack.ErrNonPositiveWeight},
		{"mismatch wins over capacity", []int{1}, nil, -5, knapsack.ErrLengthMismatch},
	}
	for name, solve := range solvers {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, err := solve(tc.weights, tc.values, tc.capacity)
				assert.ErrorIs(t, err, tc.want)
				assert.Zero(t, got)
			})
		}
	}
}

func TestSelect_RecoversItems(t *testing.T) {
	sel, err := knapsack.Select([]int{10, 20, 30}, []int{60, 100, 120}, 50)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Selection{Value: 220, Weight: 50, Items: []int{1, 2}}, sel)

	sel, err = knapsack.Select([]int{3, 4}, []int{5, 6}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Selection{Value: 11, Weight: 7, Items: []int{0, 1}}, sel)

	sel, err = knapsack.Select([]int{4}, []int{9}, 3)
	require.NoError(t, err)
	assert.Zero(t, sel.Value)
	assert.Empty(t, sel.Items)
}

// TestSolvers_Properties cross-checks both strategies against each other and
// against brute force, checks monotonicity in capacity, and validates Select.
func TestSolvers_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for iter := 0; iter < 150; iter++ {
		n := rng.Intn(9)
		weights := make([]int, n)
		values := make([]int, n)
		for i := 0; i < n; i++ {
			weights[i] = rng.Intn(12) + 1
			values[i] = rng.Intn(50)
		}

		prev := 0
		for capacity := 0; capacity <= 30; capacity++ {
			tv, err := knapsack.SolveTable(weights, values, capacity)
			require.NoError(t, err)
			rv, err := knapsack.SolveRolling(weights, values, capacity)
			require.NoError(t, err)

			assert.Equal(t, tv, rv, "w=%v v=%v C=%d", weights, values, capacity)
			assert.Equal(t, bruteForce(weights, values, capacity), tv, "w=%v v=%v C=%d", weights, values, capacity)
			assert.GreaterOrEqual(t, tv, prev, "value must not drop as capacity grows")
			prev = tv

			sel, err := knapsack.Select(weights, values, capacity)
			require.NoError(t, err)
			assert.Equal(t, tv, sel.Value)
			assert.LessOrEqual(t, sel.Weight, capacity)
			sumW, sumV := 0, 0
			for k, idx := range sel.Items {
				if k > 0 {
					assert.Less(t, sel.Items[k-1], idx, "items must be ascending and distinct")
				}
				sumW += weights[idx]
				sumV += values[idx]
			}
			assert.Equal(t, sel.Weight, sumW)
			assert.Equal(t, sel.Value, sumV)
		}
	}
}

// bruteForce tries every subset; only for small n.
func bruteForce(weights, values []int, capacity int) int {
	best := 0
	for mask := 0; mask < 1<<len(weights); mask++ {
		w, v := 0, 0
		for i := range weights {
			if mask&(1<<i) != 0 {
				w += weights[i]
				v += values[i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

func TestStrategy_ParseAndString(t *testing.T) {
	s, err := knapsack.ParseStrategy("rolling")
	require.NoError(t, err)
	assert.Equal(t, knapsack.Rolling, s)
	assert.Equal(t, "rolling", s.String())

	s, err = knapsack.ParseStrategy("table")
	require.NoError(t, err)
	assert.Equal(t, knapsack.Table, s)

	_, err = knapsack.ParseStrategy("greedy")
	assert.ErrorIs(t, err, knapsack.ErrUnknownStrategy)

	assert.Equal(t, "Strategy(7)", knapsack.Strategy(7).String())
}

func TestMaxValue_UnknownStrategy(t *testing.T) {
	assert.Panics(t, func() { knapsack.WithStrategy(knapsack.Strategy(3)) })

	force := func(o *knapsack.Options) { o.Strategy = knapsack.Strategy(3) }
	_, err := knapsack.MaxValue([]int{1}, []int{1}, 1, force)
	assert.ErrorIs(t, err, knapsack.ErrUnknownStrategy)
}
