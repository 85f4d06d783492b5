package knapsack

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates weights and values have different lengths.
	ErrLengthMismatch = errors.New("knapsack: weights and values length mismatch")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNonPositiveWeight indicates an item weight of zero or below.
	ErrNonPositiveWeight = errors.New("knapsack: item weight must be positive")

	// ErrUnknownStrategy indicates a Strategy value outside Table/Rolling.
	ErrUnknownStrategy = errors.New("knapsack: unknown strategy")
)

// Strategy selects the DP layout used by MaxValue.
type Strategy int

const (
	// Table keeps the full (n+1)x(C+1) table.
	Table Strategy = iota

	// Rolling keeps one row of C+1 cells, updated right to left.
	Rolling
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Table:
		return "table"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "table" or "rolling" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "table":
		return Table, nil
	case "rolling":
		return Rolling, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures MaxValue.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Strategy is the DP layout; Table by default.
	Strategy Strategy
}

// DefaultOptions returns Options using the Table strategy.
func DefaultOptions() Options {
	return Options{Strategy: Table}
}

// WithStrategy returns an Option selecting the DP layout.
// Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s != Table && s != Rolling {
		panic("knapsack: WithStrategy(unknown strategy)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// Selection is an optimal packing recovered by Select.
type Selection struct {
	// Value is the total value of the chosen items (the optimum).
	Value int

	// Weight is the total weight of the chosen items, ≤ capacity.
	Weight int

	// Items holds the chosen item indexes in ascending order.
	Items []int
}
