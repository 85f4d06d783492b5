package combination

import "errors"

// ErrNonPositiveWeight is returned when a weight is zero or negative.
// Such a weight never reduces the remainder and the search would not terminate.
var ErrNonPositiveWeight = errors.New("combination: weights must be positive")

// Option configures an enumeration run.
type Option func(*Options)

// Options holds the enumeration parameters.
//
// Fields:
//   - Reuse     — a value may be picked any number of times (default true).
//     When false, each input position is used at most once.
//   - Limit     — stop after this many combinations; 0 means no limit.
//   - MaxLength — only report combinations of at most this many elements;
//     0 means no cap.
type Options struct {
	Reuse     bool
	Limit     int
	MaxLength int
}

// DefaultOptions returns Options with reuse enabled and no limits.
func DefaultOptions() Options {
	return Options{
		Reuse:     true,
		Limit:     0,
		MaxLength: 0,
	}
}

// WithoutReuse returns an Option that allows each input position at most once.
// Equal input values still never produce duplicate combinations.
func WithoutReuse() Option {
	return func(o *Options) {
		o.Reuse = false
	}
}

// WithLimit returns an Option that stops the search after n combinations.
// Panics if n <= 0.
func WithLimit(n int) Option {
	if n <= 0 {
		panic("combination: WithLimit(n<=0)")
	}
	return func(o *Options) {
		o.Limit = n
	}
}

// WithMaxLength returns an Option that restricts combinations to at most k elements.
// Panics if k <= 0.
func WithMaxLength(k int) Option {
	if k <= 0 {
		panic("combination: WithMaxLength(k<=0)")
	}
	return func(o *Options) {
		o.MaxLength = k
	}
}
