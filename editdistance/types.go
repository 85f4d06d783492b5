package editdistance

import "fmt"

// MemoryMode controls how the DP table is stored.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) table. Memory: O(n·m).
//   - TwoRows    — keep only the previous and current rows, laid out along the
//     shorter input. Memory: O(min(n, m)).
type MemoryMode int

const (
	// FullMatrix stores every row of the table.
	FullMatrix MemoryMode = iota

	// TwoRows stores only two rows of the table.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Option configures Distance.
type Option func(*Options)

// Options holds the distance parameters.
//
// Fields:
//   - MemoryMode  — table layout, FullMatrix by default.
//   - MaxDistance — if > 0, stop as soon as the distance is known to exceed
//     it and return MaxDistance+1. 0 means no cap (always exact).
type Options struct {
	MemoryMode  MemoryMode
	MaxDistance int
}

// DefaultOptions returns Options with FullMatrix storage and no cap.
func DefaultOptions() Options {
	return Options{
		MemoryMode:  FullMatrix,
		MaxDistance: 0,
	}
}

// WithMemoryMode returns an Option selecting the table layout.
// Panics on an unknown mode.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullMatrix && m != TwoRows {
		panic("editdistance: WithMemoryMode(unknown mode)")
	}
	return func(o *Options) {
		o.MemoryMode = m
	}
}

// WithMaxDistance returns an Option capping the reported distance at k+1.
// Panics if k <= 0.
func WithMaxDistance(k int) Option {
	if k <= 0 {
		panic("editdistance: WithMaxDistance(k<=0)")
	}
	return func(o *Options) {
		o.MaxDistance = k
	}
}

// OpKind is the kind of a single edit step.
type OpKind int

const (
	// Match aligns two equal elements at no cost.
	Match OpKind = iota
	// Substitute replaces a[I] with b[J].
	Substitute
	// Delete removes a[I].
	Delete
	// Insert inserts b[J].
	Insert
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case Match:
		return "match"
	case Substitute:
		return "substitute"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of an edit script.
// I indexes a and J indexes b; the index that does not apply is -1
// (J for Delete, I for Insert).
type Op struct {
	Kind OpKind
	I, J int
}

// Alignment is the result of Align.
type Alignment struct {
	// Distance is the edit distance; it equals the number of non-Match ops.
	Distance int

	// Ops is the edit script from the start of both sequences to their end.
	Ops []Op
}
