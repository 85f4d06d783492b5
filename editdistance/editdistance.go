package editdistance

// Distance returns the Levenshtein distance between a and b.
// A nil slice is treated as the empty sequence; the function never fails.
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) table T.
//  2. T[i][0] = i, T[0][j] = j.
//  3. For i = 1..n, j = 1..m:
//     if a[i-1] == b[j-1]: T[i][j] = T[i-1][j-1]
//     else:                T[i][j] = 1 + min(T[i-1][j-1], T[i-1][j], T[i][j-1])
//  4. distance = T[n][m].
//
// TwoRows keeps only rows i-1 and i, indexed along the shorter input.
// With WithMaxDistance(k) both modes return k+1 as soon as every cell of a row
// exceeds k, since row minima never decrease.
//
// Complexity: O(n·m) time; O(n·m) or O(min(n,m)) memory.
func Distance[T comparable](a, b []T, opts ...Option) int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return capped(n+m, cfg.MaxDistance)
	}
	if cfg.MaxDistance > 0 && abs(n-m) > cfg.MaxDistance {
		return cfg.MaxDistance + 1 // needs at least |n-m| inserts or deletes
	}

	if cfg.MemoryMode == TwoRows {
		if m > n {
			a, b = b, a // distance is symmetric; keep rows short
		}

		return twoRows(a, b, cfg.MaxDistance)
	}

	return fullMatrix(a, b, cfg.MaxDistance)
}

// Strings returns the edit distance between two strings, compared rune by rune.
func Strings(a, b string, opts ...Option) int {
	return Distance([]rune(a), []rune(b), opts...)
}

// fullMatrix fills the complete table and reads its bottom-right cell.
func fullMatrix[T comparable](a, b []T, limit int) int {
	t := newTable(a, b)
	var (
		i, j   int
		rowMin int
	)
	for i = 1; i <= len(a); i++ {
		rowMin = t[i][0]
		for j = 1; j <= len(b); j++ {
			t[i][j] = cell(a[i-1] == b[j-1], t[i-1][j-1], t[i-1][j], t[i][j-1])
			if t[i][j] < rowMin {
				rowMin = t[i][j]
			}
		}
		if limit > 0 && rowMin > limit {
			return limit + 1
		}
	}

	return capped(t[len(a)][len(b)], limit)
}

// twoRows computes the same recurrence with two alternating rows of len(b)+1.
func twoRows[T comparable](a, b []T, limit int) int {
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	var (
		i, j   int
		rowMin int
	)
	for j = 0; j <= m; j++ {
		prev[j] = j
	}
	for i = 1; i <= len(a); i++ {
		curr[0] = i
		rowMin = i
		for j = 1; j <= m; j++ {
			curr[j] = cell(a[i-1] == b[j-1], prev[j-1], prev[j], curr[j-1])
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if limit > 0 && rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}

	return capped(prev[m], limit)
}

// newTable allocates the (n+1)x(m+1) table with its borders initialised.
// Rows share one backing array.
func newTable[T comparable](a, b []T) [][]int {
	n, m := len(a), len(b)
	buf := make([]int, (n+1)*(m+1))
	t := make([][]int, n+1)
	var i, j int
	for i = range t {
		t[i] = buf[i*(m+1) : (i+1)*(m+1)]
		t[i][0] = i
	}
	for j = 0; j <= m; j++ {
		t[0][j] = j
	}

	return t
}

// cell evaluates one step of the recurrence from its three neighbours.
func cell(equal bool, diag, up, left int) int {
	if equal {
		return diag
	}

	return 1 + min3(diag, up, left)
}

// capped applies the optional MaxDistance cap to an exact distance.
func capped(d, limit int) int {
	if limit > 0 && d > limit {
		return limit + 1
	}

	return d
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
