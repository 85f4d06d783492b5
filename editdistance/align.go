package editdistance

// Align computes the edit distance between a and b together with one optimal
// edit script. It always uses the full table, since the backtrace needs it.
//
// Backtrace, from (n, m) to (0, 0), preferring in order:
//   - Match      when a[i-1] == b[j-1] and T[i][j] == T[i-1][j-1]
//   - Substitute when T[i][j] == T[i-1][j-1] + 1
//   - Delete     when T[i][j] == T[i-1][j] + 1
//   - Insert     otherwise (T[i][j] == T[i][j-1] + 1)
//
// The script is returned in forward order. Applying it to a yields b, and the
// number of non-Match steps equals Distance.
//
// Complexity: O(n·m) time and memory, plus O(n+m) for the script.
func Align[T comparable](a, b []T) Alignment {
	n, m := len(a), len(b)
	t := newTable(a, b)
	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			t[i][j] = cell(a[i-1] == b[j-1], t[i-1][j-1], t[i-1][j], t[i][j-1])
		}
	}

	ops := make([]Op, 0, max(n, m))
	i, j = n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && t[i][j] == t[i-1][j-1]:
			ops = append(ops, Op{Kind: Match, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && j > 0 && t[i][j] == t[i-1][j-1]+1:
			ops = append(ops, Op{Kind: Substitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && t[i][j] == t[i-1][j]+1:
			ops = append(ops, Op{Kind: Delete, I: i - 1, J: -1})
			i--
		default:
			ops = append(ops, Op{Kind: Insert, I: -1, J: j - 1})
			j--
		}
	}

	// reverse in place
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return Alignment{Distance: t[n][m], Ops: ops}
}

// Apply replays an edit script produced by Align(a, b) on a and returns the
// resulting sequence, which equals b.
func Apply[T comparable](a, b []T, ops []Op) []T {
	out := make([]T, 0, len(b))
	for _, op := range ops {
		switch op.Kind {
		case Match:
			out = append(out, a[op.I])
		case Substitute, Insert:
			out = append(out, b[op.J])
		case Delete:
			// dropped
		}
	}

	return out
}
