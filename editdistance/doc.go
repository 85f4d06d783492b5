// Package editdistance computes the Levenshtein (edit) distance between two
// sequences: the minimum number of single-element insertions, deletions and
// substitutions that turn one into the other.
//
// 🚀 What is edit distance?
//
//	For sequences a and b, T[i][j] is the distance between the first i
//	elements of a and the first j elements of b:
//	  T[i][0] = i, T[0][j] = j
//	  T[i][j] = T[i-1][j-1]                         if a[i-1] == b[j-1]
//	  T[i][j] = 1 + min(T[i-1][j-1], T[i-1][j], T[i][j-1])   otherwise
//	The answer is T[len(a)][len(b)]. Every operation costs 1.
//
// ✨ Key features:
//   - generic over any comparable element type (runes, bytes, tokens, IDs)
//   - full-matrix mode: O(N·M) memory, the reference table
//   - two-rows mode: O(min(N,M)) memory, identical results
//   - optional distance cap for early exit on "too different" inputs
//   - Align: the full edit script recovered from the table
//
// ⚙️ Usage:
//
//	d := editdistance.Strings("kitten", "sitting") // 3
//
//	d = editdistance.Distance(tokensA, tokensB,
//	  editdistance.WithMemoryMode(editdistance.TwoRows),
//	  editdistance.WithMaxDistance(4),
//	)
//
//	al := editdistance.Align([]rune("horse"), []rune("ros"))
//	// al.Distance == 3, al.Ops is the edit script
//
// The functions are total: nil is the empty sequence and no input is an error.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix, Align) or O(min(N,M)) (TwoRows)
package editdistance
