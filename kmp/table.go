package kmp

// PrefixTable returns the KMP failure function of pattern: out[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also its
// suffix. An empty pattern yields an empty (non-nil) table.
//
//	PrefixTable([]byte("AABAAC")) → [0 1 0 1 2 0]
func PrefixTable[T comparable](pattern []T) []int {
	return prefixTable(pattern, equal[T])
}

// prefixTable is the two-pointer construction:
//
//	length = size of the currently matched prefix.
//	match      → length++, lps[i] = length, i++
//	mismatch   → length > 0 ? length = lps[length-1] : (lps[i] = 0, i++)
//
// Each iteration either advances i or strictly shrinks length, and length
// never grows faster than i, so the loop runs at most 2·|pattern| times.
func prefixTable[T any](pattern []T, eq func(a, b T) bool) []int {
	lps := make([]int, len(pattern))

	var (
		length = 0 // length of the previous longest prefix-suffix
		i      = 1 // lps[0] is always 0
	)
	for i < len(pattern) {
		if eq(pattern[i], pattern[length]) {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1] // fall back, do not advance i
			continue
		}
		lps[i] = 0
		i++
	}

	return lps
}

// equal is the default symbol comparison for comparable types.
func equal[T comparable](a, b T) bool { return a == b }
