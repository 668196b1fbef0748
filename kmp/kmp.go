package kmp

// FindAll returns the 0-based start offsets of every occurrence of pattern
// in text, including overlapping ones, in strictly increasing order.
//
// An empty pattern, or a pattern longer than text, yields an empty slice.
// Every returned offset i satisfies i+len(pattern) <= len(text).
//
// Complexity: O(len(text) + len(pattern)).
func FindAll[T comparable](text, pattern []T) []int {
	return FindAllFunc(text, pattern, equal[T])
}

// FindAllString is FindAll over the bytes of two strings; offsets are byte
// offsets.
func FindAllString(text, pattern string) []int {
	return FindAll([]byte(text), []byte(pattern))
}

// FindAllFunc is FindAll with a caller-supplied symbol comparison, e.g. a
// case-insensitive one. eq must be an equivalence relation.
func FindAllFunc[T any](text, pattern []T, eq func(a, b T) bool) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return []int{}
	}

	return CompileFunc(pattern, eq).FindAll(text)
}
