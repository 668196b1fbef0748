package kmp

// Matcher is a compiled pattern: the pattern, its failure function and the
// symbol comparison. A Matcher is immutable and may be shared between
// goroutines.
type Matcher[T any] struct {
	pattern []T
	lps     []int
	eq      func(a, b T) bool
}

// Compile prepares pattern for repeated searches with == comparison.
// The pattern is copied; later changes to the caller's slice do not
// affect the Matcher.
func Compile[T comparable](pattern []T) *Matcher[T] {
	return CompileFunc(pattern, equal[T])
}

// CompileString prepares a byte-wise matcher for pattern.
func CompileString(pattern string) *Matcher[byte] {
	return Compile([]byte(pattern))
}

// CompileFunc prepares pattern for repeated searches using eq as the symbol
// comparison. eq must be an equivalence relation (reflexive, symmetric,
// transitive), otherwise the failure function is meaningless.
// A nil eq panics.
func CompileFunc[T any](pattern []T, eq func(a, b T) bool) *Matcher[T] {
	if eq == nil {
		panic("kmp: nil equality function")
	}
	p := make([]T, len(pattern))
	copy(p, pattern)

	return &Matcher[T]{pattern: p, lps: prefixTable(p, eq), eq: eq}
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher[T]) Pattern() []T {
	out := make([]T, len(m.pattern))
	copy(out, m.pattern)
	return out
}

// Table returns a copy of the failure function.
func (m *Matcher[T]) Table() []int {
	out := make([]int, len(m.lps))
	copy(out, m.lps)
	return out
}

// Len returns the pattern length.
func (m *Matcher[T]) Len() int { return len(m.pattern) }

// Scan walks text once and calls yield with the start offset of every
// occurrence, in increasing order. Returning false from yield stops the
// scan. An empty pattern, or one longer than text, never calls yield.
//
//	i — text pointer, only ever moves forward.
//	j — number of pattern symbols currently matched.
//	match    → i++, j++; at j == |pattern| report i−j and set j = lps[j−1].
//	mismatch → j > 0 ? j = lps[j−1] : i++.
func (m *Matcher[T]) Scan(text []T, yield func(offset int) bool) {
	n, k := len(text), len(m.pattern)
	if k == 0 || k > n {
		return
	}

	var i, j int
	for i < n {
		if m.eq(text[i], m.pattern[j]) {
			i++
			j++
			if j == k {
				if !yield(i - j) {
					return
				}
				j = m.lps[j-1] // keep the overlap
			}
			continue
		}
		if j > 0 {
			j = m.lps[j-1]
			continue
		}
		i++
	}
}

// FindAll returns the start offsets of every (possibly overlapping)
// occurrence in text, strictly increasing. The result is never nil.
func (m *Matcher[T]) FindAll(text []T) []int {
	offsets := make([]int, 0)
	m.Scan(text, func(off int) bool {
		offsets = append(offsets, off)
		return true
	})

	return offsets
}

// Index returns the offset of the first occurrence, or -1.
func (m *Matcher[T]) Index(text []T) int {
	first := -1
	m.Scan(text, func(off int) bool {
		first = off
		return false
	})

	return first
}

// Count returns the number of (possibly overlapping) occurrences.
func (m *Matcher[T]) Count(text []T) int {
	var c int
	m.Scan(text, func(int) bool {
		c++
		return true
	})

	return c
}

// Contains reports whether the pattern occurs in text.
func (m *Matcher[T]) Contains(text []T) bool {
	return m.Index(text) >= 0
}
