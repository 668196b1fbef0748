// Package kmp finds every occurrence of a pattern in a text with the
// Knuth–Morris–Pratt automaton.
//
// How it works:
//
//  1. Preprocessing builds the failure function lps, where lps[i] is the
//     length of the longest proper prefix of pattern[0..i] that is also a
//     suffix of it. O(|pattern|).
//  2. Scanning walks the text once. On a mismatch the pattern pointer falls
//     back through lps instead of moving the text pointer backwards, so no
//     text symbol is ever re-read. O(|text|).
//
// Overlapping occurrences are all reported: after a full match the scanner
// continues from lps[|pattern|-1], not from past the whole match.
//
//	FindAll([]byte("AABAACAADAABAAABAA"), []byte("AABA")) → [0 9 13]
//	FindAllString("aaaa", "aa")                           → [0 1 2]
//
// Policy:
//   - An empty pattern matches nothing: the result is an empty slice. Every
//     entry point applies this, including compiled Matchers.
//   - A pattern longer than the text matches nothing; it is not an error.
//   - Results are never nil from FindAll; an empty slice means no match.
//
// Entry points:
//
//	FindAll / FindAllString / FindAllFunc — one-shot searches.
//	Compile / CompileString / CompileFunc — reusable Matcher with FindAll,
//	                                        Index, Count, Contains and Scan.
//	PrefixTable                          — the failure function alone.
//
// Complexity: O(|pattern| + |text|) time, O(|pattern|) memory, independent
// of alphabet size. At most 2·|text| symbol comparisons during a scan and
// 2·|pattern| while building the table.
//
// All functions are pure. A Matcher is immutable after Compile and safe
// for concurrent use.
package kmp
