package kmp_test

import (
	"fmt"

	"github.com/katalvlaran/verikit/kmp"
)

// ExampleFindAllString reports overlapping occurrences.
func ExampleFindAllString() {
	fmt.Println(kmp.FindAllString("AABAACAADAABAAABAA", "AABA"))
	fmt.Println(kmp.FindAllString("aaaa", "aa"))
	fmt.Println(kmp.FindAllString("abc", ""))
	// Output:
	// [0 9 13]
	// [0 1 2]
	// []
}

// ExampleCompile reuses one compiled pattern over several texts.
func ExampleCompile() {
	m := kmp.Compile([]string{"GET", "/"})
	log := []string{"GET", "/", "POST", "/", "GET", "/"}

	fmt.Println(m.Count(log), m.Index(log))
	// Output: 2 0
}

// ExamplePrefixTable prints the failure function.
func ExamplePrefixTable() {
	fmt.Println(kmp.PrefixTable([]byte("AABAAC")))
	// Output: [0 1 0 1 2 0]
}
