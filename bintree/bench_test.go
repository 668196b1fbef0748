package bintree_test

import (
	"testing"

	"github.com/katalvlaran/verikit/bintree"
)

// buildPerfect returns a perfect BST over [lo, hi).
func buildPerfect(lo, hi int) *bintree.Node[int] {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	return &bintree.Node[int]{Value: mid, Left: buildPerfect(lo, mid), Right: buildPerfect(mid+1, hi)}
}

// buildChain returns a right-leaning chain of n nodes.
func buildChain(n int) *bintree.Node[int] {
	root := &bintree.Node[int]{}
	cur := root
	for i := 1; i < n; i++ {
		cur.Right = &bintree.Node[int]{Value: i}
		cur = cur.Right
	}
	return root
}

func BenchmarkAnalyze_Balanced64K(b *testing.B) {
	root := buildPerfect(0, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bintree.Analyze(root)
	}
}

func BenchmarkAnalyze_Chain64K(b *testing.B) {
	root := buildChain(1 << 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bintree.Analyze(root)
	}
}
