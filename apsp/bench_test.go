package apsp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/verikit/apsp"
)

// randomGraph returns a dense graph with non-negative integer weights.
func randomGraph(b *testing.B, n int) *apsp.Graph {
	b.Helper()
	r := rand.New(rand.NewPCG(1, 2))
	g, err := apsp.NewGraph(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.IntN(4) != 0 {
				_ = g.SetEdge(i, j, apsp.Finite(float64(r.IntN(100))))
			}
		}
	}
	return g
}

func benchmarkSolve(b *testing.B, n int, opts ...apsp.Option) {
	g := randomGraph(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := apsp.Solve(g, opts...); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_64(b *testing.B)       { benchmarkSolve(b, 64) }
func BenchmarkSolve_256(b *testing.B)      { benchmarkSolve(b, 256) }
func BenchmarkSolve_256Paths(b *testing.B) { benchmarkSolve(b, 256, apsp.WithPaths()) }
