package apsp_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/verikit/apsp"
)

// ExampleSolve computes distances and one shortest route.
func ExampleSolve() {
	inf := math.Inf(1)
	g, _ := apsp.FromFloat64([][]float64{
		{0, 3, inf, 5},
		{2, 0, inf, 4},
		{inf, 1, 0, inf},
		{inf, inf, 2, 0},
	})

	dm, err := apsp.Solve(g, apsp.WithPaths())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := dm.At(0, 2)
	p, _ := dm.Path(0, 2)
	fmt.Println(d, p)
	fmt.Print(dm)
	// Output:
	// 7 [0 3 2]
	// [0, 3, 7, 5]
	// [2, 0, 6, 4]
	// [3, 1, 0, 5]
	// [5, 3, 2, 0]
}

// ExampleSolve_negativeCycle shows the negative-cycle outcome.
func ExampleSolve_negativeCycle() {
	g, _ := apsp.NewGraph(3)
	_ = g.SetEdge(0, 1, apsp.Finite(1))
	_ = g.SetEdge(1, 2, apsp.Finite(-1))
	_ = g.SetEdge(2, 0, apsp.Finite(-1))

	_, err := apsp.Solve(g)
	var nc *apsp.NegativeCycleError
	if errors.As(err, &nc) {
		fmt.Println("negative cycle through", nc.Vertex)
	}
	// Output: negative cycle through 0
}
